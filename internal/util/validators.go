package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}._-]{1,64}$`)

// ValidateUsername 验证用户名格式：任意语言的字母和数字加 ._-，1-64个字符
func ValidateUsername(fl validator.FieldLevel) bool {
	username, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return usernamePattern.MatchString(username)
}
