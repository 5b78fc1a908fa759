package util

import (
	"errors"
	"time"

	"github.com/jsenjoyer123/T-NEWS/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// CookieName 身份Cookie的名称
const CookieName = "user"

// GenerateToken 生成绑定用户名的签名令牌，随Cookie下发。
// 令牌不设过期时间，会话有效期等同于客户端保留Cookie的时间
func GenerateToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"jti":      uuid.NewString(),
		"iat":      time.Now().Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.CookieSecret))
}

// ValidateToken 校验令牌签名并返回其中的用户名
func ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("不支持的签名算法")
		}
		return []byte(config.AppConfig.CookieSecret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		username, ok := claims["username"].(string)
		if !ok || username == "" {
			return "", errors.New("无效的用户名")
		}
		return username, nil
	}

	return "", errors.New("无效的令牌")
}
