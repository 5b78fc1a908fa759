package middleware

import (
	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验请求携带的签名身份Cookie。
// 只验证签名，不回查用户表，与原有会话语义保持一致
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(util.CookieName)
		if err != nil {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "需要先进行认证"))
			c.Abort()
			return
		}

		username, err := util.ValidateToken(cookie)
		if err != nil {
			util.Logger.Warn("Cookie签名校验失败",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "无效的Cookie签名", err))
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
