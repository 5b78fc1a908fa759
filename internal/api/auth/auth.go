package auth

import (
	"fmt"
	"net/http"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/service"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var registerData struct {
		Username string `json:"username" binding:"required,username"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "username 和 password 字段必填", err))
		return
	}

	user := &model.User{
		Username: registerData.Username,
		Password: registerData.Password,
	}

	if err := h.userService.Register(user); err != nil {
		if errors.IsCode(err, errors.ErrUserExists) {
			util.Logger.Warn("注册失败，用户名已存在",
				zap.String("username", user.Username))
			errors.HandleError(c, err)
			return
		}
		util.Logger.Error("注册失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "注册失败", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功！",
		"user":    user.Public(),
	})
}

// Login 处理用户登录请求，成功时下发签名Cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.Login(loginData.Username, loginData.Password)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误"))
		return
	}

	token, err := util.GenerateToken(user.Username)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "生成令牌失败", err))
		return
	}

	// 不设过期时间，Cookie保留多久会话就有效多久
	c.SetCookie(util.CookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "登录成功！"})
}

// Hello 受保护的问候端点，需要有效的签名Cookie
func (h *AuthHandler) Hello(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("你好，%s！", username)})
}
