package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsenjoyer123/T-NEWS/config"
	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/middleware"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/service"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserService 是 UserServiceInterface 的模拟实现
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserService) Login(username, password string) (*model.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) IsUsernameTaken(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) SeedDefaultUser(username, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}

// 确保 MockUserService 实现了 UserServiceInterface
var _ service.UserServiceInterface = (*MockUserService)(nil)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.CookieSecret = "test-secret"
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", util.ValidateUsername)
	}
	m.Run()
}

// TestRegister 测试注册处理器
func TestRegister(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewAuthHandler(mockService)

	router := gin.New()
	router.POST("/register", handler.Register)

	// 模拟成功注册
	mockService.On("Register", mock.AnythingOfType("*model.User")).Return(nil).Once()

	body := []byte(`{"username": "newuser", "password": "pw123"}`)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response, "user")
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "newuser", user["username"])
	assert.NotContains(t, user, "password")
	mockService.AssertExpectations(t)

	// 模拟注册失败（用户名已存在）
	mockService.On("Register", mock.AnythingOfType("*model.User")).
		Return(errors.New(errors.ErrUserExists, "用户名已存在")).Once()

	req, _ = http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

// TestRegisterUnicodeUsername 非拉丁字母的用户名同样合法
func TestRegisterUnicodeUsername(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewAuthHandler(mockService)

	router := gin.New()
	router.POST("/register", handler.Register)

	mockService.On("Register", mock.AnythingOfType("*model.User")).Return(nil).Once()

	body := []byte(`{"username": "Алиса", "password": "pw123"}`)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "Алиса", user["username"])
	mockService.AssertExpectations(t)
}

// TestRegisterMissingFields 缺少必填字段时返回400
func TestRegisterMissingFields(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewAuthHandler(mockService)

	router := gin.New()
	router.POST("/register", handler.Register)

	body := []byte(`{"username": "newuser"}`)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything)
}

// TestLogin 测试登录处理器和Cookie下发
func TestLogin(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewAuthHandler(mockService)

	router := gin.New()
	router.POST("/login", handler.Login)

	// 模拟成功登录
	mockUser := &model.User{ID: 1, Username: "test"}
	mockService.On("Login", "test", "test").Return(mockUser, nil)

	body := []byte(`{"username": "test", "password": "test"}`)
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// 成功登录时下发签名Cookie
	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == util.CookieName {
			found = true
			username, err := util.ValidateToken(cookie.Value)
			assert.NoError(t, err)
			assert.Equal(t, "test", username)
		}
	}
	assert.True(t, found)
	mockService.AssertExpectations(t)

	// 模拟登录失败
	mockService.On("Login", "test", "wrong").
		Return(nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误"))

	body = []byte(`{"username": "test", "password": "wrong"}`)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
	mockService.AssertExpectations(t)
}

// TestHello 测试受保护端点的Cookie校验
func TestHello(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewAuthHandler(mockService)

	router := gin.New()
	router.GET("/hello", middleware.AuthMiddleware(), handler.Hello)

	// 无Cookie：401
	req, _ := http.NewRequest("GET", "/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 伪造的Cookie：401
	req, _ = http.NewRequest("GET", "/hello", nil)
	req.AddCookie(&http.Cookie{Name: util.CookieName, Value: "not-a-token"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 有效的签名Cookie：200，消息中带用户名
	token, err := util.GenerateToken("test")
	assert.NoError(t, err)

	req, _ = http.NewRequest("GET", "/hello", nil)
	req.AddCookie(&http.Cookie{Name: util.CookieName, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["message"], "test")
}
