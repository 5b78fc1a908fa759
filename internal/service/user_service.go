package service

import (
	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/repository/interfaces"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"go.uber.org/zap"
)

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// IsUsernameTaken 检查用户名是否已被使用
func (s *UserService) IsUsernameTaken(username string) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Register 注册新用户，用户名重复时返回冲突错误
func (s *UserService) Register(user *model.User) error {
	taken, err := s.IsUsernameTaken(user.Username)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(errors.ErrUserExists, "用户名已存在")
	}

	return s.userRepo.Create(user)
}

// Login 用户登录，凭据不匹配时返回认证错误
func (s *UserService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.Verify(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		util.Logger.Warn("用户登录失败", zap.String("username", username))
		return nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误")
	}

	util.Logger.Info("用户登录成功", zap.Int("user_id", user.ID))
	return user, nil
}

// FindByUsername 通过用户名查找用户，未找到时返回 nil
func (s *UserService) FindByUsername(username string) (*model.User, error) {
	return s.userRepo.FindByUsername(username)
}

// SeedDefaultUser 在进程启动时插入种子用户。
// 同名用户已存在时不做任何事，保证每个进程生命周期内只生效一次
func (s *UserService) SeedDefaultUser(username, password string) error {
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if err := s.userRepo.Create(&model.User{Username: username, Password: password}); err != nil {
		return err
	}
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	util.Logger.Info("种子用户已创建", zap.String("username", username), zap.Int("user_count", count))
	return nil
}

// UserServiceInterface 供处理器和测试使用的用户服务接口
type UserServiceInterface interface {
	Register(user *model.User) error
	Login(username, password string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	IsUsernameTaken(username string) (bool, error)
	SeedDefaultUser(username, password string) error
}

// 确保 UserService 实现了 UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)
