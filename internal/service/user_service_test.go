package service

import (
	"testing"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Verify(username, password string) (*model.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// TestRegisterConflict 用户名已存在时注册返回冲突错误
func TestRegisterConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	existing := &model.User{ID: 1, Username: "alice"}
	mockRepo.On("FindByUsername", "alice").Return(existing, nil)

	err := svc.Register(&model.User{Username: "alice", Password: "pw"})
	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUserExists))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// TestRegisterSuccess 用户名可用时落入仓库创建
func TestRegisterSuccess(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("FindByUsername", "bob").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

	err := svc.Register(&model.User{Username: "bob", Password: "pw"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestLoginInvalidCredentials 凭据不匹配时返回认证错误
func TestLoginInvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("Verify", "alice", "wrong").Return(nil, nil)

	user, err := svc.Login("alice", "wrong")
	assert.Nil(t, user)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidCredentials))
}

// TestLoginSuccess 凭据匹配时返回用户
func TestLoginSuccess(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockUser := &model.User{ID: 1, Username: "alice"}
	mockRepo.On("Verify", "alice", "pw").Return(mockUser, nil)

	user, err := svc.Login("alice", "pw")
	assert.NoError(t, err)
	assert.Equal(t, mockUser, user)
}

// TestSeedDefaultUser 种子用户不存在时创建，已存在时不重复插入
func TestSeedDefaultUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("FindByUsername", "test").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil).Once()
	mockRepo.On("Count").Return(1, nil).Once()

	assert.NoError(t, svc.SeedDefaultUser("test", "test"))
	mockRepo.AssertExpectations(t)

	// 第二次启动场景：同名用户已存在，不再创建
	mockRepo2 := new(MockUserRepository)
	svc2 := NewUserService(mockRepo2)
	seeded := &model.User{ID: 1, Username: "test", Password: "test"}
	mockRepo2.On("FindByUsername", "test").Return(seeded, nil).Once()

	assert.NoError(t, svc2.SeedDefaultUser("test", "test"))
	mockRepo2.AssertNotCalled(t, "Create", mock.Anything)
}
