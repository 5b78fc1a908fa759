package memory

import (
	"sync"
	"time"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口，数据保存在进程内存中。
// 所有读写方法返回记录的副本，调用方拿到的结构体不与存储共享
type userRepository struct {
	mu     sync.RWMutex
	users  []*model.User
	nextID int
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository() *userRepository {
	return &userRepository{nextID: 1}
}

// Create 创建一个新用户，ID由内部计数器分配，删除后不复用
func (r *userRepository) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.New(errors.ErrUserExists, "用户名已存在")
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()

	stored := *user
	r.users = append(r.users, &stored)

	util.Logger.Info("用户创建成功", zap.Int("id", user.ID), zap.String("username", user.Username))
	return nil
}

// FindByUsername 通过用户名查找用户，未找到时返回 nil，找到时返回副本
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			snapshot := *u
			return &snapshot, nil
		}
	}
	return nil, nil
}

// Verify 用户名和密码同时完全匹配时返回用户。
// 凭据按明文等值比较，保留原有可观察行为
func (r *userRepository) Verify(username, password string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			snapshot := *u
			return &snapshot, nil
		}
	}
	return nil, nil
}

// Count 返回用户总数
func (r *userRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
