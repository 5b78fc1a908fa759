package interfaces

import "github.com/jsenjoyer123/T-NEWS/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	// Create 分配新ID并保存用户；用户名重复时返回冲突错误
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	// Verify 用户名和密码完全匹配时返回用户，否则返回 nil
	Verify(username, password string) (*model.User, error)
	Count() (int, error)
}
