package interfaces

import "github.com/jsenjoyer123/T-NEWS/internal/model"

// ProfileRepository 接口定义了个人资料仓库应该实现的方法。
// 资料的 username 唯一性独立于用户表，两者是不相交的命名空间
type ProfileRepository interface {
	FindAll() ([]*model.Profile, error)
	FindByID(id int) (*model.Profile, error)
	// Create 用户名已存在时返回冲突错误
	Create(profile *model.Profile) error
	// Update 仅当提交的用户名与当前值不同且与其他资料冲突时返回冲突错误
	Update(id int, update model.ProfileUpdate) (*model.Profile, error)
	Delete(id int) (*model.Profile, error)
}
