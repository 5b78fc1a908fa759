package interfaces

import "github.com/jsenjoyer123/T-NEWS/internal/model"

// CommentRepository 接口定义了评论仓库应该实现的方法
type CommentRepository interface {
	FindAll() ([]*model.Comment, error)
	FindByID(id int) (*model.Comment, error)
	Create(comment *model.Comment) error
	Update(id int, update model.CommentUpdate) (*model.Comment, error)
	Delete(id int) (*model.Comment, error)
	// DeleteByPostID 删除指定帖子下的全部评论，返回删除数量；无匹配时为幂等空操作
	DeleteByPostID(postID int) (int, error)
}
