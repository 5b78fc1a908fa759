package interfaces

import "github.com/jsenjoyer123/T-NEWS/internal/model"

// PostRepository 接口定义了帖子仓库应该实现的方法
type PostRepository interface {
	FindAll() ([]*model.Post, error)
	FindByID(id int) (*model.Post, error)
	// WithPost 在帖子存在性得到保证的临界区内执行 fn：
	// fn 执行期间该帖子不会被并发删除；帖子不存在时返回未找到错误
	WithPost(id int, fn func(post *model.Post) error) error
	Create(post *model.Post) error
	// Update 只应用非 nil 字段，成功后刷新 updated_at
	Update(id int, update model.PostUpdate) (*model.Post, error)
	// Delete 删除帖子并级联删除其全部评论，返回被删除的记录
	Delete(id int) (*model.Post, error)
}

// CommentCascade 是帖子仓库持有的级联删除能力，
// 只暴露按帖子ID批量删除，不暴露评论仓库的其余操作
type CommentCascade interface {
	DeleteByPostID(postID int) (int, error)
}
