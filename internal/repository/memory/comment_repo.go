package memory

import (
	"sync"
	"time"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"go.uber.org/zap"
)

// commentRepository 实现了 CommentRepository 接口。
// 所有读写方法返回记录的副本，调用方拿到的结构体不与存储共享
type commentRepository struct {
	mu       sync.RWMutex
	comments []*model.Comment
	nextID   int
}

// NewCommentRepository 创建一个新的 commentRepository 实例
func NewCommentRepository() *commentRepository {
	return &commentRepository{nextID: 1}
}

// FindAll 按插入顺序返回全部评论的副本
func (r *commentRepository) FindAll() ([]*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]*model.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		snapshot := *c
		comments = append(comments, &snapshot)
	}
	return comments, nil
}

// FindByID 通过ID查找评论，返回记录的副本
func (r *commentRepository) FindByID(id int) (*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.comments {
		if c.ID == id {
			snapshot := *c
			return &snapshot, nil
		}
	}
	return nil, errors.New(errors.ErrCommentNotFound, "评论不存在")
}

// Create 创建一个新评论，likes 初始化为 0。
// 存储内部保存副本，调用方的结构体只回填ID和时间戳
func (r *commentRepository) Create(comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	comment.Likes = 0
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := *comment
	r.comments = append(r.comments, &stored)

	util.Logger.Info("评论创建成功", zap.Int("id", comment.ID), zap.Int("post_id", comment.PostID))
	return nil
}

// Update 只应用非 nil 字段（含 likes），成功后刷新 updated_at，返回更新后的副本
func (r *commentRepository) Update(id int, update model.CommentUpdate) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.comments {
		if c.ID != id {
			continue
		}
		if update.AuthorName != nil {
			c.AuthorName = *update.AuthorName
		}
		if update.AuthorAvatar != nil {
			c.AuthorAvatar = update.AuthorAvatar
		}
		if update.Text != nil {
			c.Text = *update.Text
		}
		if update.Likes != nil {
			c.Likes = *update.Likes
		}
		c.UpdatedAt = time.Now()

		snapshot := *c
		return &snapshot, nil
	}
	return nil, errors.New(errors.ErrCommentNotFound, "评论不存在")
}

// Delete 删除单条评论，返回被删除的记录
func (r *commentRepository) Delete(id int) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return c, nil
		}
	}
	return nil, errors.New(errors.ErrCommentNotFound, "评论不存在")
}

// DeleteByPostID 删除指定帖子下的全部评论，返回删除数量。
// 无匹配时为幂等空操作
func (r *commentRepository) DeleteByPostID(postID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.comments[:0]
	removed := 0
	for _, c := range r.comments {
		if c.PostID == postID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.comments = kept

	if removed > 0 {
		util.Logger.Info("级联删除评论", zap.Int("post_id", postID), zap.Int("removed", removed))
	}
	return removed, nil
}
