package memory

import (
	"sync"
	"time"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/repository/interfaces"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"go.uber.org/zap"
)

// postRepository 实现了 PostRepository 接口。
// 级联删除通过注入的 CommentCascade 完成，帖子仓库不直接持有评论数据。
// 所有读写方法返回记录的副本，调用方拿到的结构体不与存储共享
type postRepository struct {
	mu      sync.RWMutex
	posts   []*model.Post
	nextID  int
	cascade interfaces.CommentCascade
}

// NewPostRepository 创建一个新的 postRepository 实例
func NewPostRepository(cascade interfaces.CommentCascade) *postRepository {
	return &postRepository{nextID: 1, cascade: cascade}
}

// FindAll 按插入顺序返回全部帖子的副本
func (r *postRepository) FindAll() ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		snapshot := *p
		posts = append(posts, &snapshot)
	}
	return posts, nil
}

// FindByID 通过ID查找帖子，返回记录的副本
func (r *postRepository) FindByID(id int) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, errors.New(errors.ErrPostNotFound, "帖子不存在")
}

// WithPost 在帖子读锁内执行 fn，fn 执行期间该帖子不会被并发删除。
// 锁顺序与删除路径一致：先帖子后评论
func (r *postRepository) WithPost(id int, fn func(post *model.Post) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			snapshot := *p
			return fn(&snapshot)
		}
	}
	return errors.New(errors.ErrPostNotFound, "帖子不存在")
}

// Create 创建一个新帖子，两个时间戳设为同一时刻。
// 存储内部保存副本，调用方的结构体只回填ID和时间戳
func (r *postRepository) Create(post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	r.posts = append(r.posts, &stored)

	util.Logger.Info("帖子创建成功", zap.Int("id", post.ID))
	return nil
}

// Update 只应用非 nil 字段，成功后刷新 updated_at，返回更新后的副本
func (r *postRepository) Update(id int, update model.PostUpdate) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.ID != id {
			continue
		}
		if update.AuthorName != nil {
			p.AuthorName = *update.AuthorName
		}
		if update.Text != nil {
			p.Text = *update.Text
		}
		p.UpdatedAt = time.Now()

		snapshot := *p
		return &snapshot, nil
	}
	return nil, errors.New(errors.ErrPostNotFound, "帖子不存在")
}

// Delete 删除帖子并在同一逻辑操作内级联删除其评论。
// 锁顺序固定为先帖子后评论，评论仓库不会反向调用帖子仓库
func (r *postRepository) Delete(id int) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID != id {
			continue
		}
		r.posts = append(r.posts[:i], r.posts[i+1:]...)

		removed, err := r.cascade.DeleteByPostID(p.ID)
		if err != nil {
			util.Logger.Error("级联删除评论失败", zap.Error(err), zap.Int("post_id", p.ID))
			return nil, errors.Wrap(errors.ErrInternal, "级联删除评论失败", err)
		}
		util.Logger.Info("帖子删除成功",
			zap.Int("id", p.ID),
			zap.Int("comments_removed", removed))
		return p, nil
	}
	return nil, errors.New(errors.ErrPostNotFound, "帖子不存在")
}
