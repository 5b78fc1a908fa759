package service

import (
	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/repository/interfaces"
)

// FeedService 处理帖子、评论和个人资料的业务逻辑
type FeedService struct {
	postRepo    interfaces.PostRepository
	commentRepo interfaces.CommentRepository
	profileRepo interfaces.ProfileRepository
}

// NewFeedService 创建一个新的 FeedService 实例
func NewFeedService(
	postRepo interfaces.PostRepository,
	commentRepo interfaces.CommentRepository,
	profileRepo interfaces.ProfileRepository,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
	}
}

func (s *FeedService) ListPosts() ([]*model.Post, error) {
	return s.postRepo.FindAll()
}

func (s *FeedService) GetPostByID(id int) (*model.Post, error) {
	return s.postRepo.FindByID(id)
}

func (s *FeedService) CreatePost(post *model.Post) error {
	return s.postRepo.Create(post)
}

func (s *FeedService) UpdatePost(id int, update model.PostUpdate) (*model.Post, error) {
	return s.postRepo.Update(id, update)
}

// DeletePost 删除帖子，评论级联在帖子仓库内完成
func (s *FeedService) DeletePost(id int) (*model.Post, error) {
	return s.postRepo.Delete(id)
}

func (s *FeedService) ListComments() ([]*model.Comment, error) {
	return s.commentRepo.FindAll()
}

func (s *FeedService) GetCommentByID(id int) (*model.Comment, error) {
	return s.commentRepo.FindByID(id)
}

// CreateComment 创建评论前校验 post_id 指向的帖子存在。
// 存在性检查和插入在帖子读锁的同一临界区内完成，
// 删除帖子无法插入其间，不会留下指向已删帖子的孤儿评论。
// 锁顺序与删除路径一致：先帖子后评论
func (s *FeedService) CreateComment(comment *model.Comment) error {
	err := s.postRepo.WithPost(comment.PostID, func(*model.Post) error {
		return s.commentRepo.Create(comment)
	})
	if errors.IsCode(err, errors.ErrPostNotFound) {
		return errors.New(errors.ErrPostNotFound, "评论指向的帖子不存在")
	}
	return err
}

func (s *FeedService) UpdateComment(id int, update model.CommentUpdate) (*model.Comment, error) {
	return s.commentRepo.Update(id, update)
}

func (s *FeedService) DeleteComment(id int) (*model.Comment, error) {
	return s.commentRepo.Delete(id)
}

func (s *FeedService) ListProfiles() ([]*model.Profile, error) {
	return s.profileRepo.FindAll()
}

func (s *FeedService) GetProfileByID(id int) (*model.Profile, error) {
	return s.profileRepo.FindByID(id)
}

func (s *FeedService) CreateProfile(profile *model.Profile) error {
	return s.profileRepo.Create(profile)
}

func (s *FeedService) UpdateProfile(id int, update model.ProfileUpdate) (*model.Profile, error) {
	return s.profileRepo.Update(id, update)
}

func (s *FeedService) DeleteProfile(id int) (*model.Profile, error) {
	return s.profileRepo.Delete(id)
}

// FeedServiceInterface 供处理器和测试使用的服务接口
type FeedServiceInterface interface {
	ListPosts() ([]*model.Post, error)
	GetPostByID(id int) (*model.Post, error)
	CreatePost(post *model.Post) error
	UpdatePost(id int, update model.PostUpdate) (*model.Post, error)
	DeletePost(id int) (*model.Post, error)

	ListComments() ([]*model.Comment, error)
	GetCommentByID(id int) (*model.Comment, error)
	CreateComment(comment *model.Comment) error
	UpdateComment(id int, update model.CommentUpdate) (*model.Comment, error)
	DeleteComment(id int) (*model.Comment, error)

	ListProfiles() ([]*model.Profile, error)
	GetProfileByID(id int) (*model.Profile, error)
	CreateProfile(profile *model.Profile) error
	UpdateProfile(id int, update model.ProfileUpdate) (*model.Profile, error)
	DeleteProfile(id int) (*model.Profile, error)
}

// 确保 FeedService 实现了 FeedServiceInterface
var _ FeedServiceInterface = (*FeedService)(nil)
