package feed

import (
	"net/http"
	"strconv"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/service"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler 处理帖子相关的HTTP请求
type PostHandler struct {
	feedService service.FeedServiceInterface
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(feedService service.FeedServiceInterface) *PostHandler {
	return &PostHandler{feedService}
}

// ListPosts 按插入顺序返回全部帖子
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.feedService.ListPosts()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost 通过ID获取帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的帖子ID"))
		return
	}

	post, err := h.feedService.GetPostByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost 创建新帖子
func (h *PostHandler) CreatePost(c *gin.Context) {
	var createData struct {
		AuthorName string `json:"author_name" binding:"required"`
		Text       string `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&createData); err != nil {
		util.Logger.Warn("创建帖子失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "author_name 和 text 字段必填", err))
		return
	}

	post := &model.Post{
		AuthorName: createData.AuthorName,
		Text:       createData.Text,
	}

	if err := h.feedService.CreatePost(post); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "创建帖子失败", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost 部分更新帖子，未提交的字段保持原值
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的帖子ID"))
		return
	}

	var updateData struct {
		AuthorName *string `json:"author_name"`
		Text       *string `json:"text"`
	}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	post, err := h.feedService.UpdatePost(id, model.PostUpdate{
		AuthorName: updateData.AuthorName,
		Text:       updateData.Text,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost 删除帖子及其全部评论
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的帖子ID"))
		return
	}

	post, err := h.feedService.DeletePost(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "帖子已删除", "post": post})
}
