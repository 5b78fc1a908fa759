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

// CommentHandler 处理评论相关的HTTP请求
type CommentHandler struct {
	feedService service.FeedServiceInterface
}

// NewCommentHandler 创建一个新的 CommentHandler 实例
func NewCommentHandler(feedService service.FeedServiceInterface) *CommentHandler {
	return &CommentHandler{feedService}
}

// ListComments 按插入顺序返回全部评论
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.feedService.ListComments()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// GetComment 通过ID获取评论
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的评论ID"))
		return
	}

	comment, err := h.feedService.GetCommentByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// CreateComment 创建新评论，post_id 必须指向已存在的帖子
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var createData struct {
		PostID       *int    `json:"post_id" binding:"required"`
		AuthorName   string  `json:"author_name" binding:"required"`
		AuthorAvatar *string `json:"author_avatar"`
		Text         string  `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&createData); err != nil {
		util.Logger.Warn("创建评论失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "post_id、author_name 和 text 字段必填", err))
		return
	}

	comment := &model.Comment{
		PostID:       *createData.PostID,
		AuthorName:   createData.AuthorName,
		AuthorAvatar: createData.AuthorAvatar,
		Text:         createData.Text,
	}

	if err := h.feedService.CreateComment(comment); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment 部分更新评论（含 likes），未提交的字段保持原值
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的评论ID"))
		return
	}

	var updateData struct {
		AuthorName   *string `json:"author_name"`
		AuthorAvatar *string `json:"author_avatar"`
		Text         *string `json:"text"`
		Likes        *int    `json:"likes"`
	}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	comment, err := h.feedService.UpdateComment(id, model.CommentUpdate{
		AuthorName:   updateData.AuthorName,
		AuthorAvatar: updateData.AuthorAvatar,
		Text:         updateData.Text,
		Likes:        updateData.Likes,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment 删除单条评论
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的评论ID"))
		return
	}

	comment, err := h.feedService.DeleteComment(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "评论已删除", "comment": comment})
}
