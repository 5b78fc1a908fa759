package feed

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/service"
	"github.com/jsenjoyer123/T-NEWS/internal/storage"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler 处理个人资料相关的HTTP请求
type ProfileHandler struct {
	feedService service.FeedServiceInterface
	storage     *storage.LocalStorage
}

// NewProfileHandler 创建一个新的 ProfileHandler 实例
func NewProfileHandler(feedService service.FeedServiceInterface, storage *storage.LocalStorage) *ProfileHandler {
	return &ProfileHandler{feedService, storage}
}

// ListProfiles 按插入顺序返回全部资料
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.feedService.ListProfiles()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetProfile 通过ID获取资料
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的资料ID"))
		return
	}

	profile, err := h.feedService.GetProfileByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CreateProfile 创建新资料，用户名在资料集合内必须唯一
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var createData struct {
		UserID      *int    `json:"user_id" binding:"required"`
		Username    string  `json:"username" binding:"required,username"`
		Description *string `json:"description"`
		Photo       *string `json:"photo"`
	}

	if err := c.ShouldBindJSON(&createData); err != nil {
		util.Logger.Warn("创建资料失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "user_id 和 username 字段必填", err))
		return
	}

	profile := &model.Profile{
		UserID:      *createData.UserID,
		Username:    createData.Username,
		Description: createData.Description,
		Photo:       createData.Photo,
	}

	if err := h.feedService.CreateProfile(profile); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// UpdateProfile 部分更新资料，用户名变化时检查唯一性
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的资料ID"))
		return
	}

	var updateData struct {
		UserID      *int    `json:"user_id"`
		Username    *string `json:"username" binding:"omitempty,username"`
		Description *string `json:"description"`
		Photo       *string `json:"photo"`
	}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	profile, err := h.feedService.UpdateProfile(id, model.ProfileUpdate{
		UserID:      updateData.UserID,
		Username:    updateData.Username,
		Description: updateData.Description,
		Photo:       updateData.Photo,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteProfile 删除资料
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的资料ID"))
		return
	}

	profile, err := h.feedService.DeleteProfile(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "资料已删除", "profile": profile})
}

// UploadPhoto 上传资料照片并写回 photo 字段
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的资料ID"))
		return
	}

	// 先确认资料存在，再落盘，避免404路径留下孤儿文件
	if _, err := h.feedService.GetProfileByID(id); err != nil {
		errors.HandleError(c, err)
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		util.Logger.Error("获取上传文件失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无法获取上传文件", err))
		return
	}

	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("profiles/%d/%s", id, filename)

	storedPath, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("上传照片失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "上传照片失败", err))
		return
	}

	photoURL := fmt.Sprintf("/uploads/%s", storedPath)
	profile, err := h.feedService.UpdateProfile(id, model.ProfileUpdate{Photo: &photoURL})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "照片上传成功", "profile": profile})
}
