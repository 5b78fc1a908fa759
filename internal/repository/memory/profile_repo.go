package memory

import (
	"sync"
	"time"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"go.uber.org/zap"
)

// profileRepository 实现了 ProfileRepository 接口。
// 资料用户名唯一性只在资料集合内检查，与用户表无关。
// 所有读写方法返回记录的副本，调用方拿到的结构体不与存储共享
type profileRepository struct {
	mu       sync.RWMutex
	profiles []*model.Profile
	nextID   int
}

// NewProfileRepository 创建一个新的 profileRepository 实例
func NewProfileRepository() *profileRepository {
	return &profileRepository{nextID: 1}
}

// FindAll 按插入顺序返回全部资料的副本
func (r *profileRepository) FindAll() ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*model.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		snapshot := *p
		profiles = append(profiles, &snapshot)
	}
	return profiles, nil
}

// FindByID 通过ID查找资料，返回记录的副本
func (r *profileRepository) FindByID(id int) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.ID == id {
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, errors.New(errors.ErrProfileNotFound, "资料不存在")
}

// Create 创建一个新资料，用户名已存在时返回冲突错误
func (r *profileRepository) Create(profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.Username == profile.Username {
			return errors.New(errors.ErrUsernameTaken, "资料用户名已存在")
		}
	}

	profile.ID = r.nextID
	r.nextID++
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stored := *profile
	r.profiles = append(r.profiles, &stored)

	util.Logger.Info("资料创建成功", zap.Int("id", profile.ID), zap.String("username", profile.Username))
	return nil
}

// Update 只应用非 nil 字段。用户名仅在发生变化时检查唯一性，
// 提交与当前值相同的用户名不算冲突；冲突时不刷新 updated_at
func (r *profileRepository) Update(id int, update model.ProfileUpdate) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.ID != id {
			continue
		}
		if update.Username != nil && *update.Username != p.Username {
			for _, other := range r.profiles {
				if other.Username == *update.Username {
					return nil, errors.New(errors.ErrUsernameTaken, "资料用户名已存在")
				}
			}
		}
		if update.UserID != nil {
			p.UserID = *update.UserID
		}
		if update.Username != nil {
			p.Username = *update.Username
		}
		if update.Description != nil {
			p.Description = update.Description
		}
		if update.Photo != nil {
			p.Photo = update.Photo
		}
		p.UpdatedAt = time.Now()

		snapshot := *p
		return &snapshot, nil
	}
	return nil, errors.New(errors.ErrProfileNotFound, "资料不存在")
}

// Delete 删除资料，返回被删除的记录
func (r *profileRepository) Delete(id int) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.profiles {
		if p.ID == id {
			r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrProfileNotFound, "资料不存在")
}
