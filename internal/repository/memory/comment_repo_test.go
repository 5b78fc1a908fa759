package memory

import (
	"testing"
	"time"

	"github.com/jsenjoyer123/T-NEWS/internal/errors"
	"github.com/jsenjoyer123/T-NEWS/internal/model"

	"github.com/stretchr/testify/assert"
)

// TestCommentCreateDefaults 新评论 likes 归零，两个时间戳相同
func TestCommentCreateDefaults(t *testing.T) {
	repo := NewCommentRepository()

	comment := &model.Comment{PostID: 1, AuthorName: "A", Text: "x", Likes: 42}
	assert.NoError(t, repo.Create(comment))
	assert.Equal(t, 1, comment.ID)
	assert.Equal(t, 0, comment.Likes)
	assert.Equal(t, comment.CreatedAt, comment.UpdatedAt)
	assert.Nil(t, comment.AuthorAvatar)
}

// TestCommentIDMonotonic 评论ID在删除后仍严格递增
func TestCommentIDMonotonic(t *testing.T) {
	repo := NewCommentRepository()

	c1 := &model.Comment{PostID: 1, AuthorName: "A", Text: "x"}
	c2 := &model.Comment{PostID: 1, AuthorName: "B", Text: "y"}
	assert.NoError(t, repo.Create(c1))
	assert.NoError(t, repo.Create(c2))

	_, err := repo.Delete(c1.ID)
	assert.NoError(t, err)

	c3 := &model.Comment{PostID: 1, AuthorName: "C", Text: "z"}
	assert.NoError(t, repo.Create(c3))
	assert.Equal(t, 3, c3.ID)
}

// TestCommentUpdateLikes 部分更新可单独修改 likes
func TestCommentUpdateLikes(t *testing.T) {
	repo := NewCommentRepository()

	comment := &model.Comment{PostID: 1, AuthorName: "A", Text: "x"}
	assert.NoError(t, repo.Create(comment))

	time.Sleep(time.Millisecond)

	likes := 7
	updated, err := repo.Update(comment.ID, model.CommentUpdate{Likes: &likes})
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)
	assert.Equal(t, "A", updated.AuthorName)
	assert.Equal(t, "x", updated.Text)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

// TestCommentDeleteByPostID 按帖子批量删除，无匹配时为幂等空操作
func TestCommentDeleteByPostID(t *testing.T) {
	repo := NewCommentRepository()

	assert.NoError(t, repo.Create(&model.Comment{PostID: 1, AuthorName: "A", Text: "x"}))
	assert.NoError(t, repo.Create(&model.Comment{PostID: 2, AuthorName: "B", Text: "y"}))
	assert.NoError(t, repo.Create(&model.Comment{PostID: 1, AuthorName: "C", Text: "z"}))

	removed, err := repo.DeleteByPostID(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, removed)

	// 再删一次没有匹配，删除数量为零
	removed, err = repo.DeleteByPostID(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)

	comments, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, 2, comments[0].PostID)
}

// TestCommentNotFound 不存在的ID返回未找到错误
func TestCommentNotFound(t *testing.T) {
	repo := NewCommentRepository()

	_, err := repo.FindByID(9999)
	assert.True(t, errors.IsCode(err, errors.ErrCommentNotFound))

	_, err = repo.Delete(9999)
	assert.True(t, errors.IsCode(err, errors.ErrCommentNotFound))
}
