package model

import "time"

// Post 帖子模型，按插入顺序保存在内存中
type Post struct {
	ID         int       `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment 评论模型，post_id 指向所属帖子
type Comment struct {
	ID           int       `json:"id"`
	PostID       int       `json:"post_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar *string   `json:"author_avatar"`
	Text         string    `json:"text"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile 个人资料模型，user_id 指向用户（不做外键校验）
type Profile struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Username    string    `json:"username"`
	Description *string   `json:"description"`
	Photo       *string   `json:"photo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostUpdate 部分更新参数，nil 字段保持原值
type PostUpdate struct {
	AuthorName *string
	Text       *string
}

// CommentUpdate 评论部分更新参数
type CommentUpdate struct {
	AuthorName   *string
	AuthorAvatar *string
	Text         *string
	Likes        *int
}

// ProfileUpdate 资料部分更新参数
type ProfileUpdate struct {
	UserID      *int
	Username    *string
	Description *string
	Photo       *string
}
