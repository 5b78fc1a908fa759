package model

import "time"

// User 结构体表示用户模型
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // 密码不应在JSON中暴露
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser 注册响应中返回的用户公开信息
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Public 返回不含凭据的用户视图
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
