package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	Avatar         string    `json:"avatar,omitempty"`
	USN            string    `json:"usn,omitempty"`
	Department     string    `json:"department,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type CreateUserInput struct {
	Name           string
	Username       string
	Password       string
	Role           Role
	USN            string
	Department     string
	TelegramChatID *int64
}
