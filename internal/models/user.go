package models

import "time"

// AdminUserID is the identifier of the only account allowed to create,
// edit, and delete posts.
const AdminUserID = 1

type User struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether this user is the administrator account.
func (u *User) IsAdmin() bool {
	return u.ID == AdminUserID
}

type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Name     string `form:"name" json:"name" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
