package models

import "time"

type Comment struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Date     string `gorm:"size:250;not null" json:"date"`
	Body     string `gorm:"type:text;not null" json:"body"`
	PostID   int    `gorm:"not null" json:"post_id"`
	AuthorID int    `gorm:"not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}

type CommentRequest struct {
	Body string `form:"comment" json:"comment" binding:"required"`
}
