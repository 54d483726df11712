package models

import "time"

// DateLayout is the long-form calendar date stored on posts and
// comments, e.g. "April 05, 2024".
const DateLayout = "January 02, 2006"

type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"uniqueIndex;size:250;not null" json:"title"`
	Subtitle string `gorm:"size:250" json:"subtitle"`
	Date     string `gorm:"size:250;not null" json:"date"`
	Body     string `gorm:"type:text;not null" json:"body"`
	ImgURL   string `gorm:"size:250" json:"img_url"`
	AuthorID int    `gorm:"not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostRequest struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Subtitle string `form:"subtitle" json:"subtitle"`
	Body     string `form:"body" json:"body" binding:"required"`
	ImgURL   string `form:"img_url" json:"img_url"`
}
