package handlers

import (
	"time"

	"gorm.io/gorm"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/models"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	Page    *PageHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, sessions *auth.Sessions) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db, sessions),
		Post:    NewPostHandler(db, sessions),
		Comment: NewCommentHandler(db, sessions),
		Page:    NewPageHandler(sessions),
	}
}

// today is the publish date stamped on new posts and comments,
// e.g. "April 05, 2024".
func today() string {
	return time.Now().Format(models.DateLayout)
}
