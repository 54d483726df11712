package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/middleware"
	"github.com/amaliagrey/blog-platform/internal/models"
)

type CommentHandler struct {
	db       *gorm.DB
	sessions *auth.Sessions
}

func NewCommentHandler(db *gorm.DB, sessions *auth.Sessions) *CommentHandler {
	return &CommentHandler{db: db, sessions: sessions}
}

// AddComment attaches a comment to a post, stamped with today's date
// and the session identity as author. The route sits behind the
// authentication gate, so anonymous callers never reach this.
func (h *CommentHandler) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var input models.CommentRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.UserFrom(c)

	// Verify post exists
	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		Body:     input.Body,
		Date:     today(),
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	// Post/redirect/get: the follow-up GET shows the new comment.
	c.Redirect(http.StatusSeeOther, "/post/"+strconv.Itoa(post.ID))
}
