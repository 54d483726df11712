package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/middleware"
	"github.com/amaliagrey/blog-platform/internal/models"
)

type PostHandler struct {
	db       *gorm.DB
	sessions *auth.Sessions
}

func NewPostHandler(db *gorm.DB, sessions *auth.Sessions) *PostHandler {
	return &PostHandler{db: db, sessions: sessions}
}

// postID parses the :id route parameter. A non-numeric or unknown id
// is a plain 404, never a crash.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return 0, false
	}
	return id, true
}

// GetPosts returns every post, id ascending.
func (h *PostHandler) GetPosts(c *gin.Context) {
	var posts []models.Post
	if err := h.db.Preload("Author").Order("id asc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	// If no posts, return empty array not null
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

// GetPost returns a single post with its comments.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.Preload("Author").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	if err := h.db.Preload("Author").Where("post_id = ?", id).Order("id asc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"flash":    middleware.PopFlash(c, h.sessions),
	})
}

// NewPostForm returns the blank post form view data (admin only).
func (h *PostHandler) NewPostForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "new-post",
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

// CreatePost stores a new post authored by the administrator, stamped
// with today's date. Title uniqueness is enforced by the index on
// posts.title.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.PostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.UserFrom(c)

	post := models.Post{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		ImgURL:   input.ImgURL,
		Date:     today(),
		AuthorID: user.ID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.Flash(c, h.sessions, "A post with that title already exists.")
			c.Redirect(http.StatusSeeOther, "/new-post")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// EditPostForm returns the prefilled edit form view data (admin only).
func (h *PostHandler) EditPostForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  "edit-post",
		"post":  post,
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

// EditPost overwrites a post's title, subtitle, body, and image URL.
// The publish date and author never change on edit.
func (h *PostHandler) EditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var input models.PostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err := h.db.Model(&post).Updates(map[string]any{
		"title":    input.Title,
		"subtitle": input.Subtitle,
		"body":     input.Body,
		"img_url":  input.ImgURL,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.Flash(c, h.sessions, "A post with that title already exists.")
			c.Redirect(http.StatusSeeOther, "/edit-post/"+strconv.Itoa(id))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/post/"+strconv.Itoa(id))
}

// DeletePost removes a post together with its comments, in one
// transaction so no comment can outlive its post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
