package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/middleware"
)

// PageHandler serves the static informational pages.
type PageHandler struct {
	sessions *auth.Sessions
}

func NewPageHandler(sessions *auth.Sessions) *PageHandler {
	return &PageHandler{sessions: sessions}
}

func (h *PageHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "about",
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "contact",
		"flash": middleware.PopFlash(c, h.sessions),
	})
}
