package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/middleware"
	"github.com/amaliagrey/blog-platform/internal/models"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions *auth.Sessions
}

func NewAuthHandler(db *gorm.DB, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions}
}

// RegisterForm returns the registration view data.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "register",
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

// Register creates an account and logs it in. A duplicate email is
// rejected by the unique index on users.email, so two simultaneous
// registrations cannot both land.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.Flash(c, h.sessions, "Email already registered. Please login.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// LoginForm returns the login view data.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "login",
		"flash": middleware.PopFlash(c, h.sessions),
	})
}

// Login authenticates by email and password and establishes the
// session identity.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		middleware.Flash(c, h.sessions, "This email is not registered.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, input.Password) {
		middleware.Flash(c, h.sessions, "Wrong password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout drops the session unconditionally. It cannot fail, even with
// no session at all.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.sessions.Delete(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// startSession replaces whatever session the browser had with a fresh
// one for userID.
func (h *AuthHandler) startSession(c *gin.Context, userID int) error {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.sessions.Delete(token)
	}

	_, token, err := h.sessions.Create(userID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	return nil
}
