package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaliagrey/blog-platform/internal/auth"
	"github.com/amaliagrey/blog-platform/internal/models"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"

	ContextSessionKey = "session"
	ContextUserIDKey  = "user_id"
	ContextUserKey    = "user"
)

// CurrentUser resolves the session cookie into a session and user on
// the request context. Anonymous requests pass through untouched;
// every route runs behind this.
func CurrentUser(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := sessions.Get(token)
		if err != nil {
			// Expired or tampered cookie: drop it.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		if session.UserID == 0 {
			// Guest session: no identity, but it still carries flash.
			c.Set(ContextSessionKey, session)
			c.Next()
			return
		}

		user, err := sessions.User(session)
		if err != nil {
			// Stale session whose user is gone: the row was removed,
			// so it must not linger on the context where a later
			// Flash would write to a deleted row.
			if errors.Is(err, auth.ErrSessionNotFound) {
				c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			}
			c.Next()
			return
		}

		c.Set(ContextSessionKey, session)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireUser lets authenticated users through; anonymous callers are
// sent to the login page with a notice explaining why.
func RequireUser(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserIDKey); !exists {
			Flash(c, sessions, "You need to login to leave a comment.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only the administrator account. Everyone else,
// anonymous included, gets a hard 403 with no redirect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// UserFrom returns the resolved user for the request, or nil for
// anonymous callers.
func UserFrom(c *gin.Context) *models.User {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := raw.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SessionFrom returns the request's session, if any.
func SessionFrom(c *gin.Context) *models.Session {
	raw, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	session, ok := raw.(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// Flash stores a one-time notice for the next page this browser loads,
// starting a guest session when the caller has none.
func Flash(c *gin.Context, sessions *auth.Sessions, message string) {
	session := SessionFrom(c)
	if session == nil {
		created, token, err := sessions.Create(0)
		if err != nil {
			log.Printf("create guest session: %v", err)
			return
		}
		c.SetCookie(SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
		session = created
		c.Set(ContextSessionKey, session)
	}
	if err := sessions.SetFlash(session.ID, message); err != nil {
		// The redirect still happens; only the notice is lost.
		log.Printf("set flash: %v", err)
	}
}

// PopFlash returns and clears the pending notice for this request's
// session.
func PopFlash(c *gin.Context, sessions *auth.Sessions) string {
	session := SessionFrom(c)
	if session == nil {
		return ""
	}
	return sessions.PopFlash(session.ID)
}
