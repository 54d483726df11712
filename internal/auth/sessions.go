package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amaliagrey/blog-platform/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Sessions is the server-side session store. Cookies only carry a
// signed reference to a row here, so deleting the row logs the browser
// out no matter what it still holds.
type Sessions struct {
	db *gorm.DB
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

// Create starts a session for userID (zero for a guest session) and
// returns the row together with the signed cookie value.
func (s *Sessions) Create(userID int) (*models.Session, string, error) {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, "", err
	}

	token, err := SignSessionToken(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, "", err
	}
	return &session, token, nil
}

// Get loads the session a cookie value references, discarding it if
// expired.
func (s *Sessions) Get(tokenStr string) (*models.Session, error) {
	sessionID, err := ParseSessionToken(tokenStr)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		s.db.Delete(&session)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// User resolves a session to its user. A session pointing at a user
// that no longer exists is stale; it is removed and the caller is
// treated as anonymous.
func (s *Sessions) User(session *models.Session) (*models.User, error) {
	if session.UserID == 0 {
		return nil, ErrSessionNotFound
	}

	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.db.Delete(session)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes the session a cookie value references. Unknown or
// tampered tokens are a no-op: logout never fails.
func (s *Sessions) Delete(tokenStr string) {
	sessionID, err := ParseSessionToken(tokenStr)
	if err != nil {
		return
	}
	s.db.Delete(&models.Session{}, "id = ?", sessionID)
}

// SetFlash stores a one-time notice on the session.
func (s *Sessions) SetFlash(sessionID, message string) error {
	return s.db.Model(&models.Session{}).Where("id = ?", sessionID).
		Update("flash", message).Error
}

// PopFlash returns the pending notice, if any, and clears it.
func (s *Sessions) PopFlash(sessionID string) string {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return ""
	}
	if session.Flash == "" {
		return ""
	}
	s.db.Model(&session).Update("flash", "")
	return session.Flash
}

// DeleteExpired clears out sessions past their expiry.
func (s *Sessions) DeleteExpired() error {
	return s.db.Delete(&models.Session{}, "expires_at < ?", time.Now()).Error
}
