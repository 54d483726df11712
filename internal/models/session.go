package models

import "time"

// Session is a server-side login session. The browser only ever holds a
// signed token referencing the ID, so deleting the row invalidates the
// login everywhere at once.
type Session struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// UserID is zero for guest sessions, which exist only to carry a
	// flash notice across a redirect.
	UserID int `gorm:"index" json:"user_id"`

	// Flash holds at most one pending notice, cleared when read.
	Flash string `gorm:"size:250" json:"-"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
