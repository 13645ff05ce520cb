package domain

import "time"

type User struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"uniqueIndex"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	FullName  string `json:"fullname"`
	AvatarURL string `json:"avatar_url"`
	CoverURL  string `json:"cover_url,omitempty"`
	Password  string `json:"-"` // Never return password in JSON
	// Single active refresh token per user; nil means logged out.
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to include in responses: the password hash
// and refresh token are stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.Password = ""
	clean.RefreshToken = nil
	return &clean
}

// WatchHistoryEntry records that a user watched a video. Video ids are
// opaque references; the video catalog lives in another service.
type WatchHistoryEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
}
