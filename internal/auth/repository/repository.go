package repository

import authdomain "vidtube-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, assigning id and timestamps
	Create(user *authdomain.User) error

	// FindByID finds a user by id; returns (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)

	// FindByUsernameOrEmail finds a user matching either field
	FindByUsernameOrEmail(username, email string) (*authdomain.User, error)

	// FindByEmail finds a user by email; returns (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// Update saves the full user record
	Update(user *authdomain.User) error

	// UpdateRefreshToken writes the refresh-token slot; nil clears it.
	// The write is acknowledged by the store before this returns.
	UpdateRefreshToken(userID string, token *string) error

	// UpdatePassword writes a new password hash and clears the
	// refresh-token slot in the same update
	UpdatePassword(userID string, passwordHash string) error

	// AddWatchHistory appends a watch-history entry
	AddWatchHistory(entry *authdomain.WatchHistoryEntry) error

	// WatchHistoryByUserID lists a user's watch history, newest first
	WatchHistoryByUserID(userID string) ([]*authdomain.WatchHistoryEntry, error)
}
