package usecase

import (
	"context"
	"mime/multipart"

	authdomain "vidtube-backend/internal/auth/domain"
	userdto "vidtube-backend/internal/users/dto"
)

// UserUsecase defines the interface for profile use cases
type UserUsecase interface {
	// UpdateProfile updates fullname and/or email
	UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*authdomain.User, error)

	// UpdateAvatar uploads a new avatar image and stores its URL
	UpdateAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*authdomain.User, error)

	// UpdateCover uploads a new cover image and stores its URL
	UpdateCover(ctx context.Context, userID string, file *multipart.FileHeader) (*authdomain.User, error)

	// WatchHistory lists the user's watch history, newest first
	WatchHistory(userID string) ([]*authdomain.WatchHistoryEntry, error)

	// AddWatchHistory records that the user watched a video
	AddWatchHistory(userID, videoID string) error
}
