package usecase

import (
	"context"
	"mime/multipart"

	authdomain "vidtube-backend/internal/auth/domain"
	authdto "vidtube-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	// Register creates a new account. The avatar file is required, the
	// cover image is optional; both are uploaded to media storage.
	Register(ctx context.Context, req *authdto.RegisterRequest, avatar, cover *multipart.FileHeader) (*authdomain.User, error)

	// Login verifies credentials and issues a token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Logout clears the user's stored refresh token
	Logout(userID string) error

	// RefreshTokens rotates a valid, currently-stored refresh token into
	// a fresh pair
	RefreshTokens(refreshToken string) (*authdto.TokenResponse, error)

	// ChangePassword verifies the old password, stores the new hash, and
	// invalidates the stored refresh token
	ChangePassword(userID string, req *authdto.ChangePasswordRequest) error

	// ValidateAccessToken verifies an access token and returns the
	// sanitized user it belongs to
	ValidateAccessToken(token string) (*authdomain.User, error)

	// IssueTokenPair mints and persists a fresh token pair for the user
	IssueTokenPair(userID string) (*authdto.TokenResponse, error)
}

// MediaStorage uploads user media and returns a public URL
type MediaStorage interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}
