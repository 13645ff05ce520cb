package usecase

import (
	"context"
	"log"
	"mime/multipart"
	"strings"

	authdomain "vidtube-backend/internal/auth/domain"
	authdto "vidtube-backend/internal/auth/dto"
	"vidtube-backend/internal/auth/repository"
	"vidtube-backend/pkg/apierror"
	"vidtube-backend/pkg/config"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	storage  MediaStorage
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, storage MediaStorage, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		storage:  storage,
		config:   cfg,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest, avatar, cover *multipart.FileHeader) (*authdomain.User, error) {
	username := normalize(req.Username)
	email := normalize(req.Email)
	fullName := strings.TrimSpace(req.FullName)

	if username == "" || email == "" || fullName == "" || req.Password == "" {
		return nil, apierror.BadRequest("input field cannot be empty")
	}

	existing, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apierror.Internal("could not check existing users").WithCause(err)
	}
	if existing != nil {
		return nil, apierror.Conflict("user with this username or email already exists")
	}

	if avatar == nil {
		return nil, apierror.BadRequest("avatar is required")
	}

	avatarURL, err := u.storage.Upload(ctx, avatar, "avatars")
	if err != nil {
		return nil, apierror.Internal("could not upload avatar").WithCause(err)
	}

	coverURL := ""
	if cover != nil {
		coverURL, err = u.storage.Upload(ctx, cover, "covers")
		if err != nil {
			return nil, apierror.Internal("could not upload cover image").WithCause(err)
		}
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apierror.Internal("could not hash password").WithCause(err)
	}

	user := &authdomain.User{
		Username:  username,
		Email:     email,
		FullName:  fullName,
		AvatarURL: avatarURL,
		CoverURL:  coverURL,
		Password:  hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, apierror.Internal("could not create user").WithCause(err)
	}

	return user.Sanitized(), nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	username := normalize(req.Username)
	email := normalize(req.Email)
	if username == "" && email == "" {
		return nil, apierror.BadRequest("username or email is required")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	return u.IssueTokenPair(user.ID)
}

// IssueTokenPair mints both tokens and persists the refresh token onto the
// user record. The store write is acknowledged before the pair is returned,
// so a client can never hold a refresh token that rotation would not find.
func (u *authUsecase) IssueTokenPair(userID string) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		return nil, apierror.NotFound("user not found")
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, apierror.Internal("could not sign access token").WithCause(err)
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, apierror.Internal("could not sign refresh token").WithCause(err)
	}

	if err := u.userRepo.UpdateRefreshToken(user.ID, &refreshToken); err != nil {
		return nil, apierror.Internal("could not persist refresh token").WithCause(err)
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitized(),
	}, nil
}

func (u *authUsecase) RefreshTokens(refreshToken string) (*authdto.TokenResponse, error) {
	claims, err := u.parseRefreshToken(refreshToken)
	if err != nil {
		log.Printf("refresh token rejected: %v", err)
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		log.Printf("refresh token rejected: user %s no longer exists", claims.UserID)
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	// Replay guard: a signed token that is not the currently stored one has
	// been rotated away (or the user logged out) and must not mint a pair.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		log.Printf("refresh token rejected: token for user %s expired or already used", user.ID)
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	return u.IssueTokenPair(user.ID)
}

func (u *authUsecase) Logout(userID string) error {
	if err := u.userRepo.UpdateRefreshToken(userID, nil); err != nil {
		return apierror.Internal("could not clear refresh token").WithCause(err)
	}
	return nil
}

func (u *authUsecase) ChangePassword(userID string, req *authdto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		return apierror.NotFound("user not found")
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return apierror.Unauthorized("incorrect password")
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return apierror.Internal("could not hash password").WithCause(err)
	}

	// Also drops the stored refresh token so existing sessions die with the
	// old password.
	if err := u.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apierror.Internal("could not update password").WithCause(err)
	}
	return nil
}

func (u *authUsecase) ValidateAccessToken(tokenString string) (*authdomain.User, error) {
	claims, err := u.parseAccessToken(tokenString)
	if err != nil {
		log.Printf("access token rejected: %v", err)
		return nil, apierror.Unauthorized("invalid access token")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		log.Printf("access token rejected: user %s no longer exists", claims.UserID)
		return nil, apierror.Unauthorized("invalid access token")
	}

	return user.Sanitized(), nil
}
