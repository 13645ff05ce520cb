package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	authdomain "vidtube-backend/internal/auth/domain"
	"vidtube-backend/internal/auth/repository"
	authusecase "vidtube-backend/internal/auth/usecase"
	userdto "vidtube-backend/internal/users/dto"
	"vidtube-backend/pkg/apierror"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
	storage  authusecase.MediaStorage
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, storage authusecase.MediaStorage) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (u *userUsecase) loadUser(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apierror.Internal("could not look up user").WithCause(err)
	}
	if user == nil {
		return nil, apierror.NotFound("user not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		user.FullName = fullName
	}

	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
		existing, err := u.userRepo.FindByEmail(email)
		if err != nil {
			return nil, apierror.Internal("could not check existing users").WithCause(err)
		}
		if existing != nil {
			return nil, apierror.Conflict("email already in use")
		}
		user.Email = email
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, apierror.Internal("could not update profile").WithCause(err)
	}
	return user.Sanitized(), nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*authdomain.User, error) {
	if file == nil {
		return nil, apierror.BadRequest("avatar file is required")
	}

	user, err := u.loadUser(userID)
	if err != nil {
		return nil, err
	}

	url, err := u.storage.Upload(ctx, file, "avatars")
	if err != nil {
		return nil, apierror.Internal("could not upload avatar").WithCause(err)
	}

	user.AvatarURL = url
	if err := u.userRepo.Update(user); err != nil {
		return nil, apierror.Internal("could not update avatar").WithCause(err)
	}
	return user.Sanitized(), nil
}

func (u *userUsecase) UpdateCover(ctx context.Context, userID string, file *multipart.FileHeader) (*authdomain.User, error) {
	if file == nil {
		return nil, apierror.BadRequest("cover image file is required")
	}

	user, err := u.loadUser(userID)
	if err != nil {
		return nil, err
	}

	url, err := u.storage.Upload(ctx, file, "covers")
	if err != nil {
		return nil, apierror.Internal("could not upload cover image").WithCause(err)
	}

	user.CoverURL = url
	if err := u.userRepo.Update(user); err != nil {
		return nil, apierror.Internal("could not update cover image").WithCause(err)
	}
	return user.Sanitized(), nil
}

func (u *userUsecase) WatchHistory(userID string) ([]*authdomain.WatchHistoryEntry, error) {
	entries, err := u.userRepo.WatchHistoryByUserID(userID)
	if err != nil {
		return nil, apierror.Internal("could not load watch history").WithCause(err)
	}
	return entries, nil
}

func (u *userUsecase) AddWatchHistory(userID, videoID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return apierror.BadRequest("video id is required")
	}

	entry := &authdomain.WatchHistoryEntry{
		UserID:  userID,
		VideoID: videoID,
	}
	if err := u.userRepo.AddWatchHistory(entry); err != nil {
		return apierror.Internal("could not record watch history").WithCause(err)
	}
	return nil
}
