package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// FileStore persists uploaded files under flat names. Remove tolerates
// missing files.
type FileStore interface {
	Save(name string, src io.Reader) error
	Remove(name string) error
}

type UploadPhotoInput struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type ProfilePhotoUsecase interface {
	UploadPhoto(ctx context.Context, userID string, in UploadPhotoInput) (string, repository.User, error)
	DeletePhoto(ctx context.Context, userID string) (repository.User, error)
}

type ProfilePhotoService struct {
	users        repository.UserRepository
	store        FileStore
	cache        Cache
	maxFileBytes int64
}

func NewProfilePhotoService(users repository.UserRepository, store FileStore, cache Cache, maxFileBytes int64) *ProfilePhotoService {
	return &ProfilePhotoService{users: users, store: store, cache: cache, maxFileBytes: maxFileBytes}
}

// UploadPhoto stores the image under a fresh name, points the profile at it,
// and removes the previously uploaded file. Returns the public URL.
func (s *ProfilePhotoService) UploadPhoto(ctx context.Context, userID string, in UploadPhotoInput) (string, repository.User, error) {
	if userID == "" || in.Open == nil {
		return "", repository.User{}, ErrInvalidInput
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return "", repository.User{}, ErrInvalidInput
	}
	if s.maxFileBytes > 0 && in.Size > s.maxFileBytes {
		return "", repository.User{}, ErrInvalidInput
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", repository.User{}, ErrUserNotFound
		}
		return "", repository.User{}, err
	}

	name := "profile-" + uuid.NewString() + path.Ext(in.Filename)

	src, err := in.Open()
	if err != nil {
		return "", repository.User{}, err
	}
	defer src.Close()

	if err := s.store.Save(name, src); err != nil {
		return "", repository.User{}, err
	}

	photoURL := "/uploads/" + name
	updated, err := s.users.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		CustomProfileImage: &photoURL,
	})
	if err != nil {
		_ = s.store.Remove(name)
		return "", repository.User{}, err
	}

	if current.CustomProfileImage != nil {
		_ = s.store.Remove(path.Base(*current.CustomProfileImage))
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return photoURL, updated, nil
}

func (s *ProfilePhotoService) DeletePhoto(ctx context.Context, userID string) (repository.User, error) {
	if userID == "" {
		return repository.User{}, ErrInvalidInput
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, err
	}
	if current.CustomProfileImage == nil {
		return repository.User{}, ErrNoCustomProfilePhoto
	}

	_ = s.store.Remove(path.Base(*current.CustomProfileImage))

	updated, err := s.users.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		ClearProfileImage: true,
	})
	if err != nil {
		return repository.User{}, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return updated, nil
}
