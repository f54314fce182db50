package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"skillswap/internal/repository"
)

type mockFileStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (m *mockFileStore) Save(name string, _ io.Reader) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, name)
	return nil
}

func (m *mockFileStore) Remove(name string) error {
	m.removed = append(m.removed, name)
	return nil
}

func photoInput(contentType string, size int64) UploadPhotoInput {
	return UploadPhotoInput{
		Filename:    "avatar.png",
		ContentType: contentType,
		Size:        size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("img")), nil
		},
	}
}

func TestProfilePhotoService_UploadPhoto_RejectsNonImage(t *testing.T) {
	uc := NewProfilePhotoService(&mockUserRepo{}, &mockFileStore{}, nil, 5<<20)
	_, _, err := uc.UploadPhoto(context.Background(), "u1", photoInput("application/pdf", 100))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfilePhotoService_UploadPhoto_RejectsOversize(t *testing.T) {
	uc := NewProfilePhotoService(&mockUserRepo{}, &mockFileStore{}, nil, 5<<20)
	_, _, err := uc.UploadPhoto(context.Background(), "u1", photoInput("image/png", 6<<20))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfilePhotoService_UploadPhoto_ReplacesPrevious(t *testing.T) {
	old := "/uploads/profile-old.png"
	users := &mockUserRepo{users: map[string]repository.User{
		"u1": {ID: "u1", CustomProfileImage: &old},
	}}
	store := &mockFileStore{}
	cache := &mockCache{}
	uc := NewProfilePhotoService(users, store, cache, 5<<20)

	url, updated, err := uc.UploadPhoto(context.Background(), "u1", photoInput("image/png", 1024))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/profile-") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url: %s", url)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 save, got %d", len(store.saved))
	}
	if len(store.removed) != 1 || store.removed[0] != "profile-old.png" {
		t.Fatalf("expected the old file removed, got %v", store.removed)
	}
	if updated.CustomProfileImage == nil || *updated.CustomProfileImage != url {
		t.Fatalf("expected profile pointed at new photo, got %v", updated.CustomProfileImage)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "users:profile:u1" {
		t.Fatalf("expected profile invalidation, got %v", cache.deleted)
	}
}

func TestProfilePhotoService_UploadPhoto_UserMissing(t *testing.T) {
	uc := NewProfilePhotoService(&mockUserRepo{}, &mockFileStore{}, nil, 5<<20)
	_, _, err := uc.UploadPhoto(context.Background(), "ghost", photoInput("image/png", 1024))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfilePhotoService_DeletePhoto_NoCustomPhoto(t *testing.T) {
	users := &mockUserRepo{users: map[string]repository.User{"u1": {ID: "u1"}}}
	uc := NewProfilePhotoService(users, &mockFileStore{}, nil, 5<<20)

	_, err := uc.DeletePhoto(context.Background(), "u1")
	if !errors.Is(err, ErrNoCustomProfilePhoto) {
		t.Fatalf("expected ErrNoCustomProfilePhoto, got %v", err)
	}
}

func TestProfilePhotoService_DeletePhoto_RemovesFileAndClears(t *testing.T) {
	old := "/uploads/profile-old.png"
	users := &mockUserRepo{users: map[string]repository.User{
		"u1": {ID: "u1", CustomProfileImage: &old},
	}}
	store := &mockFileStore{}
	uc := NewProfilePhotoService(users, store, nil, 5<<20)

	updated, err := uc.DeletePhoto(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "profile-old.png" {
		t.Fatalf("expected file removed, got %v", store.removed)
	}
	if updated.CustomProfileImage != nil {
		t.Fatalf("expected custom photo cleared, got %v", *updated.CustomProfileImage)
	}
}
