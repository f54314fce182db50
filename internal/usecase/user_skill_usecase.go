package usecase

import (
	"context"

	"skillswap/internal/repository"
)

// ListKind selects which of the two skill lists an operation targets.
type ListKind string

const (
	ListOffered ListKind = "offered"
	ListWanted  ListKind = "wanted"
)

type UserSkillUsecase interface {
	AddSkillToList(ctx context.Context, userID string, skillID int64, kind ListKind) error
	RemoveSkillFromList(ctx context.Context, userID string, skillID int64, kind ListKind) error
}

type UserSkillService struct {
	repo  repository.UserSkillRepository
	cache Cache
}

func NewUserSkillService(repo repository.UserSkillRepository, cache Cache) *UserSkillService {
	return &UserSkillService{repo: repo, cache: cache}
}

func (s *UserSkillService) AddSkillToList(ctx context.Context, userID string, skillID int64, kind ListKind) error {
	if userID == "" || skillID <= 0 {
		return ErrInvalidInput
	}

	var err error
	switch kind {
	case ListOffered:
		err = s.repo.AddOffered(ctx, userID, skillID)
	case ListWanted:
		err = s.repo.AddWanted(ctx, userID, skillID)
	default:
		return ErrInvalidInput
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrSkillNotFound
		}
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return nil
}

func (s *UserSkillService) RemoveSkillFromList(ctx context.Context, userID string, skillID int64, kind ListKind) error {
	if userID == "" || skillID <= 0 {
		return ErrInvalidInput
	}

	var err error
	switch kind {
	case ListOffered:
		err = s.repo.RemoveOffered(ctx, userID, skillID)
	case ListWanted:
		err = s.repo.RemoveWanted(ctx, userID, skillID)
	default:
		return ErrInvalidInput
	}
	if err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return nil
}
