package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/repository"
)

type SkillItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name, category string) (SkillItem, error)
}

type SkillService struct {
	repo  repository.SkillRepository
	cache Cache
}

func NewSkillService(repo repository.SkillRepository, cache Cache) *SkillService {
	return &SkillService{repo: repo, cache: cache}
}

func (s *SkillService) ListSkills(ctx context.Context) ([]SkillItem, error) {
	if s.cache != nil {
		var cached []SkillItem
		if hit, _ := s.cache.GetJSON(ctx, cacheKeySkillCatalog, &cached); hit {
			return cached, nil
		}
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toSkillItem(it))
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKeySkillCatalog, out, 0)
	}
	return out, nil
}

// AddSkill finds or creates a catalog entry by case-insensitive name, so
// "Python" and "python" always resolve to the same row. A concurrent create
// losing the unique-index race falls back to reading the winner.
func (s *SkillService) AddSkill(ctx context.Context, name, category string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	existing, err := s.repo.GetByNameFold(ctx, name)
	if err == nil {
		return toSkillItem(existing), nil
	}
	if !errors.Is(err, repository.ErrSkillNotFound) {
		return SkillItem{}, err
	}

	var cat *string
	if c := strings.TrimSpace(category); c != "" {
		cat = &c
	}

	created, err := s.repo.Create(ctx, name, cat)
	if err != nil {
		if isUniqueViolation(err) {
			winner, readErr := s.repo.GetByNameFold(ctx, name)
			if readErr != nil {
				return SkillItem{}, readErr
			}
			return toSkillItem(winner), nil
		}
		return SkillItem{}, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKeySkillCatalog)
	}
	return toSkillItem(created), nil
}

func toSkillItem(s repository.Skill) SkillItem {
	item := SkillItem{ID: s.ID, Name: s.Name}
	if s.Category != nil {
		item.Category = *s.Category
	}
	return item
}
