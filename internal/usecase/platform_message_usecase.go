package usecase

import (
	"context"
	"time"

	"skillswap/internal/repository"
)

type PlatformMessageItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PlatformMessageUsecase interface {
	ListActiveMessages(ctx context.Context) ([]PlatformMessageItem, error)
}

type PlatformMessageService struct {
	repo  repository.PlatformMessageRepository
	cache Cache
}

func NewPlatformMessageService(repo repository.PlatformMessageRepository, cache Cache) *PlatformMessageService {
	return &PlatformMessageService{repo: repo, cache: cache}
}

func (s *PlatformMessageService) ListActiveMessages(ctx context.Context) ([]PlatformMessageItem, error) {
	if s.cache != nil {
		var cached []PlatformMessageItem
		if hit, _ := s.cache.GetJSON(ctx, cacheKeyActiveMessages, &cached); hit {
			return cached, nil
		}
	}

	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PlatformMessageItem, 0, len(items))
	for _, m := range items {
		out = append(out, PlatformMessageItem{
			ID:        m.ID,
			Title:     m.Title,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKeyActiveMessages, out, 0)
	}
	return out, nil
}
