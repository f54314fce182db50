package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"skillswap/internal/repository"
)

type AdminUsecase interface {
	ListAllUsers(ctx context.Context) ([]repository.User, error)
	BanUser(ctx context.Context, adminID, userID, reason string) error
	UnbanUser(ctx context.Context, adminID, userID string) error
	ListPendingSkills(ctx context.Context) ([]SkillItem, error)
	ApproveSkill(ctx context.Context, adminID string, skillID int64) error
	RejectSkill(ctx context.Context, adminID string, skillID int64, reason string) error
	ListAllSwapRequests(ctx context.Context) ([]repository.SwapRequest, error)
	ListAuditLog(ctx context.Context, adminID string) ([]repository.AdminAction, error)
	CreatePlatformMessage(ctx context.Context, adminID, title, content string) (repository.PlatformMessage, error)
}

type AdminService struct {
	users    repository.UserRepository
	skills   repository.SkillRepository
	swaps    repository.SwapRequestRepository
	messages repository.PlatformMessageRepository
	audit    repository.AdminActionRepository
	cache    Cache
	notifier Notifier
}

func NewAdminService(
	users repository.UserRepository,
	skills repository.SkillRepository,
	swaps repository.SwapRequestRepository,
	messages repository.PlatformMessageRepository,
	audit repository.AdminActionRepository,
	cache Cache,
	notifier Notifier,
) *AdminService {
	return &AdminService{
		users:    users,
		skills:   skills,
		swaps:    swaps,
		messages: messages,
		audit:    audit,
		cache:    cache,
		notifier: notifier,
	}
}

func (s *AdminService) ListAllUsers(ctx context.Context) ([]repository.User, error) {
	return s.users.ListAll(ctx)
}

// BanUser hides the user from browse and search and appends one audit row.
func (s *AdminService) BanUser(ctx context.Context, adminID, userID, reason string) error {
	if adminID == "" || userID == "" {
		return ErrInvalidInput
	}

	if err := s.users.SetPublic(ctx, userID, false); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.audit.Log(ctx, adminID, repository.ActionBanUser, userID, optionalReason(reason)); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return nil
}

func (s *AdminService) UnbanUser(ctx context.Context, adminID, userID string) error {
	if adminID == "" || userID == "" {
		return ErrInvalidInput
	}

	if err := s.users.SetPublic(ctx, userID, true); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.audit.Log(ctx, adminID, repository.ActionUnbanUser, userID, nil); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(userID))
	}
	return nil
}

// The moderation queue surfaces the newest catalog entries first.
func (s *AdminService) ListPendingSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := s.skills.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toSkillItem(it))
	}
	return out, nil
}

// ApproveSkill records the decision only. Skills are usable the moment they
// enter the catalog, so approval has no state to flip; the audit row keeps
// the moderation trail intact.
func (s *AdminService) ApproveSkill(ctx context.Context, adminID string, skillID int64) error {
	if adminID == "" || skillID <= 0 {
		return ErrInvalidInput
	}
	return s.audit.Log(ctx, adminID, repository.ActionApproveSkill, strconv.FormatInt(skillID, 10), nil)
}

// RejectSkill drops the catalog entry; offered/wanted links cascade away with it.
func (s *AdminService) RejectSkill(ctx context.Context, adminID string, skillID int64, reason string) error {
	if adminID == "" || skillID <= 0 {
		return ErrInvalidInput
	}

	if err := s.skills.Delete(ctx, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		// Swap requests reference skills without a cascade, so a skill that
		// is part of any swap cannot be rejected.
		if isForeignKeyViolation(err) {
			return ErrSkillInUse
		}
		return err
	}
	if err := s.audit.Log(ctx, adminID, repository.ActionRejectSkill, strconv.FormatInt(skillID, 10), optionalReason(reason)); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKeySkillCatalog)
		// Cascaded link deletes invalidate every cached profile.
		_ = s.cache.DeleteByPattern(ctx, cacheKeyProfilePrefix+"*")
	}
	return nil
}

func (s *AdminService) ListAllSwapRequests(ctx context.Context) ([]repository.SwapRequest, error) {
	return s.swaps.ListAll(ctx)
}

// ListAuditLog returns the caller's own moderation trail, newest first.
func (s *AdminService) ListAuditLog(ctx context.Context, adminID string) ([]repository.AdminAction, error) {
	if adminID == "" {
		return nil, ErrInvalidInput
	}
	return s.audit.ListForAdmin(ctx, adminID)
}

func (s *AdminService) CreatePlatformMessage(ctx context.Context, adminID, title, content string) (repository.PlatformMessage, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if adminID == "" || title == "" || content == "" {
		return repository.PlatformMessage{}, ErrInvalidInput
	}

	created, err := s.messages.Create(ctx, repository.CreatePlatformMessage{
		Title:     title,
		Content:   content,
		CreatedBy: adminID,
	})
	if err != nil {
		return repository.PlatformMessage{}, err
	}

	if err := s.audit.Log(ctx, adminID, repository.ActionSendMessage, strconv.FormatInt(created.ID, 10), nil); err != nil {
		return repository.PlatformMessage{}, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKeyActiveMessages)
	}
	if s.notifier != nil {
		s.notifier.Publish(EventPlatformMessage, map[string]any{
			"id":      created.ID,
			"title":   created.Title,
			"content": created.Content,
		})
	}
	return created, nil
}

func optionalReason(reason string) *string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil
	}
	return &reason
}
