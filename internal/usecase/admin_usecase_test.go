package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestAdminService_BanUser_WritesOneAuditRow(t *testing.T) {
	users := &mockUserRepo{users: map[string]repository.User{"u1": {ID: "u1", IsPublic: true}}}
	audit := &mockAuditRepo{}
	uc := NewAdminService(users, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, audit, nil, nil)

	if err := uc.BanUser(context.Background(), "admin1", "u1", "spam"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(users.setPublicCalls) != 1 || users.setPublicCalls[0].Public {
		t.Fatalf("expected one SetPublic(false) call, got %+v", users.setPublicCalls)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected exactly 1 audit row, got %d", len(audit.entries))
	}
	e := audit.entries[0]
	if e.Action != repository.ActionBanUser || e.AdminID != "admin1" || e.TargetID != "u1" {
		t.Fatalf("unexpected audit row: %+v", e)
	}
	if e.Reason == nil || *e.Reason != "spam" {
		t.Fatalf("expected reason to be recorded, got %v", e.Reason)
	}
}

func TestAdminService_BanUser_UnknownUser(t *testing.T) {
	audit := &mockAuditRepo{}
	uc := NewAdminService(&mockUserRepo{}, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, audit, nil, nil)

	if err := uc.BanUser(context.Background(), "admin1", "ghost", ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no audit rows for failed ban, got %d", len(audit.entries))
	}
}

func TestAdminService_UnbanUser_RestoresVisibility(t *testing.T) {
	users := &mockUserRepo{users: map[string]repository.User{"u1": {ID: "u1", IsPublic: false}}}
	audit := &mockAuditRepo{}
	uc := NewAdminService(users, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, audit, nil, nil)

	if err := uc.UnbanUser(context.Background(), "admin1", "u1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !users.users["u1"].IsPublic {
		t.Fatalf("expected user public again")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != repository.ActionUnbanUser {
		t.Fatalf("unexpected audit entries: %+v", audit.entries)
	}
}

func TestAdminService_ApproveSkill_AuditOnly(t *testing.T) {
	skills := &mockSkillRepo{all: []repository.Skill{{ID: 4, Name: "Juggling"}}}
	audit := &mockAuditRepo{}
	uc := NewAdminService(&mockUserRepo{}, skills, &mockSwapRepo{}, &mockMessageRepo{}, audit, nil, nil)

	if err := uc.ApproveSkill(context.Background(), "admin1", 4); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills.deleted) != 0 {
		t.Fatalf("approve must not touch the catalog, deleted %v", skills.deleted)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != repository.ActionApproveSkill || audit.entries[0].TargetID != "4" {
		t.Fatalf("unexpected audit entries: %+v", audit.entries)
	}
}

func TestAdminService_RejectSkill_DeletesAndInvalidates(t *testing.T) {
	skills := &mockSkillRepo{}
	audit := &mockAuditRepo{}
	cache := &mockCache{}
	uc := NewAdminService(&mockUserRepo{}, skills, &mockSwapRepo{}, &mockMessageRepo{}, audit, cache, nil)

	if err := uc.RejectSkill(context.Background(), "admin1", 4, "duplicate"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills.deleted) != 1 || skills.deleted[0] != 4 {
		t.Fatalf("expected skill 4 deleted, got %v", skills.deleted)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != repository.ActionRejectSkill {
		t.Fatalf("unexpected audit entries: %+v", audit.entries)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "skills:catalog" {
		t.Fatalf("expected catalog invalidation, got %v", cache.deleted)
	}
	if len(cache.patterns) != 1 || cache.patterns[0] != "users:profile:*" {
		t.Fatalf("expected profile pattern invalidation, got %v", cache.patterns)
	}
}

func TestAdminService_RejectSkill_Missing(t *testing.T) {
	skills := &mockSkillRepo{deleteErr: repository.ErrSkillNotFound}
	uc := NewAdminService(&mockUserRepo{}, skills, &mockSwapRepo{}, &mockMessageRepo{}, &mockAuditRepo{}, nil, nil)

	if err := uc.RejectSkill(context.Background(), "admin1", 99, ""); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAdminService_RejectSkill_InUseBySwapRequests(t *testing.T) {
	skills := &mockSkillRepo{deleteErr: &pgconn.PgError{Code: "23503"}}
	audit := &mockAuditRepo{}
	cache := &mockCache{}
	uc := NewAdminService(&mockUserRepo{}, skills, &mockSwapRepo{}, &mockMessageRepo{}, audit, cache, nil)

	if err := uc.RejectSkill(context.Background(), "admin1", 4, "duplicate"); !errors.Is(err, ErrSkillInUse) {
		t.Fatalf("expected ErrSkillInUse, got %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no audit rows for failed reject, got %+v", audit.entries)
	}
	if len(cache.deleted) != 0 || len(cache.patterns) != 0 {
		t.Fatalf("expected no cache invalidation, got deleted=%v patterns=%v", cache.deleted, cache.patterns)
	}
}

func TestAdminService_ListAuditLog(t *testing.T) {
	audit := &mockAuditRepo{log: []repository.AdminAction{
		{ID: 2, AdminID: "admin1", Action: repository.ActionRejectSkill, TargetID: "4"},
		{ID: 1, AdminID: "admin1", Action: repository.ActionBanUser, TargetID: "u1"},
	}}
	uc := NewAdminService(&mockUserRepo{}, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, audit, nil, nil)

	items, err := uc.ListAuditLog(context.Background(), "admin1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if audit.lastListedAdmin != "admin1" {
		t.Fatalf("expected lookup scoped to admin1, got %q", audit.lastListedAdmin)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].Action != repository.ActionBanUser {
		t.Fatalf("unexpected audit log: %+v", items)
	}
}

func TestAdminService_ListAuditLog_EmptyAdmin(t *testing.T) {
	uc := NewAdminService(&mockUserRepo{}, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, &mockAuditRepo{}, nil, nil)
	if _, err := uc.ListAuditLog(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdminService_CreatePlatformMessage(t *testing.T) {
	messages := &mockMessageRepo{}
	audit := &mockAuditRepo{}
	notifier := &mockNotifier{}
	uc := NewAdminService(&mockUserRepo{}, &mockSkillRepo{}, &mockSwapRepo{}, messages, audit, nil, notifier)

	created, err := uc.CreatePlatformMessage(context.Background(), "admin1", "  Maintenance  ", " Down at noon. ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Title != "Maintenance" || created.Content != "Down at noon." {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != repository.ActionSendMessage {
		t.Fatalf("unexpected audit entries: %+v", audit.entries)
	}
	if len(notifier.events) != 1 || notifier.events[0].Event != EventPlatformMessage {
		t.Fatalf("expected one platform_message event, got %+v", notifier.events)
	}
}

func TestAdminService_CreatePlatformMessage_BlankContent(t *testing.T) {
	uc := NewAdminService(&mockUserRepo{}, &mockSkillRepo{}, &mockSwapRepo{}, &mockMessageRepo{}, &mockAuditRepo{}, nil, nil)
	if _, err := uc.CreatePlatformMessage(context.Background(), "admin1", "Title", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
