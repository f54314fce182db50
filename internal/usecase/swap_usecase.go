package usecase

import (
	"context"
	"errors"

	"skillswap/internal/repository"
)

// Swap request lifecycle.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// statusTransitions is the guarded state machine: pending can be answered,
// an accepted swap can be completed, rejected and completed are terminal.
var statusTransitions = map[string][]string{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Event names published to the notification hub.
const (
	EventSwapRequest     = "swap_request"
	EventPlatformMessage = "platform_message"
)

type CreateSwapInput struct {
	RecipientID    string
	OfferedSkillID int64
	WantedSkillID  int64
	Message        *string
}

type SwapUsecase interface {
	CreateSwapRequest(ctx context.Context, requesterID string, in CreateSwapInput) (repository.SwapRequest, error)
	ListSwapRequests(ctx context.Context, userID string) ([]repository.SwapRequestDetail, error)
	UpdateStatus(ctx context.Context, callerID string, id int64, status string) (repository.SwapRequest, error)
	DeleteSwapRequest(ctx context.Context, callerID string, id int64) error
}

type SwapService struct {
	swaps    repository.SwapRequestRepository
	users    repository.UserRepository
	notifier Notifier
}

func NewSwapService(swaps repository.SwapRequestRepository, users repository.UserRepository, notifier Notifier) *SwapService {
	return &SwapService{swaps: swaps, users: users, notifier: notifier}
}

func (s *SwapService) CreateSwapRequest(ctx context.Context, requesterID string, in CreateSwapInput) (repository.SwapRequest, error) {
	if requesterID == "" || in.RecipientID == "" || in.OfferedSkillID <= 0 || in.WantedSkillID <= 0 {
		return repository.SwapRequest{}, ErrInvalidInput
	}
	if requesterID == in.RecipientID {
		return repository.SwapRequest{}, ErrSelfSwap
	}

	if _, err := s.users.GetByID(ctx, in.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.SwapRequest{}, ErrUserNotFound
		}
		return repository.SwapRequest{}, err
	}

	created, err := s.swaps.Create(ctx, repository.CreateSwapRequest{
		RequesterID:    requesterID,
		RecipientID:    in.RecipientID,
		OfferedSkillID: in.OfferedSkillID,
		WantedSkillID:  in.WantedSkillID,
		Message:        in.Message,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.SwapRequest{}, ErrSkillNotFound
		}
		return repository.SwapRequest{}, err
	}

	s.publish(created, "created")
	return created, nil
}

func (s *SwapService) ListSwapRequests(ctx context.Context, userID string) ([]repository.SwapRequestDetail, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.swaps.ListForUser(ctx, userID)
}

// UpdateStatus applies a guarded transition. Only the recipient may answer a
// pending request; either party may mark an accepted swap completed.
func (s *SwapService) UpdateStatus(ctx context.Context, callerID string, id int64, status string) (repository.SwapRequest, error) {
	if callerID == "" || id <= 0 {
		return repository.SwapRequest{}, ErrInvalidInput
	}
	switch status {
	case StatusAccepted, StatusRejected, StatusCompleted:
	default:
		return repository.SwapRequest{}, ErrInvalidInput
	}

	current, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return repository.SwapRequest{}, ErrSwapRequestNotFound
		}
		return repository.SwapRequest{}, err
	}

	switch status {
	case StatusAccepted, StatusRejected:
		if current.RecipientID != callerID {
			return repository.SwapRequest{}, ErrForbidden
		}
	case StatusCompleted:
		if current.RequesterID != callerID && current.RecipientID != callerID {
			return repository.SwapRequest{}, ErrForbidden
		}
	}

	if !CanTransition(current.Status, status) {
		return repository.SwapRequest{}, ErrIllegalTransition
	}

	updated, err := s.swaps.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return repository.SwapRequest{}, ErrSwapRequestNotFound
		}
		return repository.SwapRequest{}, err
	}

	s.publish(updated, status)
	return updated, nil
}

// DeleteSwapRequest removes a request on behalf of its requester while it is
// still pending. Anything else leaves the row and reports why.
func (s *SwapService) DeleteSwapRequest(ctx context.Context, callerID string, id int64) error {
	if callerID == "" || id <= 0 {
		return ErrInvalidInput
	}

	current, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return ErrSwapRequestNotFound
		}
		return err
	}
	if current.RequesterID != callerID {
		return ErrForbidden
	}
	if current.Status != StatusPending {
		return ErrSwapNotDeletable
	}

	deleted, err := s.swaps.DeleteByRequester(ctx, id, callerID)
	if err != nil {
		return err
	}
	if !deleted {
		// Lost a race with a concurrent status change.
		return ErrSwapNotDeletable
	}
	return nil
}

func (s *SwapService) publish(sr repository.SwapRequest, action string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(EventSwapRequest, map[string]any{
		"id":          sr.ID,
		"action":      action,
		"status":      sr.Status,
		"requesterId": sr.RequesterID,
		"recipientId": sr.RecipientID,
	})
}
