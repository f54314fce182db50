package usecase

import (
	"context"
	"encoding/json"
	"time"

	"skillswap/internal/repository"
)

type mockUserRepo struct {
	users       map[string]repository.User
	publicUsers []repository.User
	total       int
	searched    []repository.User

	lastPatch  repository.ProfileUpdate
	lastLimit  int
	lastOffset int
	lastFilter repository.UserSearchFilter

	setPublicCalls []setPublicCall

	err error
}

type setPublicCall struct {
	ID     string
	Public bool
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Upsert(_ context.Context, in repository.UpsertUser) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u := repository.User{
		ID:              in.ID,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
		IsPublic:        true,
	}
	if m.users == nil {
		m.users = map[string]repository.User{}
	}
	m.users[in.ID] = u
	return u, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id string, patch repository.ProfileUpdate) (repository.User, error) {
	m.lastPatch = patch
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.Availability != nil {
		u.Availability = *patch.Availability
	}
	if patch.CustomProfileImage != nil {
		u.CustomProfileImage = patch.CustomProfileImage
	} else if patch.ClearProfileImage {
		u.CustomProfileImage = nil
	}
	m.users[id] = u
	return u, nil
}

func (m *mockUserRepo) Search(_ context.Context, filter repository.UserSearchFilter) ([]repository.User, error) {
	m.lastFilter = filter
	return m.searched, m.err
}

func (m *mockUserRepo) ListPublic(_ context.Context, limit, offset int) ([]repository.User, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	return m.publicUsers, m.err
}

func (m *mockUserRepo) CountPublic(context.Context) (int, error) { return m.total, m.err }

func (m *mockUserRepo) ListAll(context.Context) ([]repository.User, error) {
	return m.publicUsers, m.err
}

func (m *mockUserRepo) SetPublic(_ context.Context, id string, public bool) error {
	m.setPublicCalls = append(m.setPublicCalls, setPublicCall{ID: id, Public: public})
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	u := m.users[id]
	u.IsPublic = public
	m.users[id] = u
	return nil
}

type mockUserSkillRepo struct {
	offered map[string][]repository.SkillRef
	wanted  map[string][]repository.SkillRef

	added   []linkCall
	removed []linkCall

	err error
}

type linkCall struct {
	UserID  string
	SkillID int64
	Kind    string
}

func (m *mockUserSkillRepo) ListOffered(_ context.Context, userID string) ([]repository.SkillRef, error) {
	return m.offered[userID], m.err
}

func (m *mockUserSkillRepo) ListWanted(_ context.Context, userID string) ([]repository.SkillRef, error) {
	return m.wanted[userID], m.err
}

func (m *mockUserSkillRepo) AddOffered(_ context.Context, userID string, skillID int64) error {
	m.added = append(m.added, linkCall{UserID: userID, SkillID: skillID, Kind: "offered"})
	return m.err
}

func (m *mockUserSkillRepo) AddWanted(_ context.Context, userID string, skillID int64) error {
	m.added = append(m.added, linkCall{UserID: userID, SkillID: skillID, Kind: "wanted"})
	return m.err
}

func (m *mockUserSkillRepo) RemoveOffered(_ context.Context, userID string, skillID int64) error {
	m.removed = append(m.removed, linkCall{UserID: userID, SkillID: skillID, Kind: "offered"})
	return m.err
}

func (m *mockUserSkillRepo) RemoveWanted(_ context.Context, userID string, skillID int64) error {
	m.removed = append(m.removed, linkCall{UserID: userID, SkillID: skillID, Kind: "wanted"})
	return m.err
}

type mockRatingRepo struct {
	averages map[string]float64
	list     []repository.Rating
	created  []repository.CreateRating
	err      error
}

func (m *mockRatingRepo) Create(_ context.Context, in repository.CreateRating) (repository.Rating, error) {
	if m.err != nil {
		return repository.Rating{}, m.err
	}
	m.created = append(m.created, in)
	return repository.Rating{
		ID:            int64(len(m.created)),
		SwapRequestID: in.SwapRequestID,
		RaterID:       in.RaterID,
		RatedID:       in.RatedID,
		Rating:        in.Rating,
		Feedback:      in.Feedback,
	}, nil
}

func (m *mockRatingRepo) ListForUser(context.Context, string) ([]repository.Rating, error) {
	return m.list, m.err
}

func (m *mockRatingRepo) AverageForUser(_ context.Context, userID string) (float64, error) {
	return m.averages[userID], m.err
}

type foldResult struct {
	skill repository.Skill
	err   error
}

type mockSkillRepo struct {
	all       []repository.Skill
	foldSeq   []foldResult
	created   []repository.Skill
	createErr error
	deleteErr error
	deleted   []int64
}

func (m *mockSkillRepo) GetAll(context.Context) ([]repository.Skill, error) { return m.all, nil }

func (m *mockSkillRepo) GetByNameFold(context.Context, string) (repository.Skill, error) {
	if len(m.foldSeq) == 0 {
		return repository.Skill{}, repository.ErrSkillNotFound
	}
	r := m.foldSeq[0]
	m.foldSeq = m.foldSeq[1:]
	return r.skill, r.err
}

func (m *mockSkillRepo) Create(_ context.Context, name string, category *string) (repository.Skill, error) {
	if m.createErr != nil {
		return repository.Skill{}, m.createErr
	}
	s := repository.Skill{ID: int64(len(m.created) + 1), Name: name, Category: category}
	m.created = append(m.created, s)
	return s, nil
}

func (m *mockSkillRepo) ListNewestFirst(context.Context) ([]repository.Skill, error) {
	return m.all, nil
}

func (m *mockSkillRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSwapRepo struct {
	store     map[int64]repository.SwapRequest
	details   []repository.SwapRequestDetail
	all       []repository.SwapRequest
	created   []repository.CreateSwapRequest
	updates   []statusUpdate
	deletable bool
	createErr error
	err       error
}

type statusUpdate struct {
	ID     int64
	Status string
}

func (m *mockSwapRepo) Create(_ context.Context, in repository.CreateSwapRequest) (repository.SwapRequest, error) {
	if m.createErr != nil {
		return repository.SwapRequest{}, m.createErr
	}
	m.created = append(m.created, in)
	return repository.SwapRequest{
		ID:             int64(len(m.created)),
		RequesterID:    in.RequesterID,
		RecipientID:    in.RecipientID,
		OfferedSkillID: in.OfferedSkillID,
		WantedSkillID:  in.WantedSkillID,
		Status:         StatusPending,
		Message:        in.Message,
	}, nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id int64) (repository.SwapRequest, error) {
	if m.err != nil {
		return repository.SwapRequest{}, m.err
	}
	sr, ok := m.store[id]
	if !ok {
		return repository.SwapRequest{}, repository.ErrSwapRequestNotFound
	}
	return sr, nil
}

func (m *mockSwapRepo) ListForUser(context.Context, string) ([]repository.SwapRequestDetail, error) {
	return m.details, m.err
}

func (m *mockSwapRepo) UpdateStatus(_ context.Context, id int64, status string) (repository.SwapRequest, error) {
	m.updates = append(m.updates, statusUpdate{ID: id, Status: status})
	sr, ok := m.store[id]
	if !ok {
		return repository.SwapRequest{}, repository.ErrSwapRequestNotFound
	}
	sr.Status = status
	m.store[id] = sr
	return sr, nil
}

func (m *mockSwapRepo) DeleteByRequester(_ context.Context, id int64, requesterID string) (bool, error) {
	if !m.deletable {
		return false, nil
	}
	delete(m.store, id)
	return true, nil
}

func (m *mockSwapRepo) ListAll(context.Context) ([]repository.SwapRequest, error) {
	return m.all, m.err
}

type auditEntry struct {
	AdminID  string
	Action   string
	TargetID string
	Reason   *string
}

type mockAuditRepo struct {
	entries []auditEntry
	log     []repository.AdminAction

	lastListedAdmin string

	err error
}

func (m *mockAuditRepo) Log(_ context.Context, adminID, action, targetID string, reason *string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, auditEntry{AdminID: adminID, Action: action, TargetID: targetID, Reason: reason})
	return nil
}

func (m *mockAuditRepo) ListForAdmin(_ context.Context, adminID string) ([]repository.AdminAction, error) {
	m.lastListedAdmin = adminID
	if m.err != nil {
		return nil, m.err
	}
	return m.log, nil
}

type mockMessageRepo struct {
	created []repository.CreatePlatformMessage
	active  []repository.PlatformMessage
	err     error
}

func (m *mockMessageRepo) Create(_ context.Context, in repository.CreatePlatformMessage) (repository.PlatformMessage, error) {
	if m.err != nil {
		return repository.PlatformMessage{}, m.err
	}
	m.created = append(m.created, in)
	return repository.PlatformMessage{
		ID:        int64(len(m.created)),
		Title:     in.Title,
		Content:   in.Content,
		IsActive:  true,
		CreatedBy: in.CreatedBy,
	}, nil
}

func (m *mockMessageRepo) ListActive(context.Context) ([]repository.PlatformMessage, error) {
	return m.active, m.err
}

type mockCache struct {
	store    map[string][]byte
	deleted  []string
	patterns []string
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.store, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	return nil
}

type publishedEvent struct {
	Event   string
	Payload any
}

type mockNotifier struct {
	events []publishedEvent
}

func (m *mockNotifier) Publish(event string, payload any) {
	m.events = append(m.events, publishedEvent{Event: event, Payload: payload})
}
