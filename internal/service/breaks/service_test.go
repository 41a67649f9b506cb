package breaks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/breaks"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = session.Rules{
	BreakLimitSeconds:    1800,
	ExpectedDailySeconds: 28800,
}

// ===== TEST DOUBLES =====

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]session.Session)}
}

func (r *fakeSessionRepo) open(t *testing.T, memberID string, orgID string, timeIn time.Time) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	r.sessions[id] = session.Session{
		ID:        id,
		MemberID:  memberID,
		OrgID:     orgID,
		TimeIn:    timeIn,
		CreatedAt: timeIn,
		UpdatedAt: timeIn,
	}
	return id
}

func (r *fakeSessionRepo) Create(_ context.Context, s session.Session) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	r.sessions[s.ID] = s
	return s, nil
}

func (r *fakeSessionRepo) GetOpen(_ context.Context, memberID string, orgID string) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.MemberID == memberID && s.OrgID == orgID && s.Open() {
			return s, nil
		}
	}
	return session.Session{}, session.ErrNoActiveSession
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string, orgID string) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.OrgID != orgID {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Close(_ context.Context, s session.Session) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s, nil
}

func (r *fakeSessionRepo) SetBreakStart(_ context.Context, id string, orgID string, startedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.OrgID != orgID || !s.Open() || s.BreakStartedAt != nil {
		return session.ErrNoActiveSession
	}
	s.BreakStartedAt = &startedAt
	r.sessions[id] = s
	return nil
}

func (r *fakeSessionRepo) AccumulateBreak(_ context.Context, id string, orgID string, seconds int) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.OrgID != orgID || !s.Open() || s.BreakStartedAt == nil {
		return session.Session{}, session.ErrSessionNotFound
	}
	s.BreakSeconds += seconds
	s.BreakStartedAt = nil
	r.sessions[id] = s
	return s, nil
}

func (r *fakeSessionRepo) ListHistory(_ context.Context, _ string, _ string, _ session.HistoryFilter) ([]session.Session, int64, error) {
	return nil, 0, nil
}

type fakeQuotaRepo struct {
	mu   sync.Mutex
	used map[string]bool
}

func newFakeQuotaRepo() *fakeQuotaRepo {
	return &fakeQuotaRepo{used: make(map[string]bool)}
}

func (r *fakeQuotaRepo) key(memberID, orgID, day string) string {
	return memberID + "|" + orgID + "|" + day
}

func (r *fakeQuotaRepo) IsUsed(_ context.Context, memberID string, orgID string, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used[r.key(memberID, orgID, day)], nil
}

func (r *fakeQuotaRepo) MarkUsed(_ context.Context, memberID string, orgID string, day string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := r.key(memberID, orgID, day)
	if r.used[k] {
		return breaks.ErrBreakAlreadyUsedToday
	}
	r.used[k] = true
	return nil
}

func authedContext(t *testing.T, memberID string, orgID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"member_id": memberID,
		"org_id":    orgID,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(sessionRepo *fakeSessionRepo, quotaRepo *fakeQuotaRepo, now time.Time) *BreakServiceImpl {
	return &BreakServiceImpl{
		tx:          fakeTransactor{},
		sessionRepo: sessionRepo,
		quotaRepo:   quotaRepo,
		rules:       testRules,
		now:         func() time.Time { return now },
	}
}

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 11, hour, minute, second, 0, time.UTC)
}

// ===== BREAK SERVICE TESTS =====

func TestBreakService_StartBreak_Success(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionID := sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	resp, err := newTestService(sessionRepo, quotaRepo, at(12, 0, 0)).StartBreak(ctx)

	require.NoError(t, err)
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Equal(t, "2024-03-11 12:00:00", resp.StartedAt)
	assert.Equal(t, "2024-03-11", resp.BreakUsedDay)
	assert.Equal(t, 0, resp.BreakSeconds)
	assert.Equal(t, 1800, resp.LimitSeconds)
	assert.False(t, resp.AlreadyOver)

	// The window is open and the day's quota is gone.
	open, err := sessionRepo.GetOpen(context.Background(), "member-1", "org-1")
	require.NoError(t, err)
	assert.True(t, open.OnBreak())
	used, err := quotaRepo.IsUsed(context.Background(), "member-1", "org-1", "2024-03-11")
	require.NoError(t, err)
	assert.True(t, used)
}

func TestBreakService_StartBreak_NoActiveSession(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeSessionRepo(), newFakeQuotaRepo(), at(12, 0, 0))

	_, err := svc.StartBreak(authedContext(t, "member-1", "org-1"))

	assert.ErrorIs(t, err, session.ErrNoActiveSession)
}

func TestBreakService_StartBreak_AlreadyOpen(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	_, err := newTestService(sessionRepo, quotaRepo, at(12, 0, 0)).StartBreak(ctx)
	require.NoError(t, err)

	_, err = newTestService(sessionRepo, quotaRepo, at(12, 5, 0)).StartBreak(ctx)
	assert.ErrorIs(t, err, breaks.ErrBreakAlreadyOpen)
}

func TestBreakService_StartBreak_QuotaConsumedAtStart(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	// Take a break, end it, then try for a second one the same day.
	_, err := newTestService(sessionRepo, quotaRepo, at(12, 0, 0)).StartBreak(ctx)
	require.NoError(t, err)
	_, err = newTestService(sessionRepo, quotaRepo, at(12, 20, 0)).EndBreak(ctx)
	require.NoError(t, err)

	_, err = newTestService(sessionRepo, quotaRepo, at(15, 0, 0)).StartBreak(ctx)
	assert.ErrorIs(t, err, breaks.ErrBreakAlreadyUsedToday)
}

func TestBreakService_StartBreak_QuotaScopedToSessionDay(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")

	// Overnight shift: session opened on the 11th, break starts past midnight.
	// The quota day follows time_in, not the clock.
	sessionRepo.open(t, "member-1", "org-1", time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC))

	resp, err := newTestService(sessionRepo, quotaRepo, time.Date(2024, 3, 12, 1, 0, 0, 0, time.UTC)).StartBreak(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", resp.BreakUsedDay)
}

func TestBreakService_EndBreak_Success(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionID := sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	_, err := newTestService(sessionRepo, quotaRepo, at(12, 0, 0)).StartBreak(ctx)
	require.NoError(t, err)

	resp, err := newTestService(sessionRepo, quotaRepo, at(12, 20, 0)).EndBreak(ctx)

	require.NoError(t, err)
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Equal(t, 1200, resp.BreakSeconds)
	assert.Equal(t, 1200, resp.TotalBreakSeconds)
	assert.False(t, resp.OverLimit)

	// Window closed, total persisted on the session.
	open, err := sessionRepo.GetOpen(context.Background(), "member-1", "org-1")
	require.NoError(t, err)
	assert.False(t, open.OnBreak())
	assert.Equal(t, 1200, open.BreakSeconds)
}

func TestBreakService_EndBreak_OverLimit(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	quotaRepo := newFakeQuotaRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	_, err := newTestService(sessionRepo, quotaRepo, at(12, 0, 0)).StartBreak(ctx)
	require.NoError(t, err)

	// 45 minutes against a 30 minute limit.
	resp, err := newTestService(sessionRepo, quotaRepo, at(12, 45, 0)).EndBreak(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2700, resp.BreakSeconds)
	assert.True(t, resp.OverLimit)
}

func TestBreakService_EndBreak_NoSession(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeSessionRepo(), newFakeQuotaRepo(), at(12, 0, 0))

	_, err := svc.EndBreak(authedContext(t, "member-1", "org-1"))

	assert.ErrorIs(t, err, breaks.ErrNoBreakOpen)
}

func TestBreakService_EndBreak_NoWindowOpen(t *testing.T) {
	t.Parallel()
	sessionRepo := newFakeSessionRepo()
	ctx := authedContext(t, "member-1", "org-1")
	sessionRepo.open(t, "member-1", "org-1", at(9, 0, 0))

	_, err := newTestService(sessionRepo, newFakeQuotaRepo(), at(12, 0, 0)).EndBreak(ctx)

	assert.ErrorIs(t, err, breaks.ErrNoBreakOpen)
}

func TestIsOverLimit_Boundary(t *testing.T) {
	t.Parallel()
	assert.False(t, breaks.IsOverLimit(1799, 1800))
	assert.False(t, breaks.IsOverLimit(1800, 1800))
	assert.True(t, breaks.IsOverLimit(1801, 1800))
}
