package report

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	summary    report.Summary
	gotFilter  report.SummaryFilter
	gotMember  string
	gotOrg     string
	calledOnce bool
}

func (r *fakeReportRepo) Summary(_ context.Context, memberID string, orgID string, filter report.SummaryFilter) (report.Summary, error) {
	r.gotMember = memberID
	r.gotOrg = orgID
	r.gotFilter = filter
	r.calledOnce = true
	return r.summary, nil
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

func TestReportService_Summary(t *testing.T) {
	t.Parallel()
	repo := &fakeReportRepo{summary: report.Summary{
		Sessions:         5,
		GrossSeconds:     144000,
		BreakSeconds:     6000,
		NetSeconds:       138000,
		OvertimeSeconds:  0,
		OverBreakSeconds: 900,
	}}
	svc := NewReportService(repo)

	start := "2024-03-01"
	end := "2024-03-07"
	resp, err := svc.Summary(authedContext(t, "member-1", "org-1"), report.SummaryFilter{
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, "member-1", repo.gotMember)
	assert.Equal(t, "org-1", repo.gotOrg)
	assert.Equal(t, int64(5), resp.Sessions)
	assert.Equal(t, int64(138000), resp.NetSeconds)
	assert.Equal(t, "38h20m", resp.NetDuration)
	assert.Equal(t, int64(900), resp.OverBreakSeconds)
}

func TestReportService_Summary_InvalidDate(t *testing.T) {
	t.Parallel()
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	bad := "03/01/2024"
	_, err := svc.Summary(authedContext(t, "member-1", "org-1"), report.SummaryFilter{StartDate: &bad})

	assert.Error(t, err)
	assert.False(t, repo.calledOnce)
}
