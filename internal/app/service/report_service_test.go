package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
	dt "github.com/jose-valero/match-infographic/internal/domain/domaintest"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

type fakeBackend struct {
	calls    int
	home     string
	away     string
	report   domain.MatchReport
	err      error
	healthOK bool
}

func (f *fakeBackend) FetchMatchData(_ context.Context, home, away string) (*domain.MatchReport, error) {
	f.calls++
	f.home, f.away = home, away
	if f.err != nil {
		return nil, f.err
	}
	r := f.report
	return &r, nil
}

func (f *fakeBackend) Health(context.Context) error {
	if !f.healthOK {
		return errors.New("down")
	}
	return nil
}

type fakeRepo struct {
	saved     []storage.ReportSnapshot
	insertErr error
	pruned    time.Duration
}

func (f *fakeRepo) Insert(_ context.Context, s storage.ReportSnapshot) (storage.ReportSnapshot, error) {
	if f.insertErr != nil {
		return storage.ReportSnapshot{}, f.insertErr
	}
	s.ID = "snap-1"
	f.saved = append(f.saved, s)
	return s, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (storage.ReportSnapshot, error) {
	for _, s := range f.saved {
		if s.ID == id {
			return s, nil
		}
	}
	return storage.ReportSnapshot{}, storage.ErrNotFound
}

func (f *fakeRepo) Recent(context.Context, []string, int) ([]storage.SnapshotSummary, error) {
	out := []storage.SnapshotSummary{}
	for _, s := range f.saved {
		out = append(out, storage.SnapshotSummary{ID: s.ID, HomeTeam: s.HomeTeam, AwayTeam: s.AwayTeam})
	}
	return out, nil
}

func (f *fakeRepo) PruneOlderThan(_ context.Context, age time.Duration) (int64, error) {
	f.pruned = age
	return int64(len(f.saved)), nil
}

func TestFetchRequiresBothTeams(t *testing.T) {
	b := &fakeBackend{}
	svc := NewReportService(b, nil, projector.Options{}, zap.NewNop())
	for _, pair := range [][2]string{{"", "Tottenham"}, {"Manchester City", "  "}, {"", ""}} {
		_, err := svc.Fetch(context.Background(), pair[0], pair[1], storage.SourceWeb)
		assert.ErrorIs(t, err, ErrTeamsRequired)
	}
	assert.Zero(t, b.calls, "backend not called")
	assert.Equal(t, "Please enter both home and away team names", ErrTeamsRequired.Error())
}

func TestFetchTrimsAndStores(t *testing.T) {
	b := &fakeBackend{report: dt.FullReport()}
	repo := &fakeRepo{}
	svc := NewReportService(b, repo, projector.Options{}, zap.NewNop())

	got, err := svc.Fetch(context.Background(), "  Manchester City ", "Tottenham ", storage.SourceBot)
	require.NoError(t, err)
	assert.Equal(t, "Manchester City", b.home)
	assert.Equal(t, "Tottenham", b.away)
	assert.Equal(t, "snap-1", got.SnapshotID)
	assert.Equal(t, "Tottenham", got.Report.AwayTeam)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, 12, repo.saved[0].ToolsOK)
	assert.Equal(t, 0, repo.saved[0].ToolsFailed)
	assert.Equal(t, storage.SourceBot, repo.saved[0].Source)
}

func TestFetchSnapshotFailureIsNotFatal(t *testing.T) {
	b := &fakeBackend{report: dt.FullReport()}
	svc := NewReportService(b, &fakeRepo{insertErr: errors.New("db down")}, projector.Options{}, zap.NewNop())

	got, err := svc.Fetch(context.Background(), "A", "B", storage.SourceWeb)
	require.NoError(t, err)
	assert.Empty(t, got.SnapshotID)
	assert.Equal(t, "Manchester City", got.Report.HomeTeam)
}

func TestFetchBackendError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewReportService(&fakeBackend{err: boom}, &fakeRepo{}, projector.Options{}, zap.NewNop())
	_, err := svc.Fetch(context.Background(), "A", "B", storage.SourceWeb)
	assert.ErrorIs(t, err, boom)
}

func TestWithoutRepo(t *testing.T) {
	svc := NewReportService(&fakeBackend{}, nil, projector.Options{}, nil)
	ctx := context.Background()

	assert.False(t, svc.Persists())
	_, err := svc.Snapshot(ctx, "x")
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)
	_, err = svc.Store(ctx, dt.FullReport(), storage.SourceCLI)
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)

	list, err := svc.Recent(ctx, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	n, err := svc.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewReportService(&fakeBackend{}, repo, projector.Options{ExpectedTools: 12}, zap.NewNop())
	ctx := context.Background()

	r := dt.FullReport()
	r.GameTools[0] = dt.Fail(domain.ToolH2H, "no h2h", 1)
	id, err := svc.Store(ctx, r, storage.SourceWebhook)
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 11, snap.ToolsOK)
	assert.Equal(t, 1, snap.ToolsFailed)

	_, err = svc.Snapshot(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	n, err := svc.Prune(ctx, 48*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 48*time.Hour, repo.pruned)
}

func TestProjectUsesOptions(t *testing.T) {
	svc := NewReportService(&fakeBackend{}, nil, projector.Options{ExpectedTools: 16}, zap.NewNop())
	res := svc.Project(dt.FullReport())
	assert.Equal(t, "12/16", res.Slots.Text(view.ToolsSuccess))
	assert.True(t, res.Summary.Mismatch())
}

func TestHealth(t *testing.T) {
	assert.NoError(t, NewReportService(&fakeBackend{healthOK: true}, nil, projector.Options{}, nil).Health(context.Background()))
	assert.Error(t, NewReportService(&fakeBackend{}, nil, projector.Options{}, nil).Health(context.Background()))
}
