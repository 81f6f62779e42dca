package storage

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/match-infographic/internal/domain"
	dt "github.com/jose-valero/match-infographic/internal/domain/domaintest"
)

func TestGetInvalidIDSkipsDB(t *testing.T) {
	r := NewReportRepo(nil)
	for _, id := range []string{"", "abc", "1; DROP TABLE report_snapshots", "../etc"} {
		_, err := r.Get(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestNormalizeTeams(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTeams(nil))
	assert.Equal(t,
		[]string{"manchester city", "tottenham"},
		NormalizeTeams([]string{" Manchester City", "", "tottenham", "TOTTENHAM "}),
	)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultRecent, ClampLimit(0))
	assert.Equal(t, defaultRecent, ClampLimit(-3))
	assert.Equal(t, 5, ClampLimit(5))
	assert.Equal(t, maxRecent, ClampLimit(1000))
}

func TestNewSnapshot(t *testing.T) {
	r := dt.FullReport()
	s := NewSnapshot(r, 11, 1, SourceBot)
	assert.Equal(t, "Manchester City", s.HomeTeam)
	assert.Equal(t, "2025-12-15", s.MatchDate)
	assert.Equal(t, 11, s.ToolsOK)
	assert.Equal(t, 2345.6, s.TotalTimeMs)
	assert.Equal(t, SourceBot, s.Source)

	s = NewSnapshot(domain.MatchReport{}, 0, 0, SourceWeb)
	assert.Equal(t, domain.MatchDateTBD, s.MatchDate)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	b, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	sql := string(b)
	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "report_snapshots")
}
