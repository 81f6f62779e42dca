package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pq "github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

const (
	defaultRecent = 20
	maxRecent     = 100
)

type ReportRepo struct{ db *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

// Insert guarda el snapshot con un id nuevo y devuelve id y created_at.
func (r *ReportRepo) Insert(ctx context.Context, s ReportSnapshot) (ReportSnapshot, error) {
	payload, err := json.Marshal(s.Report)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("encode report: %w", err)
	}
	if s.Source == "" {
		s.Source = SourceWeb
	}
	s.ID = uuid.NewString()

	err = r.db.QueryRowContext(ctx, `
INSERT INTO report_snapshots
  (id, home_team, away_team, match_date, report, tools_ok, tools_failed, total_time_ms, source)
VALUES
  ($1,$2,$3,$4,$5::jsonb,$6,$7,$8,$9)
RETURNING created_at
`, s.ID, s.HomeTeam, s.AwayTeam, s.MatchDate, string(payload), s.ToolsOK, s.ToolsFailed, s.TotalTimeMs, s.Source).Scan(&s.CreatedAt)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return s, nil
}

// Get por id. Un id que no es uuid es ErrNotFound sin ir a la DB.
func (r *ReportRepo) Get(ctx context.Context, id string) (ReportSnapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportSnapshot{}, ErrNotFound
	}

	var (
		s   ReportSnapshot
		raw []byte
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, home_team, away_team, match_date, report, tools_ok, tools_failed, total_time_ms, source, created_at
  FROM report_snapshots
 WHERE id = $1
`, id).Scan(&s.ID, &s.HomeTeam, &s.AwayTeam, &s.MatchDate, &raw, &s.ToolsOK, &s.ToolsFailed, &s.TotalTimeMs, &s.Source, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ReportSnapshot{}, ErrNotFound
	}
	if err != nil {
		return ReportSnapshot{}, err
	}
	if err := json.Unmarshal(raw, &s.Report); err != nil {
		return ReportSnapshot{}, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return s, nil
}

// Recent: últimos snapshots, opcionalmente donde juega alguno de teams (sin mayúsculas).
func (r *ReportRepo) Recent(ctx context.Context, teams []string, limit int) ([]SnapshotSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, home_team, away_team, match_date, tools_ok, tools_failed, total_time_ms, source, created_at
  FROM report_snapshots
 WHERE cardinality($1::text[]) = 0
    OR lower(home_team) = ANY($1)
    OR lower(away_team) = ANY($1)
 ORDER BY created_at DESC
 LIMIT $2
`, pq.Array(NormalizeTeams(teams)), ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SnapshotSummary{}
	for rows.Next() {
		var s SnapshotSummary
		if err := rows.Scan(&s.ID, &s.HomeTeam, &s.AwayTeam, &s.MatchDate, &s.ToolsOK, &s.ToolsFailed, &s.TotalTimeMs, &s.Source, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PruneOlderThan borra snapshots con más de age; devuelve cuántos.
func (r *ReportRepo) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM report_snapshots
 WHERE created_at < now() - ($1::float8 * INTERVAL '1 second')
`, age.Seconds())
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// NormalizeTeams: trim + lower, sin vacíos ni repetidos. Nunca nil.
func NormalizeTeams(teams []string) []string {
	out := make([]string, 0, len(teams))
	seen := map[string]bool{}
	for _, t := range teams {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func ClampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultRecent
	case n > maxRecent:
		return maxRecent
	}
	return n
}
