package storage

import (
	"time"

	"github.com/jose-valero/match-infographic/internal/domain"
)

// Origen del snapshot.
const (
	SourceWeb     = "web"
	SourceBot     = "bot"
	SourceWebhook = "webhook"
	SourceCLI     = "cli"
)

// ReportSnapshot: un MatchReport tal como llegó, más conteos para listar.
type ReportSnapshot struct {
	ID          string
	HomeTeam    string
	AwayTeam    string
	MatchDate   string
	Report      domain.MatchReport
	ToolsOK     int
	ToolsFailed int
	TotalTimeMs float64
	Source      string
	CreatedAt   time.Time
}

// SnapshotSummary: fila de /api/reports, sin el payload.
type SnapshotSummary struct {
	ID          string    `json:"id"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	MatchDate   string    `json:"match_date"`
	ToolsOK     int       `json:"tools_ok"`
	ToolsFailed int       `json:"tools_failed"`
	TotalTimeMs float64   `json:"total_time_ms"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSnapshot arma el snapshot de un reporte con sus conteos.
func NewSnapshot(r domain.MatchReport, ok, failed int, source string) ReportSnapshot {
	return ReportSnapshot{
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		MatchDate:   r.Date(),
		Report:      r,
		ToolsOK:     ok,
		ToolsFailed: failed,
		TotalTimeMs: r.TotalTimeMs,
		Source:      source,
	}
}
