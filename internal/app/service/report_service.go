package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/domain"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

var (
	// El texto se muestra tal cual en el banner.
	ErrTeamsRequired     = errors.New("Please enter both home and away team names")
	ErrSnapshotsDisabled = errors.New("snapshots disabled: no database configured")
)

type ReportService struct {
	backend Backend
	reports ReportRepo // nil => sin snapshots
	opts    projector.Options
	log     *zap.Logger
}

// NewReportService: reports puede ser nil (sin DATABASE_URL).
func NewReportService(b Backend, reports ReportRepo, opts projector.Options, log *zap.Logger) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{backend: b, reports: reports, opts: opts, log: log}
}

// Fetched: reporte recién traído y su snapshot ("" si no se guardó).
type Fetched struct {
	Report     domain.MatchReport
	SnapshotID string
}

// Fetch valida nombres, llama al backend y guarda snapshot si hay repo.
// Un snapshot que falla se loguea; el reporte se devuelve igual.
func (s *ReportService) Fetch(ctx context.Context, home, away, source string) (Fetched, error) {
	home, away = strings.TrimSpace(home), strings.TrimSpace(away)
	if home == "" || away == "" {
		return Fetched{}, ErrTeamsRequired
	}

	start := time.Now()
	rep, err := s.backend.FetchMatchData(ctx, home, away)
	if err != nil {
		s.log.Warn("[report] fetch failed",
			zap.String("home", home), zap.String("away", away), zap.Error(err))
		return Fetched{}, err
	}
	s.log.Info("[report] fetched",
		zap.String("home", home), zap.String("away", away),
		zap.Int("tools", len(rep.AllTools())), zap.Duration("took", time.Since(start)))

	out := Fetched{Report: *rep}
	if s.reports != nil {
		id, err := s.Store(ctx, *rep, source)
		if err != nil {
			s.log.Error("[report] snapshot failed", zap.Error(err))
		}
		out.SnapshotID = id
	}
	return out, nil
}

// Store guarda un reporte ya obtenido (webhook, CLI).
func (s *ReportService) Store(ctx context.Context, r domain.MatchReport, source string) (string, error) {
	if s.reports == nil {
		return "", ErrSnapshotsDisabled
	}
	sum := projector.Summarize(r.AllTools(), s.expected())
	snap, err := s.reports.Insert(ctx, storage.NewSnapshot(r, sum.Succeeded, sum.Failed, source))
	if err != nil {
		return "", err
	}
	return snap.ID, nil
}

func (s *ReportService) Snapshot(ctx context.Context, id string) (storage.ReportSnapshot, error) {
	if s.reports == nil {
		return storage.ReportSnapshot{}, ErrSnapshotsDisabled
	}
	return s.reports.Get(ctx, id)
}

func (s *ReportService) Recent(ctx context.Context, teams []string, limit int) ([]storage.SnapshotSummary, error) {
	if s.reports == nil {
		return []storage.SnapshotSummary{}, nil
	}
	return s.reports.Recent(ctx, teams, limit)
}

// Prune borra snapshots viejos; sin repo no hace nada.
func (s *ReportService) Prune(ctx context.Context, age time.Duration) (int64, error) {
	if s.reports == nil {
		return 0, nil
	}
	n, err := s.reports.PruneOlderThan(ctx, age)
	if err != nil {
		return 0, err
	}
	s.log.Info("[report] pruned snapshots", zap.Int64("deleted", n), zap.Duration("older_than", age))
	return n, nil
}

// Project corre el render con las opciones del servicio.
func (s *ReportService) Project(r domain.MatchReport) projector.Result {
	res := projector.RenderMatchData(r, s.opts)
	if res.Summary.Mismatch() {
		s.log.Warn("[report] unexpected tool count",
			zap.Int("received", res.Summary.Received), zap.Int("expected", res.Summary.Expected))
	}
	return res
}

func (s *ReportService) Health(ctx context.Context) error { return s.backend.Health(ctx) }

func (s *ReportService) Persists() bool { return s.reports != nil }

func (s *ReportService) expected() int {
	if s.opts.ExpectedTools > 0 {
		return s.opts.ExpectedTools
	}
	return projector.DefaultExpectedTools
}
