package service

import (
	"context"
	"time"

	"github.com/jose-valero/match-infographic/internal/domain"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

// Lo implementa internal/adapters/backend.Client
type Backend interface {
	FetchMatchData(ctx context.Context, home, away string) (*domain.MatchReport, error)
	Health(ctx context.Context) error
}

// Lo implementa internal/infra/storage.ReportRepo
type ReportRepo interface {
	Insert(ctx context.Context, s storage.ReportSnapshot) (storage.ReportSnapshot, error)
	Get(ctx context.Context, id string) (storage.ReportSnapshot, error)
	Recent(ctx context.Context, teams []string, limit int) ([]storage.SnapshotSummary, error)
	PruneOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
