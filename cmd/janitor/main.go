package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/infra/config"
	"github.com/jose-valero/match-infographic/internal/infra/logging"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

func handler(ctx context.Context) (string, error) {
	cfg, err := config.Parse(os.Getenv)
	if err != nil {
		return fmt.Sprintf("config: %v", err), nil
	}
	if cfg.DatabaseURL == "" {
		return "no DATABASE_URL", nil
	}
	logger := logging.Must(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	pool, db, err := storage.OpenPool(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()
	defer db.Close()

	svc := service.NewReportService(nil, storage.NewReportRepo(db), projector.Options{}, logger)

	cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	n, err := svc.Prune(cctx, cfg.SnapshotTTL())
	if err != nil {
		logger.Error("[janitor] prune", zap.Error(err))
		return fmt.Sprintf("prune: %v", err), nil
	}
	return fmt.Sprintf("deleted %d", n), nil
}

func main() { lambda.Start(handler) }
