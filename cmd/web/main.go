package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/match-infographic/internal/adapters/backend"
	"github.com/jose-valero/match-infographic/internal/adapters/httpreport"
	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/infra/config"
	"github.com/jose-valero/match-infographic/internal/infra/logging"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// DB opcional: sin DATABASE_URL no hay snapshots
	var repo service.ReportRepo
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("[web] db open", zap.Error(err))
		}
		defer db.Close()
		if err := storage.Migrate(db); err != nil {
			logger.Fatal("[web] migrate", zap.Error(err))
		}
		repo = storage.NewReportRepo(db)
		logger.Info("[web] db ready")
	} else {
		logger.Info("[web] DATABASE_URL empty; snapshots disabled")
	}

	bc := backend.New(cfg.BackendURL, backend.WithTimeout(cfg.BackendTimeout))
	svc := service.NewReportService(bc, repo, projector.Options{
		ExpectedTools: cfg.ExpectedTools,
		NumberLocale:  cfg.NumberLocale,
	}, logger)

	web := httpreport.New(svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return web.Start(cfg.HTTPAddr) })
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return web.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("[web] stopped", zap.Error(err))
	}
}
