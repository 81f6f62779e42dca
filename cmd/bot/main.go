package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/adapters/backend"
	discordrouter "github.com/jose-valero/match-infographic/internal/adapters/discord"
	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/infra/config"
	"github.com/jose-valero/match-infographic/internal/infra/logging"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(config.KeyDiscordToken, config.KeyDiscordGuild)

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// DB
	var repo service.ReportRepo
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("[bot] db open", zap.Error(err))
		}
		defer db.Close()
		if err := storage.Migrate(db); err != nil {
			logger.Fatal("[bot] migrate", zap.Error(err))
		}
		repo = storage.NewReportRepo(db)
		logger.Info("[bot] db ready")
	}

	bc := backend.New(cfg.BackendURL, backend.WithTimeout(cfg.BackendTimeout))
	svc := service.NewReportService(bc, repo, projector.Options{
		ExpectedTools: cfg.ExpectedTools,
		NumberLocale:  cfg.NumberLocale,
	}, logger)

	// Discord session
	auth := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		logger.Fatal("[bot] session", zap.Error(err))
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		logger.Fatal("[bot] open", zap.Error(err))
	}
	defer s.Close()
	logger.Info("[bot] connected", zap.String("user", s.State.User.Username), zap.String("id", s.State.User.ID))

	r := discordrouter.NewRouter(s, cfg.DiscordGuild, cfg.PublicURL, svc, logger)
	if err := r.Register(); err != nil {
		logger.Fatal("[bot] register commands", zap.Error(err))
	}
	r.Handlers()
	logger.Info("[bot] commands registered", zap.String("guild", cfg.DiscordGuild))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
