package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/adapters/backend"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

const (
	// el backend corre 12 tools; el followup vale 15 min
	matchTimeout = 2 * time.Minute
	quickTimeout = 10 * time.Second
	matchWindow  = 20 * time.Second
	recentLimit  = 10
)

type Router struct {
	s         *discordgo.Session
	guildID   string
	publicURL string // base para links a /reports/{id}; vacío => sin link

	reports *service.ReportService
	limiter *userLimiter
	log     *zap.Logger
}

func NewRouter(s *discordgo.Session, guildID, publicURL string, reports *service.ReportService, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		s:         s,
		guildID:   guildID,
		publicURL: strings.TrimRight(publicURL, "/"),
		reports:   reports,
		limiter:   newUserLimiter(matchWindow),
		log:       log,
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return fmt.Errorf("register /%s: %w", cmd.Name, err)
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		data := ic.ApplicationCommandData()
		r.log.Info("[bot] slash", zap.String("cmd", data.Name), zap.String("user", userID(ic)), zap.String("guild", ic.GuildID))

		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("[bot] panic in slash", zap.String("cmd", data.Name), zap.Any("panic", rec))
				r.ReplyEphemeral(ic, "⚠️ Ocurrió un error inesperado.")
			}
		}()

		_ = r.DeferEphemeral(ic)

		switch data.Name {
		case "ping":
			r.handlePing(ic)
		case "match":
			r.handleMatch(ic)
		case "report":
			r.handleReport(ic)
		case "recent":
			r.handleRecent(ic)
		}
	})
}

func (r *Router) handlePing(ic *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
	defer cancel()
	if err := r.reports.Health(ctx); err != nil {
		r.ReplyEphemeral(ic, "🏓 pong (backend no responde)")
		return
	}
	r.ReplyEphemeral(ic, "🏓 pong")
}

func (r *Router) handleMatch(ic *discordgo.InteractionCreate) {
	if ok, wait := r.limiter.Allow(userID(ic)); !ok {
		r.ReplyEphemeral(ic, fmt.Sprintf("⏳ Esperá %ds antes de pedir otro partido.", int(wait.Seconds())+1))
		return
	}
	home, _ := optStr(ic, "home")
	away, _ := optStr(ic, "away")

	ctx, cancel := context.WithTimeout(context.Background(), matchTimeout)
	defer cancel()

	done := r.step("match fetch")
	got, err := r.reports.Fetch(ctx, home, away, storage.SourceBot)
	done()
	if err != nil {
		r.ReplyEphemeral(ic, "⚠️ "+escapeMarkdown(r.userMessage(err)))
		return
	}

	res := r.reports.Project(got.Report)
	r.ReplyEphemeral(ic, "", BuildEmbed(res, r.reportURL(got.SnapshotID)))
}

func (r *Router) handleReport(ic *discordgo.InteractionCreate) {
	id, _ := optStr(ic, "id")
	ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
	defer cancel()

	snap, err := r.reports.Snapshot(ctx, strings.TrimSpace(id))
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, service.ErrSnapshotsDisabled):
		r.ReplyEphemeral(ic, "No encontré ese reporte.")
		return
	case err != nil:
		r.log.Error("[bot] snapshot load", zap.String("id", id), zap.Error(err))
		r.ReplyEphemeral(ic, "⚠️ No pude leer el reporte.")
		return
	}
	r.ReplyEphemeral(ic, "", BuildEmbed(r.reports.Project(snap.Report), r.reportURL(snap.ID)))
}

func (r *Router) handleRecent(ic *discordgo.InteractionCreate) {
	var teams []string
	if t, ok := optStr(ic, "team"); ok {
		teams = append(teams, t)
	}
	ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
	defer cancel()

	list, err := r.reports.Recent(ctx, teams, recentLimit)
	if err != nil {
		r.log.Error("[bot] recent", zap.Error(err))
		r.ReplyEphemeral(ic, "⚠️ No pude listar reportes.")
		return
	}
	r.ReplyEphemeral(ic, RecentLines(list))
}

func (r *Router) userMessage(err error) string {
	if errors.Is(err, service.ErrTeamsRequired) {
		return err.Error()
	}
	return backend.UserMessage(err)
}

func (r *Router) reportURL(id string) string {
	if id == "" || r.publicURL == "" {
		return ""
	}
	return r.publicURL + "/reports/" + id
}
