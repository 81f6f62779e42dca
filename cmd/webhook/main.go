package main

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/adapters/httpreport"
	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/domain"
	"github.com/jose-valero/match-infographic/internal/infra/config"
	"github.com/jose-valero/match-infographic/internal/infra/logging"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

const defaultSecretHeader = "x-webhook-secret"

type app struct {
	secret  string
	header  string
	reports *service.ReportService
	log     *zap.Logger
}

func newApp(getenv func(string) string) *app {
	logger := logging.Must(getenv(config.KeyLogLevel))
	cfg, err := config.Parse(getenv)
	if err != nil {
		// sin config válida igual respondemos; sin secret todo es 401
		logger.Error("[webhook] config", zap.Error(err))
	}

	// DB opcional
	var repo service.ReportRepo
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, db, err := storage.OpenPool(ctx, cfg.DatabaseURL, 4)
		if err != nil {
			logger.Error("[webhook] db", zap.Error(err))
		} else if err := storage.Migrate(db); err != nil {
			logger.Error("[webhook] migrate", zap.Error(err))
		} else {
			repo = storage.NewReportRepo(db)
		}
	}

	header := strings.ToLower(strings.TrimSpace(getenv("WEBHOOK_HEADER_NAME")))
	if header == "" {
		header = defaultSecretHeader
	}
	return &app{
		secret:  cfg.WebhookSecret,
		header:  header,
		reports: service.NewReportService(nil, repo, projector.Options{ExpectedTools: cfg.ExpectedTools, NumberLocale: cfg.NumberLocale}, logger),
		log:     logger,
	}
}

// readSecret: API Gateway v2 baja los headers a minúsculas, pero no siempre.
func (a *app) readSecret(req events.APIGatewayV2HTTPRequest) string {
	if v := req.Headers[a.header]; v != "" {
		return v
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, a.header) {
			return v
		}
	}
	return ""
}

func (a *app) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	a.log.Info("[webhook] hit",
		zap.String("path", req.RawPath), zap.String("method", req.RequestContext.HTTP.Method),
		zap.String("ip", req.RequestContext.HTTP.SourceIP), zap.Bool("b64", req.IsBase64Encoded))

	got := a.readSecret(req)
	if a.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(a.secret)) != 1 {
		return text(http.StatusUnauthorized, "unauthorized"), nil
	}

	body := req.Body
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return text(http.StatusBadRequest, "invalid base64"), nil
		}
		body = string(dec)
	}

	var rep domain.MatchReport
	if err := json.Unmarshal([]byte(body), &rep); err != nil {
		return text(http.StatusBadRequest, "invalid match report"), nil
	}

	page := httpreport.Page{
		Slots:    a.reports.Project(rep).Slots,
		HomeTeam: rep.HomeTeam,
		AwayTeam: rep.AwayTeam,
	}
	if a.reports.Persists() {
		sctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		id, err := a.reports.Store(sctx, rep, storage.SourceWebhook)
		cancel()
		if err != nil {
			a.log.Error("[webhook] snapshot", zap.Error(err))
		}
		page.SnapshotID = id
	}

	var buf bytes.Buffer
	if _, err := httpreport.Render(&buf, page); err != nil {
		a.log.Error("[webhook] render", zap.Error(err))
		return text(http.StatusInternalServerError, "render failed"), nil
	}

	headers := map[string]string{"Content-Type": "text/html; charset=utf-8"}
	if page.SnapshotID != "" {
		headers["X-Snapshot-Id"] = page.SnapshotID
	}
	return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Headers: headers, Body: buf.String()}, nil
}

func text(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       body,
	}
}

func main() { lambda.Start(newApp(os.Getenv).handle) }
