package httpreport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/adapters/backend"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/domain"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

const (
	maxFormBytes   = 16 << 10
	maxReportBytes = 4 << 20

	msgNotFound = "Report not found"
	msgInternal = "Something went wrong rendering this report"
)

type Server struct {
	reports *service.ReportService
	log     *zap.Logger
	mux     *http.ServeMux
	srv     *http.Server
}

func New(reports *service.ReportService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{reports: reports, log: log, mux: http.NewServeMux()}
	s.routes()
	s.srv = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /match", s.handleMatch)
	s.mux.HandleFunc("GET /reports/{id}", s.handleSnapshot)
	s.mux.HandleFunc("POST /api/render", s.handleRender)
	s.mux.HandleFunc("GET /api/reports", s.handleRecent)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
}

// Handler con log de cada request.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		s.mux.ServeHTTP(rec, r)
		s.log.Debug("[web] request",
			zap.String("method", r.Method), zap.String("path", r.URL.Path),
			zap.Int("status", rec.status), zap.Duration("took", time.Since(start)))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, Page{})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.writePage(w, http.StatusBadRequest, Page{Error: service.ErrTeamsRequired.Error()})
		return
	}
	home, away := r.PostFormValue("home_team"), r.PostFormValue("away_team")
	page := Page{HomeTeam: home, AwayTeam: away}

	got, err := s.reports.Fetch(r.Context(), home, away, storage.SourceWeb)
	switch {
	case errors.Is(err, service.ErrTeamsRequired):
		page.Error = err.Error()
		s.writePage(w, http.StatusBadRequest, page)
		return
	case err != nil:
		page.Error = backend.UserMessage(err)
		s.writePage(w, http.StatusBadGateway, page)
		return
	}

	page.Slots = s.reports.Project(got.Report).Slots
	page.SnapshotID = got.SnapshotID
	s.writePage(w, http.StatusOK, page)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.reports.Snapshot(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, service.ErrSnapshotsDisabled):
		s.writePage(w, http.StatusNotFound, Page{Error: msgNotFound})
		return
	case err != nil:
		s.log.Error("[web] snapshot load", zap.String("id", r.PathValue("id")), zap.Error(err))
		s.writePage(w, http.StatusInternalServerError, Page{Error: msgInternal})
		return
	}

	s.writePage(w, http.StatusOK, Page{
		Slots:      s.reports.Project(snap.Report).Slots,
		HomeTeam:   snap.HomeTeam,
		AwayTeam:   snap.AwayTeam,
		SnapshotID: snap.ID,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var rep domain.MatchReport
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err := dec.Decode(&rep); err != nil {
		http.Error(w, "invalid match report", http.StatusBadRequest)
		return
	}
	s.writePage(w, http.StatusOK, Page{
		Slots:    s.reports.Project(rep).Slots,
		HomeTeam: rep.HomeTeam,
		AwayTeam: rep.AwayTeam,
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	list, err := s.reports.Recent(r.Context(), q["team"], limit)
	if err != nil {
		s.log.Error("[web] recent snapshots", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "could not list reports"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"snapshots": s.reports.Persists(),
	})
}

// writePage arma el HTML en memoria para poder cambiar el status si falla.
func (s *Server) writePage(w http.ResponseWriter, status int, p Page) {
	var buf bytes.Buffer
	missing, err := Render(&buf, p)
	if err != nil {
		s.log.Error("[web] render page", zap.Error(err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	if len(missing) > 0 {
		s.log.Warn("[web] slots without element", zap.Any("ids", missing))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Start bloquea hasta Shutdown o error de listen.
func (s *Server) Start(addr string) error {
	s.srv.Addr = addr
	s.log.Info("[web] listening", zap.String("addr", addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
