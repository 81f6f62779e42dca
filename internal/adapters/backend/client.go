package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jose-valero/match-infographic/internal/domain"
)

const (
	pathFetch  = "/api/fetch-match-data"
	pathHealth = "/api/health"
)

// El backend corre los 12 tools en serie; un fetch puede tardar.
const defaultTimeout = 90 * time.Second

type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type fetchRequest struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// FetchMatchData pide el reporte completo de un partido.
func (c *Client) FetchMatchData(ctx context.Context, home, away string) (*domain.MatchReport, error) {
	var out domain.MatchReport
	if err := c.doJSON(ctx, http.MethodPost, pathFetch, fetchRequest{HomeTeam: home, AwayTeam: away}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type healthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Health(ctx context.Context) error {
	var dto healthDTO
	if err := c.doJSON(ctx, http.MethodGet, pathHealth, nil, &dto); err != nil {
		return err
	}
	if dto.Status != "healthy" {
		return fmt.Errorf("backend health: status %q", dto.Status)
	}
	return nil
}
