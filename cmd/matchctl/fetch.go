package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jose-valero/match-infographic/internal/adapters/backend"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

func (c *cli) client(url string, timeout time.Duration) *backend.Client {
	if url == "" {
		url = c.cfg.BackendURL
	}
	if timeout <= 0 {
		timeout = c.cfg.BackendTimeout
	}
	return backend.New(url, backend.WithTimeout(timeout))
}

func (c *cli) fetchCmd() *cobra.Command {
	var home, away, url, out string
	var timeout time.Duration
	var asJSON, store bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a match report from the backend and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var repo service.ReportRepo
			if store {
				if c.cfg.DatabaseURL == "" {
					return errors.New("--store needs DATABASE_URL")
				}
				db, err := storage.Open(cmd.Context(), c.cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := storage.Migrate(db); err != nil {
					return err
				}
				repo = storage.NewReportRepo(db)
			}

			svc := service.NewReportService(c.client(url, timeout), repo, c.options(), c.log)
			got, err := svc.Fetch(cmd.Context(), home, away, storage.SourceCLI)
			if err != nil {
				return errors.New(userMessage(err))
			}
			if store && got.SnapshotID == "" {
				return errors.New("report fetched but snapshot was not stored")
			}
			return c.emit(cmd, out, asJSON, svc, got.Report, got.SnapshotID)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home team name")
	cmd.Flags().StringVar(&away, "away", "", "away team name")
	cmd.Flags().StringVar(&url, "backend", "", "backend base URL (default from BACKEND_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "backend timeout (default from BACKEND_TIMEOUT)")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print slot texts as JSON instead of HTML")
	cmd.Flags().BoolVar(&store, "store", false, "persist the report as a snapshot")
	return cmd
}

func (c *cli) healthCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the backend answers healthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			if err := c.client(url, 0).Health(ctx); err != nil {
				return fmt.Errorf("backend unhealthy: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "healthy")
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "backend", "", "backend base URL (default from BACKEND_URL)")
	return cmd
}

// userMessage: el mismo texto que ve el usuario en la web.
func userMessage(err error) string {
	if errors.Is(err, service.ErrTeamsRequired) {
		return err.Error()
	}
	return backend.UserMessage(err)
}
