package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/infra/config"
	"github.com/jose-valero/match-infographic/internal/infra/logging"
)

// cli: estado compartido entre subcomandos, armado en PersistentPreRunE.
type cli struct {
	getenv   func(string) string
	cfg      config.Config
	log      *zap.Logger
	logLevel string
	expected int
	locale   string
}

func newRootCmd() *cobra.Command { return newRootCmdWithEnv(os.Getenv) }

func newRootCmdWithEnv(getenv func(string) string) *cobra.Command {
	c := &cli{getenv: getenv}

	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Render and fetch match infographics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&c.expected, "expected", 0, "expected tool count (default from EXPECTED_TOOLS)")
	root.PersistentFlags().StringVar(&c.locale, "locale", "", "number locale, BCP 47 (default from NUMBER_LOCALE)")

	root.AddCommand(c.renderCmd(), c.fetchCmd(), c.healthCmd())
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Parse(c.getenv)
	if err != nil {
		return err
	}
	if c.expected < 0 {
		return fmt.Errorf("--expected must be positive, got %d", c.expected)
	}
	if c.expected > 0 {
		cfg.ExpectedTools = c.expected
	}
	if c.locale != "" {
		tag, err := language.Parse(c.locale)
		if err != nil {
			return fmt.Errorf("--locale %q: %w", c.locale, err)
		}
		cfg.NumberLocale = tag
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger
	return nil
}

func (c *cli) options() projector.Options {
	return projector.Options{ExpectedTools: c.cfg.ExpectedTools, NumberLocale: c.cfg.NumberLocale}
}

// openIn: "-" o vacío es stdin.
func openIn(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

func openOut(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// slotDump es la salida --json: textos por slot más el resumen de tools.
type slotDump struct {
	Slots      map[view.SlotID]string `json:"slots"`
	Succeeded  int                    `json:"tools_succeeded"`
	Failed     int                    `json:"tools_failed"`
	Received   int                    `json:"tools_received"`
	Expected   int                    `json:"tools_expected"`
	SnapshotID string                 `json:"snapshot_id,omitempty"`
}

func writeDump(w io.Writer, res projector.Result, snapshotID string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(slotDump{
		Slots:      res.Slots.Texts(),
		Succeeded:  res.Summary.Succeeded,
		Failed:     res.Summary.Failed,
		Received:   res.Summary.Received,
		Expected:   res.Summary.Expected,
		SnapshotID: snapshotID,
	})
}
