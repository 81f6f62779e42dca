package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jose-valero/match-infographic/internal/adapters/httpreport"
	"github.com/jose-valero/match-infographic/internal/app/service"
	"github.com/jose-valero/match-infographic/internal/domain"
)

func (c *cli) renderCmd() *cobra.Command {
	var in, out string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved match report JSON into the infographic page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := openIn(cmd, in)
			if err != nil {
				return err
			}
			defer r.Close()

			var rep domain.MatchReport
			if err := json.NewDecoder(r).Decode(&rep); err != nil {
				return fmt.Errorf("decode report: %w", err)
			}

			svc := service.NewReportService(nil, nil, c.options(), c.log)
			return c.emit(cmd, out, asJSON, svc, rep, "")
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "report JSON file, - for stdin")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print slot texts as JSON instead of HTML")
	return cmd
}

// emit escribe la página o el dump JSON del reporte.
func (c *cli) emit(cmd *cobra.Command, out string, asJSON bool, svc *service.ReportService, rep domain.MatchReport, snapshotID string) error {
	res := svc.Project(rep)

	w, err := openOut(cmd, out)
	if err != nil {
		return err
	}
	defer w.Close()

	if asJSON {
		return writeDump(w, res, snapshotID)
	}
	missing, err := httpreport.Render(w, httpreport.Page{
		Slots:      res.Slots,
		HomeTeam:   rep.HomeTeam,
		AwayTeam:   rep.AwayTeam,
		SnapshotID: snapshotID,
	})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		c.log.Warn("[cli] slots without element", zap.Int("count", len(missing)))
	}
	return nil
}
