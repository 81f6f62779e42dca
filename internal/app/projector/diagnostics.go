package projector

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
)

// DefaultExpectedTools: 4 de partido + 4 por equipo. El payload del backend
// no trae el total de tools que corrió, así que el denominador es fijo y
// configurable (Options.ExpectedTools).
const DefaultExpectedTools = 12

const (
	glyphOK   = "\u2714"
	glyphFail = "\u2718"
)

// Summary: conteos de la ejecución.
type Summary struct {
	Succeeded int
	Failed    int
	Received  int
	Expected  int
}

// Mismatch indica que el backend mandó otra cantidad de tools de la esperada.
func (s Summary) Mismatch() bool { return s.Received != s.Expected }

func Summarize(tools []domain.ToolResult, expected int) Summary {
	sum := Summary{Received: len(tools), Expected: expected}
	for _, t := range tools {
		if t.Success {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
	}
	return sum
}

// Diagnostics: tiempos y un badge por tool. El denominador es fijo.
func Diagnostics(r domain.MatchReport, expected int, s *view.Slots) Summary {
	all := r.AllTools()
	sum := Summarize(all, expected)

	s.Get(view.TotalTime).SetText(fmt.Sprintf("%dms", round(r.TotalTimeMs)))
	s.Get(view.ToolsSuccess).SetText(fmt.Sprintf("%d/%d", sum.Succeeded, expected))
	s.Get(view.ToolsFailed).SetText(itoa(sum.Failed))

	breakdown := s.Get(view.ToolBreakdown)
	breakdown.Clear()
	for i := range all {
		breakdown.Append(toolBadge(&all[i]))
	}
	return sum
}

func toolBadge(t *domain.ToolResult) *html.Node {
	class, icon := "success", glyphOK
	if !t.Success {
		class, icon = "error", glyphFail
	}
	return view.El(atom.Div,
		view.Class("tool-badge", class),
		view.Title(errOr(t, "OK")),
		view.Children(
			view.Span("", icon),
			view.Span("", t.ToolName),
			view.Span("time", fmt.Sprintf("%dms", round(t.ExecutionTimeMs))),
		),
	)
}
