// Package projector convierte un MatchReport en contenido de slots.
// Cada projector es total: con tool ausente, fallido o sin data pinta
// placeholders y nunca corta el render.
package projector

import (
	"golang.org/x/text/language"

	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
)

// Options del render.
type Options struct {
	ExpectedTools int
	NumberLocale  language.Tag
}

func (o Options) withDefaults() Options {
	if o.ExpectedTools <= 0 {
		o.ExpectedTools = DefaultExpectedTools
	}
	if o.NumberLocale == language.Und {
		o.NumberLocale = language.English
	}
	return o
}

// Result: slots listos para la página más el resumen de ejecución.
type Result struct {
	Slots   *view.Slots
	Summary Summary
}

// RenderMatchData arma slots nuevos para un reporte. No muta r.
func RenderMatchData(r domain.MatchReport, opts Options) Result {
	opts = opts.withDefaults()
	s := view.NewSlots()

	Header(r, s)

	nums := NewNumbers(opts.NumberLocale)
	Odds(domain.FindTool(r.GameTools, domain.ToolOdds), s)
	Venue(domain.FindTool(r.GameTools, domain.ToolVenue), s, nums)
	Weather(domain.FindTool(r.GameTools, domain.ToolWeather), s)
	H2H(domain.FindTool(r.GameTools, domain.ToolH2H), s)

	teamTools(view.Home, r.HomeTeamTools, s)
	teamTools(view.Away, r.AwayTeamTools, s)

	League(domain.FindTool(r.HomeTeamTools, domain.ToolLeague), s)

	sum := Diagnostics(r, opts.ExpectedTools, s)
	return Result{Slots: s, Summary: sum}
}

func teamTools(side view.Side, tools []domain.ToolResult, s *view.Slots) {
	Form(side, domain.FindTool(tools, domain.ToolForm), s)
	LeaguePosition(side, domain.FindTool(tools, domain.ToolLeague), s)
	Injuries(side, domain.FindTool(tools, domain.ToolInjuries), s)
	Recovery(side, domain.FindTool(tools, domain.ToolRecovery), s)
}

// Header: nombres, iniciales y fecha.
func Header(r domain.MatchReport, s *view.Slots) {
	s.Get(view.HeaderHomeTeam).SetText(r.HomeTeam)
	s.Get(view.HeaderAwayTeam).SetText(r.AwayTeam)
	s.Get(view.ColHomeTeam).SetText(r.HomeTeam)
	s.Get(view.ColAwayTeam).SetText(r.AwayTeam)
	s.Get(view.HomeCrest).SetText(firstRune(r.HomeTeam))
	s.Get(view.AwayCrest).SetText(firstRune(r.AwayTeam))
	s.Get(view.MatchDate).SetText(FormatDate(r.Date()))
}

// League: nombre de liga desde la posición del local; si no hay, no se toca.
func League(t *domain.ToolResult, s *view.Slots) {
	d, ok := domain.DecodeData[domain.LeaguePositionData](t)
	if !ok || d.LeagueName == nil || *d.LeagueName == "" {
		return
	}
	s.Get(view.LeagueName).SetText(*d.LeagueName)
}
