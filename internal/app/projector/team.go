package projector

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html/atom"

	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
)

func resultClass(r string) string {
	switch r {
	case "W":
		return "win"
	case "D":
		return "draw"
	default:
		return "loss"
	}
}

func resultColor(r string) view.Style {
	switch r {
	case "W":
		return view.Background(view.WinGreen)
	case "D":
		return view.Background(view.DrawGray)
	default:
		return view.Background(view.LossRed)
	}
}

// formTooltip: "Rival (Home) 2-1", o la letra si faltan goles.
func formTooltip(m domain.FormMatch) string {
	score := m.Result
	if m.GoalsFor.Valid && m.GoalsAgainst.Valid {
		score = fmt.Sprintf("%d-%d", m.GoalsFor.V, m.GoalsAgainst.V)
	}
	return fmt.Sprintf("%s (%s) %s", m.Opponent, m.HomeAway, score)
}

// Form: hasta 5 círculos W/D/L y el récord.
func Form(side view.Side, t *domain.ToolResult, s *view.Slots) {
	circles := s.Get(view.SideSlot(side, view.FormCircles))
	record := s.Get(view.SideSlot(side, view.FormRecord))

	d, ok := domain.DecodeData[domain.FormData](t)
	if !ok {
		circles.Clear()
		circles.Append(view.Span("", "No form data", view.Color(view.TextMuted)))
		record.SetText(errOr(t, ""))
		return
	}

	circles.Clear()
	for i, m := range d.Matches {
		if i == maxRows {
			break
		}
		circles.Append(view.El(atom.Div,
			view.Class("form-circle", resultClass(m.Result)),
			view.Text(m.Result),
			view.Title(formTooltip(m)),
		))
	}

	if d.Record != nil {
		record.SetText(fmt.Sprintf("%dW - %dD - %dL", d.Record.Wins.V, d.Record.Draws.V, d.Record.Losses.V))
	} else {
		record.Clear()
	}
}

// LeaguePosition: puesto, línea de puntos y mini forma por carácter.
func LeaguePosition(side view.Side, t *domain.ToolResult, s *view.Slots) {
	pos := s.Get(view.SideSlot(side, view.Position))
	stats := s.Get(view.SideSlot(side, view.PositionStats))
	form := s.Get(view.SideSlot(side, view.LeagueForm))

	d, ok := domain.DecodeData[domain.LeaguePositionData](t)
	if !ok {
		pos.SetText(dash)
		stats.SetText(errOr(t, "No position data"))
		form.Clear()
		return
	}

	if p := d.Position.V; p != 0 {
		pos.SetText(strconv.FormatInt(p, 10))
	} else {
		pos.SetText(dash)
	}
	stats.SetText(fmt.Sprintf("%d pts | %dP %dW %dD %dL",
		d.Points.V, d.Played.V, d.Won.V, d.Draw.V, d.Lost.V))

	form.Clear()
	if d.Form != nil {
		for _, r := range *d.Form {
			c := string(r)
			form.Append(view.Div("mini-circle", c, resultColor(c)))
		}
	}
}

// Injuries: hasta 5 jugadores, "+N more" por el resto.
func Injuries(side view.Side, t *domain.ToolResult, s *view.Slots) {
	list := s.Get(view.SideSlot(side, view.Injuries))
	list.Clear()

	d, ok := domain.DecodeData[domain.InjuriesData](t)
	if !ok {
		list.Append(view.Span("", errOr(t, "No injury data"), view.Color(view.TextMuted)))
		return
	}

	if len(d.Injuries) == 0 {
		list.Append(view.Div("no-injuries", "\u2714 No injuries reported"))
		return
	}

	for i, inj := range d.Injuries {
		if i == maxRows {
			break
		}
		list.Append(view.El(atom.Div, view.Class("injury-item"), view.Children(
			view.Span("injury-player", inj.PlayerName),
			view.Span("injury-type", orString(inj.InjuryType, "Unknown")),
		)))
	}

	if more := InjuryRemainder(d); more > 0 {
		list.Append(view.Div("", fmt.Sprintf("+%d more", more),
			view.TextCenter, view.Color(view.TextMuted), view.SmallFont))
	}
}

// InjuryRemainder: cuántas no se muestran. total_injuries manda si viene
// y no es menor que la lista.
func InjuryRemainder(d *domain.InjuriesData) int {
	total := len(d.Injuries)
	if d.TotalInjuries.V > int64(total) {
		total = int(d.TotalInjuries.V)
	}
	if total <= maxRows {
		return 0
	}
	return total - maxRows
}

// recoveryLook: clase y color por status exacto; lo demás es neutro.
func recoveryLook(status string) (string, view.Style) {
	switch status {
	case domain.RecoveryShort:
		return "short", view.Color(view.LossRed)
	case domain.RecoveryExtended:
		return "extended", view.Color(view.WinGreen)
	default:
		return "normal", view.Color(view.AccentGold)
	}
}

// Recovery: días de descanso y status con color.
func Recovery(side view.Side, t *domain.ToolResult, s *view.Slots) {
	days := s.Get(view.SideSlot(side, view.RecoveryDays))
	status := s.Get(view.SideSlot(side, view.RecoveryStatus))

	d, ok := domain.DecodeData[domain.RecoveryData](t)
	if !ok {
		days.SetText(dash)
		days.SetClass("recovery-days")
		days.SetStyle()
		status.SetText(errOr(t, "No recovery data"))
		status.SetClass("recovery-status")
		return
	}

	if d.RecoveryDays.Valid {
		days.SetText(strconv.FormatInt(d.RecoveryDays.V, 10))
	} else {
		days.SetText(dash)
	}

	st := orString(d.RecoveryStatus, "")
	class, col := recoveryLook(st)
	days.SetClass("recovery-days", class)
	days.SetStyle(col)
	status.SetText(orString(d.RecoveryStatus, "Unknown"))
	status.SetClass("recovery-status", class)
}
