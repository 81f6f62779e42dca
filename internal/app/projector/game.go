package projector

import (
	"fmt"

	"golang.org/x/net/html/atom"

	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
)

// Odds: 1X2 con dos decimales y la casa de apuestas.
func Odds(t *domain.ToolResult, s *view.Slots) {
	d, ok := domain.DecodeData[domain.OddsData](t)
	if !ok {
		s.Get(view.OddsHome).SetText(dash)
		s.Get(view.OddsDraw).SetText(dash)
		s.Get(view.OddsAway).SetText(dash)
		s.Get(view.OddsBookmaker).SetText(errOr(t, "No odds data available"))
		return
	}

	s.Get(view.OddsHome).SetText(optFixed2(d.OddsHome))
	s.Get(view.OddsDraw).SetText(optFixed2(d.OddsDraw))
	s.Get(view.OddsAway).SetText(optFixed2(d.OddsAway))

	bm := ""
	if d.Bookmaker != nil && *d.Bookmaker != "" {
		bm = "Source: " + *d.Bookmaker
	}
	s.Get(view.OddsBookmaker).SetText(bm)
}

// Venue: nombre, ciudad y capacidad con separador de miles.
func Venue(t *domain.ToolResult, s *view.Slots, nums Numbers) {
	d, ok := domain.DecodeData[domain.VenueData](t)
	if !ok {
		s.Get(view.VenueName).SetText("Unknown Venue")
		s.Get(view.VenueCity).SetText(errOr(t, "No venue data"))
		s.Get(view.VenueCapacity).SetText("")
		return
	}

	s.Get(view.VenueName).SetText(orString(d.VenueName, "Unknown Venue"))
	s.Get(view.VenueCity).SetText(orString(d.VenueCity, ""))

	capacity := ""
	if d.VenueCapacity.V != 0 {
		capacity = "Capacity: " + nums.Int(d.VenueCapacity.V)
	}
	s.Get(view.VenueCapacity).SetText(capacity)
}

// Glifos por condición; cualquier otra cosa cae en weatherDefault.
var weatherIcons = map[string]string{
	"Clear":         "\u2600\ufe0f",
	"Partly Cloudy": "\u26c5",
	"Cloudy":        "\u2601\ufe0f",
	"Rain":          "\U0001f327\ufe0f",
	"Heavy Rain":    "\u26c8\ufe0f",
	"Snow":          "\u2744\ufe0f",
	"Fog":           "\U0001f32b\ufe0f",
}

const (
	weatherDefault = "\U0001f324\ufe0f"
	weatherUnknown = "?"
)

// WeatherIcon nunca falla.
func WeatherIcon(conditions string) string {
	if ic, ok := weatherIcons[conditions]; ok {
		return ic
	}
	return weatherDefault
}

// Weather: temperatura, viento y lluvia redondeados.
func Weather(t *domain.ToolResult, s *view.Slots) {
	d, ok := domain.DecodeData[domain.WeatherData](t)
	if !ok {
		s.Get(view.WeatherIcon).SetText(weatherUnknown)
		s.Get(view.WeatherTemp).SetText(dash)
		s.Get(view.WeatherConditions).SetText(errOr(t, "No weather data"))
		s.Get(view.WeatherWind).SetText("")
		s.Get(view.WeatherRain).SetText("")
		return
	}

	conditions := orString(d.Conditions, "")
	s.Get(view.WeatherIcon).SetText(WeatherIcon(conditions))
	s.Get(view.WeatherConditions).SetText(conditions)

	temp := dash
	if d.TemperatureCelsius.Valid {
		temp = fmt.Sprintf("%d°C", round(d.TemperatureCelsius.V))
	}
	s.Get(view.WeatherTemp).SetText(temp)

	wind := ""
	if d.WindSpeedKmh.Valid {
		wind = fmt.Sprintf("Wind: %d km/h", round(d.WindSpeedKmh.V))
	}
	s.Get(view.WeatherWind).SetText(wind)

	rain := ""
	if d.PrecipitationProbability.Valid {
		rain = fmt.Sprintf("Rain: %d%%", round(d.PrecipitationProbability.V))
	}
	s.Get(view.WeatherRain).SetText(rain)
}

// Máximo de filas en listas (H2H, forma, lesiones).
const maxRows = 5

// H2HTally cuenta victorias por bucket; todo lo que no es HOME/AWAY es empate.
type H2HTally struct {
	HomeWins, Draws, AwayWins int
}

func TallyH2H(matches []domain.H2HMatch) H2HTally {
	var t H2HTally
	for _, m := range matches {
		switch m.Winner {
		case domain.WinnerHome:
			t.HomeWins++
		case domain.WinnerAway:
			t.AwayWins++
		default:
			t.Draws++
		}
	}
	return t
}

func winnerColor(winner string) view.Style {
	switch winner {
	case domain.WinnerHome:
		return view.Background(view.WinGreen)
	case domain.WinnerAway:
		return view.Background(view.LossRed)
	default:
		return view.Background(view.DrawGray)
	}
}

// h2hScore: "H - A" o "N/A" si falta cualquiera de los dos.
func h2hScore(m domain.H2HMatch) string {
	if !m.ScoreHome.Valid || !m.ScoreAway.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%d - %d", m.ScoreHome.V, m.ScoreAway.V)
}

// H2H: resumen W-D-W y los últimos 5 cruces (la lista ya viene ordenada).
func H2H(t *domain.ToolResult, s *view.Slots) {
	summary := s.Get(view.H2HSummary)
	list := s.Get(view.H2HMatches)

	d, ok := domain.DecodeData[domain.H2HData](t)
	if !ok {
		summary.SetText(errOr(t, "No H2H data available"))
		list.Clear()
		return
	}

	tally := TallyH2H(d.Matches)
	summary.Clear()
	summary.Append(
		view.Span("", fmt.Sprintf("%dW", tally.HomeWins), view.Color(view.WinGreen)),
		view.TextNode(" - "),
		view.Span("", fmt.Sprintf("%dD", tally.Draws), view.Color(view.DrawGray)),
		view.TextNode(" - "),
		view.Span("", fmt.Sprintf("%dW", tally.AwayWins), view.Color(view.LossRed)),
		view.Br(),
		view.Small(fmt.Sprintf("Last %d meetings", len(d.Matches)), view.Color(view.TextMuted)),
	)

	list.Clear()
	for i, m := range d.Matches {
		if i == maxRows {
			break
		}
		list.Append(view.El(atom.Div, view.Class("h2h-match"), view.Children(
			view.Span("h2h-date", FormatDate(m.Date)),
			view.Span("h2h-teams", m.HomeTeam+" vs "+m.AwayTeam),
			view.Span("h2h-score", h2hScore(m)),
			view.El(atom.Span, view.Class("h2h-winner"), view.Styled(winnerColor(m.Winner))),
		)))
	}
}
