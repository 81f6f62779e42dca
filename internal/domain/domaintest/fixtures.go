// Package domaintest arma reportes de prueba para los tests de otros paquetes.
package domaintest

import (
	"encoding/json"

	"github.com/jose-valero/match-infographic/internal/domain"
)

func Ptr[T any](v T) *T { return &v }

// OK arma un ToolResult exitoso con data serializada.
func OK(name string, data any, ms float64) domain.ToolResult {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return domain.ToolResult{ToolName: name, Success: true, Data: raw, ExecutionTimeMs: ms}
}

// Fail arma un ToolResult fallido.
func Fail(name, msg string, ms float64) domain.ToolResult {
	return domain.ToolResult{ToolName: name, Success: false, Data: json.RawMessage(`{}`), Error: Ptr(msg), ExecutionTimeMs: ms}
}

// NullData: success=true pero data null.
func NullData(name string) domain.ToolResult {
	return domain.ToolResult{ToolName: name, Success: true, Data: json.RawMessage(`null`)}
}

func Odds() domain.OddsData {
	return domain.OddsData{
		OddsHome:  domain.FloatOf(2.1),
		OddsDraw:  domain.FloatOf(3.4),
		OddsAway:  domain.FloatOf(3.5),
		Bookmaker: Ptr("betfair"),
	}
}

func Venue() domain.VenueData {
	return domain.VenueData{
		VenueName:     Ptr("Etihad Stadium"),
		VenueCity:     Ptr("Manchester"),
		VenueCapacity: domain.IntOf(55097),
	}
}

func Weather() domain.WeatherData {
	return domain.WeatherData{
		TemperatureCelsius:       domain.FloatOf(12.5),
		PrecipitationProbability: domain.FloatOf(20.0),
		WindSpeedKmh:             domain.FloatOf(15.3),
		Conditions:               Ptr("Clear"),
	}
}

func H2H() domain.H2HData {
	return domain.H2HData{
		HomeTeam: "Manchester City",
		AwayTeam: "Tottenham",
		Matches: []domain.H2HMatch{
			{Date: "2025-02-02", HomeTeam: "Tottenham", AwayTeam: "Manchester City", ScoreHome: domain.IntOf(1), ScoreAway: domain.IntOf(3), Winner: domain.WinnerAway},
			{Date: "2024-11-23", HomeTeam: "Manchester City", AwayTeam: "Tottenham", ScoreHome: domain.IntOf(0), ScoreAway: domain.IntOf(4), Winner: domain.WinnerAway},
			{Date: "2024-05-14", HomeTeam: "Tottenham", AwayTeam: "Manchester City", ScoreHome: domain.IntOf(0), ScoreAway: domain.IntOf(2), Winner: domain.WinnerAway},
			{Date: "2024-01-26", HomeTeam: "Tottenham", AwayTeam: "Manchester City", ScoreHome: domain.IntOf(0), ScoreAway: domain.IntOf(1), Winner: domain.WinnerAway},
			{Date: "2023-12-03", HomeTeam: "Manchester City", AwayTeam: "Tottenham", ScoreHome: domain.IntOf(3), ScoreAway: domain.IntOf(3), Winner: "DRAW"},
		},
		TotalH2H: domain.IntOf(5),
	}
}

func Form() domain.FormData {
	return domain.FormData{
		Matches: []domain.FormMatch{
			{Opponent: "Leeds", HomeAway: "Home", Result: "W", GoalsFor: domain.IntOf(3), GoalsAgainst: domain.IntOf(2)},
			{Opponent: "Fulham", HomeAway: "Away", Result: "W", GoalsFor: domain.IntOf(5), GoalsAgainst: domain.IntOf(4)},
			{Opponent: "Newcastle", HomeAway: "Away", Result: "L"},
			{Opponent: "Leverkusen", HomeAway: "Home", Result: "D", GoalsFor: domain.IntOf(0), GoalsAgainst: domain.IntOf(0)},
			{Opponent: "Liverpool", HomeAway: "Home", Result: "W", GoalsFor: domain.IntOf(3), GoalsAgainst: domain.IntOf(0)},
		},
		Record: &domain.FormRecord{Wins: domain.IntOf(3), Draws: domain.IntOf(1), Losses: domain.IntOf(1)},
	}
}

func League() domain.LeaguePositionData {
	return domain.LeaguePositionData{
		LeagueName: Ptr("English Premier League"),
		Position:   domain.IntOf(2),
		Played:     domain.IntOf(14),
		Won:        domain.IntOf(9),
		Draw:       domain.IntOf(1),
		Lost:       domain.IntOf(4),
		Points:     domain.IntOf(28),
		Form:       Ptr("WWLDW"),
	}
}

func Injuries() domain.InjuriesData {
	return domain.InjuriesData{
		Injuries: []domain.Injury{
			{PlayerName: "Mateo Kovacic", InjuryType: Ptr("Ankle")},
			{PlayerName: "Rodri"},
		},
		TotalInjuries: domain.IntOf(2),
	}
}

func Recovery(days int, status string) domain.RecoveryData {
	return domain.RecoveryData{RecoveryDays: domain.IntOf(int64(days)), RecoveryStatus: Ptr(status)}
}

// FullReport: los 12 tools exitosos con data bien formada.
func FullReport() domain.MatchReport {
	return domain.MatchReport{
		HomeTeam:  "Manchester City",
		AwayTeam:  "Tottenham",
		MatchDate: Ptr("2025-12-15"),
		GameTools: []domain.ToolResult{
			OK(domain.ToolH2H, H2H(), 410.2),
			OK(domain.ToolVenue, Venue(), 120.4),
			OK(domain.ToolWeather, Weather(), 95.5),
			OK(domain.ToolOdds, Odds(), 300.7),
		},
		HomeTeamTools: TeamTools(4, domain.RecoveryNormal),
		AwayTeamTools: TeamTools(3, domain.RecoveryShort),
		TotalTimeMs:   2345.6,
	}
}

// TeamTools: los 4 tools de un equipo.
func TeamTools(recoveryDays int, status string) []domain.ToolResult {
	return []domain.ToolResult{
		OK(domain.ToolForm, Form(), 50),
		OK(domain.ToolInjuries, Injuries(), 60),
		OK(domain.ToolLeague, League(), 70),
		OK(domain.ToolRecovery, Recovery(recoveryDays, status), 80),
	}
}

// Without devuelve tools sin las entradas de ese nombre.
func Without(tools []domain.ToolResult, name string) []domain.ToolResult {
	out := make([]domain.ToolResult, 0, len(tools))
	for _, t := range tools {
		if t.ToolName != name {
			out = append(out, t)
		}
	}
	return out
}
