package domain

import (
	"bytes"
	"encoding/json"
)

// Nombres de tools que el backend devuelve en cada categoría.
const (
	ToolOdds     = "fetch_odds"
	ToolVenue    = "fetch_venue"
	ToolWeather  = "fetch_weather"
	ToolH2H      = "fetch_h2h"
	ToolForm     = "fetch_form"
	ToolLeague   = "fetch_league_position"
	ToolInjuries = "fetch_injuries"
	ToolRecovery = "calculate_recovery_time"
)

// MatchDateTBD es el sentinel cuando el backend no conoce la fecha.
const MatchDateTBD = "TBD"

// MatchReport es el payload completo de un render.
type MatchReport struct {
	HomeTeam      string       `json:"home_team"`
	AwayTeam      string       `json:"away_team"`
	MatchDate     *string      `json:"match_date"`
	GameTools     []ToolResult `json:"game_tools"`
	HomeTeamTools []ToolResult `json:"home_team_tools"`
	AwayTeamTools []ToolResult `json:"away_team_tools"`
	TotalTimeMs   float64      `json:"total_time_ms"`
}

// ToolResult: resultado de una sola llamada al backend.
// Data queda crudo; cada projector lo decodifica a su forma.
type ToolResult struct {
	ToolName        string          `json:"tool_name"`
	Success         bool            `json:"success"`
	Data            json.RawMessage `json:"data,omitempty"`
	Error           *string         `json:"error,omitempty"`
	ExecutionTimeMs float64         `json:"execution_time_ms"`
}

// Date devuelve match_date o TBD si viene vacío/null.
func (r MatchReport) Date() string {
	if r.MatchDate == nil || *r.MatchDate == "" {
		return MatchDateTBD
	}
	return *r.MatchDate
}

// AllTools concatena game, home y away en ese orden.
func (r MatchReport) AllTools() []ToolResult {
	out := make([]ToolResult, 0, len(r.GameTools)+len(r.HomeTeamTools)+len(r.AwayTeamTools))
	out = append(out, r.GameTools...)
	out = append(out, r.HomeTeamTools...)
	out = append(out, r.AwayTeamTools...)
	return out
}

// ErrorText devuelve el error del tool o "" si no hay.
func (t *ToolResult) ErrorText() string {
	if t == nil || t.Error == nil {
		return ""
	}
	return *t.Error
}

// HasData: success=true y un payload distinto de null.
func (t *ToolResult) HasData() bool {
	if t == nil || !t.Success {
		return false
	}
	d := bytes.TrimSpace(t.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// FindTool busca por nombre; gana el primero. Ausente => nil.
func FindTool(tools []ToolResult, name string) *ToolResult {
	for i := range tools {
		if tools[i].ToolName == name {
			return &tools[i]
		}
	}
	return nil
}

// DecodeData decodifica el payload de un tool usable.
// Devuelve false para ausente, fallido, null o JSON que no encaja.
func DecodeData[T any](t *ToolResult) (*T, bool) {
	if !t.HasData() {
		return nil, false
	}
	var out T
	if err := json.Unmarshal(t.Data, &out); err != nil {
		return nil, false
	}
	return &out, true
}
