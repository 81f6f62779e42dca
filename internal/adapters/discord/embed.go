package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/infra/storage"
)

const (
	colorOK       = 0x2ecc71
	colorDegraded = 0xf1c40f
)

// BuildEmbed arma el embed de /match a partir del texto de los slots.
// Todo texto que viene del backend pasa por escapeMarkdown.
func BuildEmbed(res projector.Result, url string) *discordgo.MessageEmbed {
	s := res.Slots
	e := func(id view.SlotID) string { return escapeMarkdown(s.Text(id)) }
	list := func(id view.SlotID) string {
		sl, ok := s.Lookup(id)
		if !ok {
			return ""
		}
		return escapeMarkdown(plainText(sl.Children()))
	}

	color := colorOK
	if res.Summary.Failed > 0 || res.Summary.Mismatch() {
		color = colorDegraded
	}

	desc := joinNonEmpty(" · ", e(view.LeagueName), e(view.MatchDate))

	fields := []*discordgo.MessageEmbedField{
		field("Odds", joinNonEmpty("\n",
			fmt.Sprintf("1 **%s** · X **%s** · 2 **%s**", e(view.OddsHome), e(view.OddsDraw), e(view.OddsAway)),
			e(view.OddsBookmaker),
		), true),
		field("Venue", joinNonEmpty("\n", e(view.VenueName), e(view.VenueCity), e(view.VenueCapacity)), true),
		field("Weather", joinNonEmpty("\n",
			joinNonEmpty(" ", e(view.WeatherIcon), e(view.WeatherTemp), e(view.WeatherConditions)),
			joinNonEmpty(" · ", e(view.WeatherWind), e(view.WeatherRain)),
		), true),
		field("Head to head", joinNonEmpty("\n", list(view.H2HSummary), list(view.H2HMatches)), false),
		sideField(s, view.Home, e(view.HeaderHomeTeam), list),
		sideField(s, view.Away, e(view.HeaderAwayTeam), list),
	}

	// título y footer primero; los fields del final son los que se recortan
	left := budget(maxEmbedTotal)
	out := &discordgo.MessageEmbed{
		Title: left.take(fmt.Sprintf("%s vs %s", e(view.HeaderHomeTeam), e(view.HeaderAwayTeam)), maxTitle),
		URL:   url,
		Color: color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: left.take(fmt.Sprintf("Tools %s · failed %s · %s",
				s.Text(view.ToolsSuccess), s.Text(view.ToolsFailed), s.Text(view.TotalTime)), maxFooter),
		},
	}
	out.Description = left.take(desc, maxDescription)
	for _, f := range fields {
		name := left.take(f.Name, maxFieldName)
		value := left.take(f.Value, maxFieldValue)
		if name == "" || value == "" {
			break
		}
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: f.Inline})
	}
	return out
}

// budget: caracteres que quedan para el embed completo.
type budget int

func (b *budget) take(s string, max int) string {
	if int(*b) < max {
		max = int(*b)
	}
	if max <= 0 {
		return ""
	}
	s = truncate(s, max)
	*b -= budget(utf8.RuneCountInString(s))
	return s
}


func sideField(s *view.Slots, side view.Side, team string, list func(view.SlotID) string) *discordgo.MessageEmbedField {
	e := func(suffix string) string { return escapeMarkdown(s.Text(view.SideSlot(side, suffix))) }

	days := e(view.RecoveryDays)
	if days != "-" && days != "" {
		days += " days"
	}

	form := e(view.FormCircles)
	if rec := e(view.FormRecord); rec != "" {
		form += " (" + rec + ")"
	}
	return field(team, joinNonEmpty("\n",
		"**Form** "+form,
		"**Position** "+joinNonEmpty(" · ", e(view.Position), e(view.PositionStats)),
		"**Recovery** "+joinNonEmpty(" · ", days, e(view.RecoveryStatus)),
		"**Injuries**\n"+list(view.SideSlot(side, view.Injuries)),
	), true)
}

// RecentLines: una línea por snapshot para /recent.
func RecentLines(list []storage.SnapshotSummary) string {
	if len(list) == 0 {
		return "No hay reportes guardados."
	}
	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, fmt.Sprintf("`%s` %s vs %s · %s · %d OK",
			r.ID, escapeMarkdown(r.HomeTeam), escapeMarkdown(r.AwayTeam), escapeMarkdown(r.MatchDate), r.ToolsOK))
	}
	return truncate(strings.Join(lines, "\n"), maxContent)
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	if strings.TrimSpace(name) == "" {
		name = "-"
	}
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return &discordgo.MessageEmbedField{
		Name:   truncate(name, maxFieldName),
		Value:  truncate(value, maxFieldValue),
		Inline: inline,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
