package projector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
	dt "github.com/jose-valero/match-infographic/internal/domain/domaintest"
)

// nominalTexts: lo que debe verse con FullReport.
func nominalTexts() map[view.SlotID]string {
	return map[view.SlotID]string{
		view.HeaderHomeTeam: "Manchester City",
		view.HeaderAwayTeam: "Tottenham",
		view.ColHomeTeam:    "Manchester City",
		view.ColAwayTeam:    "Tottenham",
		view.HomeCrest:      "M",
		view.AwayCrest:      "T",
		view.MatchDate:      "Mon, 15 Dec 2025",
		view.LeagueName:     "English Premier League",

		view.OddsHome:      "2.10",
		view.OddsDraw:      "3.40",
		view.OddsAway:      "3.50",
		view.OddsBookmaker: "Source: betfair",

		view.VenueName:     "Etihad Stadium",
		view.VenueCity:     "Manchester",
		view.VenueCapacity: "Capacity: 55,097",

		view.WeatherIcon:       "\u2600\ufe0f",
		view.WeatherTemp:       "13°C",
		view.WeatherConditions: "Clear",
		view.WeatherWind:       "Wind: 15 km/h",
		view.WeatherRain:       "Rain: 20%",
	}
}

func pick(all map[view.SlotID]string, ids map[view.SlotID]string) map[view.SlotID]string {
	out := map[view.SlotID]string{}
	for id := range ids {
		out[id] = all[id]
	}
	return out
}

func TestRenderAllNominal(t *testing.T) {
	res := RenderMatchData(dt.FullReport(), Options{})
	got := res.Slots.Texts()

	want := nominalTexts()
	if diff := cmp.Diff(want, pick(got, want)); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "12/12", got[view.ToolsSuccess])
	assert.Equal(t, "0", got[view.ToolsFailed])
	assert.Equal(t, "2346ms", got[view.TotalTime])
	assert.Equal(t, 12, res.Summary.Succeeded)
	assert.False(t, res.Summary.Mismatch())

	for _, side := range []view.Side{view.Home, view.Away} {
		assert.Equal(t, "WWLDW", got[view.SideSlot(side, view.FormCircles)])
		assert.Equal(t, "3W - 1D - 1L", got[view.SideSlot(side, view.FormRecord)])
		assert.Equal(t, "2", got[view.SideSlot(side, view.Position)])
		assert.Equal(t, "Mateo KovacicAnkleRodriUnknown", got[view.SideSlot(side, view.Injuries)])
	}
	assert.Equal(t, "4", got[view.SideSlot(view.Home, view.RecoveryDays)])
	assert.Equal(t, "Normal", got[view.SideSlot(view.Home, view.RecoveryStatus)])
}

func TestRenderOddsAbsent(t *testing.T) {
	r := dt.FullReport()
	r.GameTools = dt.Without(r.GameTools, domain.ToolOdds)

	res := RenderMatchData(r, Options{})
	got := res.Slots.Texts()

	assert.Equal(t, "-", got[view.OddsHome])
	assert.Equal(t, "-", got[view.OddsDraw])
	assert.Equal(t, "-", got[view.OddsAway])
	assert.Equal(t, "No odds data available", got[view.OddsBookmaker])

	want := nominalTexts()
	delete(want, view.OddsHome)
	delete(want, view.OddsDraw)
	delete(want, view.OddsAway)
	delete(want, view.OddsBookmaker)
	if diff := cmp.Diff(want, pick(got, want)); diff != "" {
		t.Errorf("other slots changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, "11/12", got[view.ToolsSuccess])
	assert.Equal(t, "0", got[view.ToolsFailed])
	assert.True(t, res.Summary.Mismatch())
}

func TestRenderDateTBD(t *testing.T) {
	r := dt.FullReport()
	r.MatchDate = dt.Ptr("TBD")
	assert.Equal(t, "TBD", RenderMatchData(r, Options{}).Slots.Text(view.MatchDate))

	r.MatchDate = nil
	assert.Equal(t, "TBD", RenderMatchData(r, Options{}).Slots.Text(view.MatchDate))
}

func TestRenderRecoveryShort(t *testing.T) {
	r := dt.FullReport()
	res := RenderMatchData(r, Options{})

	days := res.Slots.Get(view.SideSlot(view.Away, view.RecoveryDays))
	assert.Equal(t, "3", days.Text())
	c, _ := days.Class()
	assert.Equal(t, "recovery-days short", c)
	assert.Equal(t, "Short", res.Slots.Text(view.SideSlot(view.Away, view.RecoveryStatus)))
}

func TestRenderEmptyReport(t *testing.T) {
	res := RenderMatchData(domain.MatchReport{}, Options{})
	got := res.Slots.Texts()

	assert.Equal(t, "TBD", got[view.MatchDate])
	assert.Equal(t, "", got[view.HomeCrest])
	assert.Equal(t, "Unknown Venue", got[view.VenueName])
	assert.Equal(t, "No form data", got[view.SideSlot(view.Away, view.FormCircles)])
	assert.Equal(t, "0/12", got[view.ToolsSuccess])
	_, touched := res.Slots.Lookup(view.LeagueName)
	assert.False(t, touched, "league name keeps the page default")
}

func TestRenderDoesNotShareState(t *testing.T) {
	r := dt.FullReport()
	a := RenderMatchData(r, Options{})
	b := RenderMatchData(r, Options{})
	assert.NotSame(t, a.Slots, b.Slots)
	assert.Equal(t, a.Slots.Texts(), b.Slots.Texts())
}

func TestRenderSidesAreIndependent(t *testing.T) {
	r := dt.FullReport()
	r.AwayTeamTools = nil

	got := RenderMatchData(r, Options{}).Slots.Texts()
	assert.Equal(t, "WWLDW", got[view.SideSlot(view.Home, view.FormCircles)])
	assert.Equal(t, "No form data", got[view.SideSlot(view.Away, view.FormCircles)])
	assert.Equal(t, "No recovery data", got[view.SideSlot(view.Away, view.RecoveryStatus)])
	assert.Equal(t, "8/12", got[view.ToolsSuccess])
}
