package httpreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jose-valero/match-infographic/internal/app/projector"
	"github.com/jose-valero/match-infographic/internal/app/view"
	"github.com/jose-valero/match-infographic/internal/domain"
	dt "github.com/jose-valero/match-infographic/internal/domain/domaintest"
)

func renderPage(t *testing.T, p Page) (string, map[string]*html.Node) {
	t.Helper()
	var buf bytes.Buffer
	missing, err := Render(&buf, p)
	require.NoError(t, err)
	require.Empty(t, missing, "every slot has an element")

	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), indexByID(doc)
}

func hidden(n *html.Node) bool {
	for _, c := range strings.Fields(view.Attr(n, "class")) {
		if c == classHidden {
			return true
		}
	}
	return false
}

func TestRenderEmptyPage(t *testing.T) {
	_, ids := renderPage(t, Page{})
	assert.True(t, hidden(ids[idResults]))
	assert.True(t, hidden(ids[idErrorMessage]))
	assert.True(t, hidden(ids[idSnapshotLink]))
}

func TestRenderFullReport(t *testing.T) {
	res := projector.RenderMatchData(dt.FullReport(), projector.Options{})
	_, ids := renderPage(t, Page{Slots: res.Slots, HomeTeam: "Manchester City", AwayTeam: "Tottenham", SnapshotID: "abc"})

	assert.False(t, hidden(ids[idResults]))
	assert.True(t, hidden(ids[idErrorMessage]))
	assert.Equal(t, "2.10", view.TextOf(ids["odds-home"]))
	assert.Equal(t, "Mon, 15 Dec 2025", view.TextOf(ids["match-date"]))
	assert.Equal(t, "12/12", view.TextOf(ids["tools-success"]))
	assert.Equal(t, "Manchester City", view.Attr(ids[idHomeInput], "value"))
	assert.Equal(t, "/reports/abc", view.Attr(ids[idSnapshotLink], "href"))
	assert.False(t, hidden(ids[idSnapshotLink]))

	assert.Equal(t, "form-circles", view.Attr(ids["home-form-circles"], "class"), "template class kept")
	assert.Equal(t, "recovery-days short", view.Attr(ids["away-recovery-days"], "class"))
	assert.Equal(t, "color: var(--loss-red)", view.Attr(ids["away-recovery-days"], "style"))
	assert.Equal(t, "English Premier League", view.TextOf(ids["league-name"]))
}

func TestRenderTwiceIsIndependent(t *testing.T) {
	res := projector.RenderMatchData(dt.FullReport(), projector.Options{})
	a, _ := renderPage(t, Page{Slots: res.Slots})
	b, _ := renderPage(t, Page{Slots: res.Slots})
	assert.Equal(t, a, b, "slot nodes are cloned, not moved")
}

func TestRenderDegradedClearsStyle(t *testing.T) {
	r := dt.FullReport()
	r.AwayTeamTools = dt.Without(r.AwayTeamTools, domain.ToolRecovery)
	res := projector.RenderMatchData(r, projector.Options{})
	_, ids := renderPage(t, Page{Slots: res.Slots})

	days := ids["away-recovery-days"]
	assert.Equal(t, "-", view.TextOf(days))
	assert.Equal(t, "recovery-days", view.Attr(days, "class"))
	assert.Empty(t, view.Attr(days, "style"))
}

func TestRenderErrorBanner(t *testing.T) {
	res := projector.RenderMatchData(dt.FullReport(), projector.Options{})
	_, ids := renderPage(t, Page{Slots: res.Slots, Error: "Team 'Atlantis' not found", SnapshotID: "abc"})

	assert.True(t, hidden(ids[idResults]), "no results on error")
	assert.False(t, hidden(ids[idErrorMessage]))
	assert.Equal(t, "Team 'Atlantis' not found", view.TextOf(ids[idErrorText]))
	assert.Equal(t, "-", view.TextOf(ids["odds-home"]), "slots not applied")
	assert.True(t, hidden(ids[idSnapshotLink]))
}

const payload = `<script>alert(1)</script><img src=x onerror=alert(2)>`

func hostileReport() domain.MatchReport {
	r := dt.FullReport()
	r.HomeTeam = payload
	r.MatchDate = dt.Ptr(payload)

	inj := domain.InjuriesData{Injuries: []domain.Injury{{PlayerName: payload, InjuryType: dt.Ptr(payload)}}}
	odds := dt.Odds()
	odds.Bookmaker = dt.Ptr(payload)
	form := domain.FormData{Matches: []domain.FormMatch{{Opponent: payload, HomeAway: payload, Result: payload}}}

	r.GameTools = []domain.ToolResult{
		dt.OK(domain.ToolOdds, odds, 1),
		dt.Fail(domain.ToolVenue, payload, 1),
		dt.OK(domain.ToolH2H, domain.H2HData{Matches: []domain.H2HMatch{{HomeTeam: payload, AwayTeam: payload, Date: payload}}}, 1),
		{ToolName: payload, Success: true, Data: []byte(`{}`)},
	}
	r.HomeTeamTools = []domain.ToolResult{
		dt.OK(domain.ToolInjuries, inj, 1),
		dt.OK(domain.ToolForm, form, 1),
		dt.OK(domain.ToolLeague, domain.LeaguePositionData{LeagueName: dt.Ptr(payload), Form: dt.Ptr(payload)}, 1),
		dt.OK(domain.ToolRecovery, domain.RecoveryData{RecoveryStatus: dt.Ptr(payload)}, 1),
	}
	return r
}

func TestRenderHostileTextStaysText(t *testing.T) {
	res := projector.RenderMatchData(hostileReport(), projector.Options{})
	out, ids := renderPage(t, Page{Slots: res.Slots, HomeTeam: payload, AwayTeam: `" autofocus onfocus="alert(3)`})

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			assert.NotEqual(t, "script", n.Data, "no script element")
			assert.NotEqual(t, "img", n.Data, "no img element")
			for _, a := range n.Attr {
				assert.False(t, strings.HasPrefix(a.Key, "on"), "event handler attribute %q on <%s>", a.Key, n.Data)
				assert.NotEqual(t, "autofocus", a.Key)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	assert.Equal(t, payload, view.TextOf(ids["header-home-team"]))
	assert.Equal(t, payload, view.TextOf(ids["match-date"]), "unparseable date returned as-is")
	assert.Equal(t, "Source: "+payload, view.TextOf(ids["odds-bookmaker"]))
	assert.Equal(t, payload, view.TextOf(ids["venue-city"]), "error text shown verbatim")
	assert.Equal(t, payload, view.Attr(ids[idHomeInput], "value"))
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
}
