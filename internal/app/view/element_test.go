package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, n))
	return buf.String()
}

func TestElTextIsLiteral(t *testing.T) {
	payloads := []string{
		`<b>X</b>`,
		`<script>alert("x")</script>`,
		`"><img src=x onerror=alert(1)>`,
		`Tom & Jerry's`,
	}
	for _, p := range payloads {
		n := Span("injury-player", p)
		out := render(t, n)

		assert.NotContains(t, out, "<b>")
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "<img")
		assert.Equal(t, p, TextOf(n))

		// round-trip: el navegador vería exactamente un span con ese texto
		frag, err := html.ParseFragment(strings.NewReader(out), &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"})
		require.NoError(t, err)
		require.Len(t, frag, 1)
		assert.Equal(t, atom.Span, frag[0].DataAtom)
		require.NotNil(t, frag[0].FirstChild)
		assert.Equal(t, html.TextNode, frag[0].FirstChild.Type)
		assert.Nil(t, frag[0].FirstChild.NextSibling)
		assert.Equal(t, p, frag[0].FirstChild.Data)
	}
}

func TestTitleIsEscaped(t *testing.T) {
	n := El(atom.Div, Class("form-circle", "win"), Text("W"), Title(`x" onmouseover="alert(1)`))
	out := render(t, n)
	assert.Contains(t, out, `class="form-circle win"`)
	assert.Contains(t, out, `title="x&#34; onmouseover=&#34;alert(1)"`)
	assert.Equal(t, `x" onmouseover="alert(1)`, Attr(n, "title"))
}

func TestStyledUsesPalette(t *testing.T) {
	n := Div("", "+3 more", TextCenter, Color(TextMuted), SmallFont)
	assert.Equal(t, "text-align: center; color: var(--text-muted); font-size: 0.8rem", Attr(n, "style"))
	assert.Equal(t, "", Attr(n, "class"))

	mini := Div("mini-circle", "W", Background(WinGreen))
	assert.Equal(t, "background: var(--win-green)", Attr(mini, "style"))
}

func TestChildrenAndTextOf(t *testing.T) {
	n := El(atom.Div, Class("h2h-match"), Children(
		Span("h2h-date", "Sun, 2 Feb 2025"),
		nil,
		Span("h2h-teams", "A vs B"),
	))
	assert.Equal(t, "Sun, 2 Feb 2025A vs B", TextOf(n))
}

func TestClone(t *testing.T) {
	orig := El(atom.Div, Class("tool-badge"), Children(Span("", "ok")))
	parent := El(atom.Div)
	parent.AppendChild(Clone(orig))
	parent.AppendChild(Clone(orig))

	assert.Nil(t, orig.Parent)
	assert.Equal(t, "okok", TextOf(parent))
	assert.Equal(t, "tool-badge", Attr(parent.FirstChild, "class"))
}
