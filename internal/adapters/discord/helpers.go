package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Límites de Discord. maxDescription es nuestro: liga y fecha no necesitan
// los 4096 permitidos y el total del embed no puede pasar de maxEmbedTotal.
const (
	maxTitle       = 256
	maxDescription = 512
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFooter      = 2048
	maxEmbedTotal  = 6000
	maxContent     = 2000
)

var markdown = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"<", `\<`,
	"@", "@\u200b",
)

// escapeMarkdown: texto externo como literal en cualquier campo del embed.
func escapeMarkdown(s string) string { return markdown.Replace(s) }

// truncate por runas; agrega "…" si corta.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

// plainText aplana nodos de un slot: br => salto, cada div en su línea con
// sus hijos separados por " · ", el resto concatenado.
func plainText(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.DataAtom == atom.Br:
			b.WriteString("\n")
		case n.DataAtom == atom.Div:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
			b.WriteString(divLine(n))
			b.WriteString("\n")
		default:
			b.WriteString(textOf(n))
		}
	}
	return strings.TrimSpace(b.String())
}

func divLine(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := strings.TrimSpace(textOf(c)); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " · ")
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
	}
	return b.String()
}

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

// userID funciona en guild (Member) y en DM (User).
func userID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}
