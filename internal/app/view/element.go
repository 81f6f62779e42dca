// Package view es la única vía para producir contenido visible.
// Todo texto llega al árbol como nodo de texto; html.Render lo escapa.
package view

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// color es un var() CSS del tema. Sin constructor exportado:
// fuera de este paquete sólo existen las constantes de abajo.
type color string

const (
	WinGreen   color = "var(--win-green)"
	DrawGray   color = "var(--draw-gray)"
	LossRed    color = "var(--loss-red)"
	AccentGold color = "var(--accent-gold)"
	TextMuted  color = "var(--text-muted)"
)

// Style es una propiedad CSS fija; se arma con los helpers de abajo.
type Style struct {
	prop  string
	value string
}

func Color(c color) Style      { return Style{prop: "color", value: string(c)} }
func Background(c color) Style { return Style{prop: "background", value: string(c)} }

var (
	TextCenter = Style{prop: "text-align", value: "center"}
	SmallFont  = Style{prop: "font-size", value: "0.8rem"}
)

func (s Style) String() string { return s.prop + ": " + s.value }

// Option configura un elemento.
type Option func(*html.Node)

// Text pone contenido literal (nunca markup).
func Text(s string) Option {
	return func(n *html.Node) { n.AppendChild(TextNode(s)) }
}

// Class pone class. Las clases son siempre constantes del código.
func Class(classes ...string) Option {
	return func(n *html.Node) {
		if c := joinClasses(classes); c != "" {
			setAttr(n, "class", c)
		}
	}
}

// Title pone un tooltip; el valor va como atributo escapado.
func Title(s string) Option {
	return func(n *html.Node) { setAttr(n, "title", s) }
}

// Styled aplica propiedades de la paleta fija.
func Styled(styles ...Style) Option {
	return func(n *html.Node) {
		if css := styleAttr(styles); css != "" {
			setAttr(n, "style", css)
		}
	}
}

// Children agrega hijos ya construidos.
func Children(children ...*html.Node) Option {
	return func(n *html.Node) {
		for _, c := range children {
			if c != nil {
				n.AppendChild(c)
			}
		}
	}
}

// El construye un nodo elemento. El tag es un atom, o sea, del código.
func El(tag atom.Atom, opts ...Option) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	for _, o := range opts {
		o(n)
	}
	return n
}

// TextNode devuelve un nodo de texto literal.
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Span, Div, Small: atajos de El(tag, Class(class), Text(text), Styled(...)).
func Span(class, text string, styles ...Style) *html.Node {
	return El(atom.Span, Class(class), Text(text), Styled(styles...))
}

func Div(class, text string, styles ...Style) *html.Node {
	return El(atom.Div, Class(class), Text(text), Styled(styles...))
}

func Small(text string, styles ...Style) *html.Node {
	return El(atom.Small, Text(text), Styled(styles...))
}

func Br() *html.Node { return El(atom.Br) }

// TextOf concatena el texto visible de un nodo (para tests y embeds).
func TextOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Attr devuelve un atributo o "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func joinClasses(classes []string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

func styleAttr(styles []Style) string {
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		if s.prop != "" {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, "; ")
}

// Clone copia un nodo y su subárbol, sin padre ni hermanos.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(Clone(ch))
	}
	return c
}
