package httpreport

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jose-valero/match-infographic/internal/app/view"
)

//go:embed static/index.html
var indexHTML []byte

// ids fijos del template que no son slots.
const (
	idResults      = "results"
	idErrorMessage = "error-message"
	idErrorText    = "error-text"
	idHomeInput    = "home-team"
	idAwayInput    = "away-team"
	idSnapshotLink = "snapshot-link"

	classHidden = "hidden"
)

// Page: lo que se pinta en una respuesta. Slots nil => resultados ocultos.
type Page struct {
	Slots      *view.Slots
	Error      string
	HomeTeam   string
	AwayTeam   string
	SnapshotID string
}

// Render parsea el template, aplica la página y escribe el HTML.
// Devuelve los slots que no tienen elemento en el template.
func Render(w io.Writer, p Page) ([]view.SlotID, error) {
	doc, err := html.Parse(bytes.NewReader(indexHTML))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	byID := indexByID(doc)

	var missing []view.SlotID
	if p.Slots != nil && p.Error == "" {
		for _, id := range p.Slots.IDs() {
			el, ok := byID[string(id)]
			if !ok {
				missing = append(missing, id)
				continue
			}
			slot, _ := p.Slots.Lookup(id)
			applySlot(el, slot)
		}
		removeClass(byID[idResults], classHidden)
	}

	if p.Error != "" {
		setText(byID[idErrorText], p.Error)
		removeClass(byID[idErrorMessage], classHidden)
	}
	setAttr(byID[idHomeInput], "value", p.HomeTeam)
	setAttr(byID[idAwayInput], "value", p.AwayTeam)
	if p.SnapshotID != "" && p.Error == "" {
		if a := byID[idSnapshotLink]; a != nil {
			setAttr(a, "href", "/reports/"+p.SnapshotID)
			removeClass(a, classHidden)
		}
	}

	if err := html.Render(w, doc); err != nil {
		return missing, fmt.Errorf("render page: %w", err)
	}
	return missing, nil
}

// applySlot reemplaza todos los hijos; clase y estilo sólo si el slot los trae.
func applySlot(el *html.Node, s *view.Slot) {
	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		el.RemoveChild(c)
		c = next
	}
	for _, n := range s.Children() {
		el.AppendChild(view.Clone(n))
	}
	if class, ok := s.Class(); ok {
		setAttr(el, "class", class)
	}
	if style, ok := s.Style(); ok {
		setAttr(el, "style", style)
	}
}

func indexByID(doc *html.Node) map[string]*html.Node {
	out := map[string]*html.Node{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := view.Attr(n, "id"); id != "" {
				if _, dup := out[id]; !dup {
					out[id] = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func setText(n *html.Node, text string) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(view.TextNode(text))
}

// setAttr: valor vacío borra el atributo.
func setAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Key == key {
			if val == "" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			} else {
				n.Attr[i].Val = val
			}
			return
		}
	}
	if val != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	}
}

func removeClass(n *html.Node, class string) {
	if n == nil {
		return
	}
	var keep []string
	for _, c := range strings.Fields(view.Attr(n, "class")) {
		if c != class {
			keep = append(keep, c)
		}
	}
	setAttr(n, "class", strings.Join(keep, " "))
}
