package view

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// SlotID es el id del elemento de la página que recibe el contenido.
type SlotID string

// Side distingue las columnas home/away.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Slots de cabecera y de tools de partido.
const (
	HeaderHomeTeam SlotID = "header-home-team"
	HeaderAwayTeam SlotID = "header-away-team"
	ColHomeTeam    SlotID = "col-home-team"
	ColAwayTeam    SlotID = "col-away-team"
	HomeCrest      SlotID = "home-crest"
	AwayCrest      SlotID = "away-crest"
	MatchDate      SlotID = "match-date"
	LeagueName     SlotID = "league-name"

	OddsHome      SlotID = "odds-home"
	OddsDraw      SlotID = "odds-draw"
	OddsAway      SlotID = "odds-away"
	OddsBookmaker SlotID = "odds-bookmaker"

	VenueName     SlotID = "venue-name"
	VenueCity     SlotID = "venue-city"
	VenueCapacity SlotID = "venue-capacity"

	WeatherIcon       SlotID = "weather-icon"
	WeatherTemp       SlotID = "weather-temp"
	WeatherConditions SlotID = "weather-conditions"
	WeatherWind       SlotID = "weather-wind"
	WeatherRain       SlotID = "weather-rain"

	H2HSummary SlotID = "h2h-summary"
	H2HMatches SlotID = "h2h-matches"

	TotalTime     SlotID = "total-time"
	ToolsSuccess  SlotID = "tools-success"
	ToolsFailed   SlotID = "tools-failed"
	ToolBreakdown SlotID = "tool-breakdown"
)

// Sufijos de los slots por lado: "{side}-{suffix}".
const (
	FormCircles    = "form-circles"
	FormRecord     = "form-record"
	Position       = "position"
	PositionStats  = "position-stats"
	LeagueForm     = "league-form"
	Injuries       = "injuries"
	RecoveryDays   = "recovery-days"
	RecoveryStatus = "recovery-status"
)

// SideSlot arma el id de un slot de columna.
func SideSlot(side Side, suffix string) SlotID {
	return SlotID(string(side) + "-" + suffix)
}

// Slot es el contenido de un id: hijos, clase y estilo. Si Class/Styles
// quedan sin tocar, la página conserva los del template.
type Slot struct {
	children []*html.Node
	class    *string
	styles   []Style
	styleSet bool
}

// SetText reemplaza el contenido por texto literal.
func (s *Slot) SetText(text string) {
	s.children = []*html.Node{TextNode(text)}
}

// Clear deja el slot vacío.
func (s *Slot) Clear() { s.children = nil }

// Append agrega fragmentos construidos con El/Span/Div.
func (s *Slot) Append(nodes ...*html.Node) {
	for _, n := range nodes {
		if n != nil {
			s.children = append(s.children, n)
		}
	}
}

// SetClass reemplaza la clase del elemento destino.
func (s *Slot) SetClass(classes ...string) {
	c := joinClasses(classes)
	s.class = &c
}

// SetStyle reemplaza el estilo inline del elemento destino.
func (s *Slot) SetStyle(styles ...Style) {
	s.styles = append([]Style(nil), styles...)
	s.styleSet = true
}

func (s *Slot) Children() []*html.Node { return s.children }

// Class devuelve la clase y si fue seteada.
func (s *Slot) Class() (string, bool) {
	if s.class == nil {
		return "", false
	}
	return *s.class, true
}

// Style devuelve el atributo style y si fue seteado.
func (s *Slot) Style() (string, bool) { return styleAttr(s.styles), s.styleSet }

// Text es el texto visible del slot.
func (s *Slot) Text() string {
	var b strings.Builder
	for _, c := range s.children {
		b.WriteString(TextOf(c))
	}
	return b.String()
}

// Slots mapea id -> handle. Se crea uno por ciclo de render.
type Slots struct {
	m map[SlotID]*Slot
}

func NewSlots() *Slots { return &Slots{m: map[SlotID]*Slot{}} }

// Get devuelve (creando si hace falta) el handle de un id.
func (s *Slots) Get(id SlotID) *Slot {
	if sl, ok := s.m[id]; ok {
		return sl
	}
	sl := &Slot{}
	s.m[id] = sl
	return sl
}

// Lookup no crea: sirve para saber si un projector tocó el slot.
func (s *Slots) Lookup(id SlotID) (*Slot, bool) {
	sl, ok := s.m[id]
	return sl, ok
}

// Text devuelve el texto de un slot o "" si no existe.
func (s *Slots) Text(id SlotID) string {
	if sl, ok := s.m[id]; ok {
		return sl.Text()
	}
	return ""
}

// IDs en orden estable.
func (s *Slots) IDs() []SlotID {
	ids := make([]SlotID, 0, len(s.m))
	for id := range s.m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Texts: snapshot id -> texto, cómodo para comparar en tests.
func (s *Slots) Texts() map[SlotID]string {
	out := make(map[SlotID]string, len(s.m))
	for id, sl := range s.m {
		out[id] = sl.Text()
	}
	return out
}
