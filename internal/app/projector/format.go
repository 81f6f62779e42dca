package projector

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jose-valero/match-infographic/internal/domain"
)

// Placeholder de valor faltante.
const dash = "-"

// Layouts aceptados como fecha de entrada, en orden.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Formato corto tipo en-GB: "Mon, 15 Dec 2025".
const shortDate = "Mon, 2 Jan 2006"

// FormatDate: TBD/vacío => "TBD"; lo que no parsea vuelve tal cual.
func FormatDate(s string) string {
	if s == "" || s == domain.MatchDateTBD {
		return domain.MatchDateTBD
	}
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(shortDate)
		}
	}
	return s
}

// round como Math.round: .5 sube hacia +inf.
func round(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}

func fixed2(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// optFixed2: precio con 2 decimales o "-".
func optFixed2(f domain.Float) string {
	if !f.Valid {
		return dash
	}
	return fixed2(f.V)
}

func itoa(n int) string { return strconv.Itoa(n) }

func orString(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

// Numbers formatea enteros con separador de miles según locale.
type Numbers struct {
	p *message.Printer
}

func NewNumbers(tag language.Tag) Numbers {
	return Numbers{p: message.NewPrinter(tag)}
}

func (n Numbers) Int(v int64) string {
	if n.p == nil {
		n.p = message.NewPrinter(language.English)
	}
	return n.p.Sprintf("%d", v)
}

// firstRune para las iniciales del escudo.
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// errOr: el error del tool tal cual, o def si no hay.
func errOr(t *domain.ToolResult, def string) string {
	if e := t.ErrorText(); e != "" {
		return e
	}
	return def
}
