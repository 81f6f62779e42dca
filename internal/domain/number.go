package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int es un entero opcional del payload de un tool. Acepta 18, 18.0 y "18";
// null o cualquier otro valor lo deja inválido sin romper el resto del
// decode. V es 0 cuando !Valid.
type Int struct {
	V     int64
	Valid bool
}

func IntOf(v int64) Int { return Int{V: v, Valid: true} }

func (n *Int) UnmarshalJSON(b []byte) error {
	*n = Int{}
	raw, ok := numberText(b)
	if !ok {
		return nil
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = IntOf(v)
		return nil
	}
	f, ok := parseFinite(raw)
	if !ok || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return nil
	}
	*n = IntOf(int64(f))
	return nil
}

func (n Int) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, n.V, 10), nil
}

// Float es el equivalente para decimales (cuotas, clima).
type Float struct {
	V     float64
	Valid bool
}

func FloatOf(v float64) Float { return Float{V: v, Valid: true} }

func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float{}
	raw, ok := numberText(b)
	if !ok {
		return nil
	}
	if v, ok := parseFinite(raw); ok {
		*f = FloatOf(v)
	}
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f.V, 'f', -1, 64), nil
}

// numberText: el literal numérico, desempaquetando strings "55097".
func numberText(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return "", false
	}
	switch c := b[0]; {
	case c == '"':
		var s string
		if json.Unmarshal(b, &s) != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	case c == '-' || (c >= '0' && c <= '9'):
		return string(b), true
	default:
		return "", false
	}
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
