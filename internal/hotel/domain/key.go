package domain

import (
	"math"
	"strconv"
	"strings"
)

// Key clé de jointure canonique.
// Un tableur peut rendre le même identifiant sous la forme "1", "1.0" ou " 1 ";
// toutes ces formes donnent la même clé.
type Key string

// NewKey construit la forme canonique d'une valeur de cellule
func NewKey(raw string) Key {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return Key(strconv.FormatInt(int64(f), 10))
		}
		return Key(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return Key(raw)
}

// IsZero une clé vide ne joint jamais
func (k Key) IsZero() bool {
	return k == ""
}
