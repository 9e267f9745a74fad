package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity représente une quantité lue dans le tableur.
// Les valeurs fractionnaires ou négatives (retours) sont sommées telles quelles.
type Quantity struct {
	value float64
}

// NewQuantity crée une nouvelle instance de Quantity avec validation
func NewQuantity(value float64) (Quantity, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Quantity{}, errors.New("quantity must be a finite number")
	}
	return Quantity{value: value}, nil
}

// ParseQuantity lit une quantité depuis une cellule; une cellule vide vaut zéro
func ParseQuantity(raw string) (Quantity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Quantity{}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q", raw)
	}
	return NewQuantity(f)
}

// Value retourne la valeur
func (q Quantity) Value() float64 {
	return q.value
}
