package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrency devise des montants du tableur (réais)
const DefaultCurrency = "BRL"

// Money représente une valeur monétaire avec garanties d'invariants.
// Un montant négatif est admis: un remboursement se saisit comme un achat négatif.
type Money struct {
	amount   float64
	currency string
}

// NewMoney crée une nouvelle instance de Money avec validation
func NewMoney(amount float64, currency string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errors.New("amount must be a finite number")
	}
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// ParseMoney lit un montant depuis une cellule; une cellule vide vaut zéro
func ParseMoney(raw string) (Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewMoney(0, DefaultCurrency)
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", raw)
	}
	return NewMoney(amount, DefaultCurrency)
}

// Amount retourne le montant
func (m Money) Amount() float64 {
	return m.amount
}

// Currency retourne la devise
func (m Money) Currency() string {
	return m.currency
}
