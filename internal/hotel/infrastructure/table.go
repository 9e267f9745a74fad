package infrastructure

import (
	"context"
	"fmt"
	"strings"
)

// Source fournit les tables brutes (en-tête + lignes de cellules texte)
type Source interface {
	// Load lit les tables demandées; une source injoignable retourne ErrSourceNotFound
	Load(ctx context.Context, names ...string) (map[string]*Table, error)
	Describe() string
}

// Table table brute: la première ligne de la feuille donne les colonnes
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable crée une table; les noms de colonnes sont nettoyés des espaces
func NewTable(name string, header []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]string, len(header)),
		Rows:    rows,
		index:   make(map[string]int, len(header)),
	}
	for i, col := range header {
		col = strings.TrimSpace(col)
		t.Columns[i] = col
		// première occurrence gagne
		if _, exists := t.index[col]; !exists && col != "" {
			t.index[col] = i
		}
	}
	return t
}

// HasColumn vérifie la présence d'une colonne
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column retourne la position d'une colonne
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("column %q not found in table %q", name, t.Name)
	}
	return i, nil
}

// Value lit une cellule; les lignes courtes (cellules finales vides) donnent ""
func Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
