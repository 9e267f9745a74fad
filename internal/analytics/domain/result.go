package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Group total agrégé pour un libellé
type Group struct {
	Label string
	Total float64
}

// Result résultat d'une agrégation: groupes triés, ou descripteur d'erreur
type Result struct {
	groups []Group
	errMsg string
}

// NewResult trie les groupes par total décroissant, puis par libellé croissant
func NewResult(groups []Group) Result {
	sorted := append([]Group{}, groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].Label < sorted[j].Label
	})
	return Result{groups: sorted}
}

// ErrorResult crée un descripteur d'erreur
func ErrorResult(message string) Result {
	return Result{errMsg: message}
}

// Groups retourne une copie des groupes triés
func (r Result) Groups() []Group {
	return append([]Group{}, r.groups...)
}

// Err retourne le message d'erreur, vide en cas de succès
func (r Result) Err() string {
	return r.errMsg
}

// IsError vérifie si le résultat est un descripteur d'erreur
func (r Result) IsError() bool {
	return r.errMsg != ""
}

// MarshalJSON écrit un objet dont les clés suivent l'ordre des groupes,
// ou {"error": "..."}
func (r Result) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(map[string]string{"error": r.errMsg})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range r.groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(g.Total)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
