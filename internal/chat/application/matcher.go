package application

import (
	"pethotel/internal/chat/domain"
)

// Matcher associe une question libre à une question connue par égalité exacte
// après normalisation. Immuable après construction, utilisable en concurrence.
type Matcher struct {
	catalog []domain.KnownQuestion
	byText  map[string]domain.KnownQuestion
}

// NewMatcher construit l'index du catalogue
func NewMatcher(catalog []domain.KnownQuestion) *Matcher {
	m := &Matcher{
		catalog: append([]domain.KnownQuestion{}, catalog...),
		byText:  make(map[string]domain.KnownQuestion, len(catalog)),
	}
	for _, q := range catalog {
		m.byText[q.Canonical()] = q
	}
	return m
}

// Match retourne la réponse préparée; original_question garde la saisie brute
func (m *Matcher) Match(raw string) domain.MatchResult {
	q, ok := m.byText[domain.Normalize(raw)]
	if !ok {
		return domain.NotMatched(raw)
	}
	return domain.Matched(raw, q)
}

// Lookup retourne la question connue correspondant à la saisie
func (m *Matcher) Lookup(raw string) (domain.KnownQuestion, bool) {
	q, ok := m.byText[domain.Normalize(raw)]
	return q, ok
}

// Questions retourne les textes affichables dans l'ordre du catalogue
func (m *Matcher) Questions() []string {
	out := make([]string, len(m.catalog))
	for i, q := range m.catalog {
		out[i] = q.Display()
	}
	return out
}

// QueryTypes retourne les types d'agrégation dans l'ordre du catalogue
func (m *Matcher) QueryTypes() []string {
	out := make([]string, len(m.catalog))
	for i, q := range m.catalog {
		out[i] = string(q.QueryType())
	}
	return out
}
