package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	analyticsdomain "pethotel/internal/analytics/domain"
)

// Normalize forme canonique d'une question: minuscules Unicode, espaces de bord retirés.
// Les espaces internes ne sont pas touchés.
func Normalize(raw string) string {
	// un Caser n'est pas sûr en concurrence, on en crée un par appel
	return strings.TrimSpace(cases.Lower(language.Und).String(raw))
}

// KnownQuestion question reconnue et sa réponse préparée
type KnownQuestion struct {
	canonical string
	display   string
	queryText string
	restated  string
	queryType analyticsdomain.QueryType
}

// NewKnownQuestion crée une question connue; la forme canonique est dérivée du texte affiché
func NewKnownQuestion(display, queryText, restated string, queryType analyticsdomain.QueryType) KnownQuestion {
	return KnownQuestion{
		canonical: Normalize(display),
		display:   display,
		queryText: queryText,
		restated:  restated,
		queryType: queryType,
	}
}

// Canonical retourne la clé de recherche
func (q KnownQuestion) Canonical() string {
	return q.canonical
}

// Display retourne le texte présenté aux utilisateurs
func (q KnownQuestion) Display() string {
	return q.display
}

// QueryText retourne la requête SQL d'exemple
func (q KnownQuestion) QueryText() string {
	return q.queryText
}

// Restated retourne la reformulation de la question
func (q KnownQuestion) Restated() string {
	return q.restated
}

// QueryType retourne l'agrégation équivalente
func (q KnownQuestion) QueryType() analyticsdomain.QueryType {
	return q.queryType
}

// DefaultCatalog retourne les trois questions reconnues, dans l'ordre d'affichage
func DefaultCatalog() []KnownQuestion {
	return []KnownQuestion{
		NewKnownQuestion(
			"Qual o total de vendas de produtos por tipo de pagamento?",
			"SELECT pmt.nome AS tipo_pagamento, SUM(p.total_value) AS total_vendas FROM purchase AS p JOIN payment_method_type AS pmt ON p.payment_method = pmt.payment_method_type_id GROUP BY pmt.nome ORDER BY total_vendas DESC;",
			"Qual o total de vendas de produtos agrupado por tipo de pagamento?",
			analyticsdomain.QuerySalesByPayment,
		),
		NewKnownQuestion(
			"Quais os produtos mais vendidos em termos de quantidade?",
			"SELECT prod.name AS nome_produto, SUM(p.quantity) AS quantidade_vendida FROM purchase AS p JOIN product AS prod ON p.product_id = prod.product_id GROUP BY prod.name ORDER BY quantidade_vendida DESC;",
			"Quais produtos tiveram a maior quantidade vendida?",
			analyticsdomain.QueryTopProductsByQuantity,
		),
		NewKnownQuestion(
			"Qual o custo total das estadias por pet?",
			"SELECT pet.name AS nome_pet, SUM(s.stay_cost) AS custo_total_estadia FROM stay AS s JOIN pet ON s.pet_id = pet.pet_id GROUP BY pet.name ORDER BY custo_total_estadia DESC;",
			"Qual o custo acumulado das estadias para cada pet?",
			analyticsdomain.QueryStayCostByPet,
		),
	}
}
