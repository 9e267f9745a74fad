package domain

// QueryType identifiant d'une agrégation prédéfinie
type QueryType string

const (
	QuerySalesByPayment        QueryType = "sales_by_payment"
	QueryTopProductsByQuantity QueryType = "top_products_by_quantity"
	QueryStayCostByPet         QueryType = "stay_cost_by_pet"
)

// identifiants historiques acceptés par l'API
var legacyAliases = map[string]QueryType{
	"vendas_por_pagamento":   QuerySalesByPayment,
	"produtos_mais_vendidos": QueryTopProductsByQuantity,
	"estadias_por_pet":       QueryStayCostByPet,
}

// QueryTypes retourne les trois types dans l'ordre d'affichage
func QueryTypes() []QueryType {
	return []QueryType{QuerySalesByPayment, QueryTopProductsByQuantity, QueryStayCostByPet}
}

// QueryTypeNames retourne les identifiants sous forme de chaînes
func QueryTypeNames() []string {
	types := QueryTypes()
	out := make([]string, len(types))
	for i, qt := range types {
		out[i] = string(qt)
	}
	return out
}

// ParseQueryType résout un identifiant (comparaison exacte) ou un alias historique
func ParseQueryType(raw string) (QueryType, bool) {
	for _, qt := range QueryTypes() {
		if raw == string(qt) {
			return qt, true
		}
	}
	qt, ok := legacyAliases[raw]
	return qt, ok
}
