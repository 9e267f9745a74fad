package domain

// Noms des tables (feuilles du classeur, fichiers CSV ou tables SQL)
const (
	TablePet               = "pet"
	TableStay              = "stay"
	TableProduct           = "product"
	TablePurchase          = "purchase"
	TablePaymentMethodType = "payment_method_type"
)

// TableNames retourne les cinq tables dans l'ordre de chargement
func TableNames() []string {
	return []string{TablePet, TableStay, TableProduct, TablePurchase, TablePaymentMethodType}
}

// Snapshot état des cinq tables lu en une fois, en lecture seule
type Snapshot struct {
	Pets               []*Pet
	Stays              []*Stay
	Products           []*Product
	Purchases          []*Purchase
	PaymentMethodTypes []*PaymentMethodType
}
