package application

import (
	"pethotel/internal/analytics/domain"
	hoteldomain "pethotel/internal/hotel/domain"
)

// ============================================================================
// RECETTES D'AGRÉGATION
//
// Chaque recette suit la même forme: jointure gauche sur une clé canonique,
// les lignes sans correspondance ou avec un libellé vide sont écartées,
// puis somme par libellé. Une clé dupliquée à droite multiplie la ligne de
// gauche comme le ferait une jointure relationnelle.
// ============================================================================

// accumulator somme par libellé en gardant l'ordre de première apparition
type accumulator struct {
	index  map[string]int
	groups []domain.Group
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (a *accumulator) add(label string, value float64) {
	if label == "" {
		return
	}
	if i, ok := a.index[label]; ok {
		a.groups[i].Total += value
		return
	}
	a.index[label] = len(a.groups)
	a.groups = append(a.groups, domain.Group{Label: label, Total: value})
}

func (a *accumulator) result() []domain.Group {
	return a.groups
}

// SalesByPayment purchase ⟕ payment_method_type, somme de total_value par moyen de paiement
func SalesByPayment(s *hoteldomain.Snapshot) []domain.Group {
	labels := make(map[hoteldomain.Key][]string)
	for _, pmt := range s.PaymentMethodTypes {
		if pmt.ID().IsZero() {
			continue
		}
		labels[pmt.ID()] = append(labels[pmt.ID()], pmt.Name())
	}

	acc := newAccumulator()
	for _, p := range s.Purchases {
		for _, label := range labels[p.PaymentMethod()] {
			acc.add(label, p.TotalValue().Amount())
		}
	}
	return acc.result()
}

// TopProductsByQuantity purchase ⟕ product, somme des quantités par produit
func TopProductsByQuantity(s *hoteldomain.Snapshot) []domain.Group {
	labels := make(map[hoteldomain.Key][]string)
	for _, product := range s.Products {
		if product.ID().IsZero() {
			continue
		}
		labels[product.ID()] = append(labels[product.ID()], product.Name())
	}

	acc := newAccumulator()
	for _, p := range s.Purchases {
		for _, label := range labels[p.ProductID()] {
			acc.add(label, p.Quantity().Value())
		}
	}
	return acc.result()
}

// StayCostByPet stay ⟕ pet, somme de stay_cost par nom de pet
func StayCostByPet(s *hoteldomain.Snapshot) []domain.Group {
	labels := make(map[hoteldomain.Key][]string)
	for _, pet := range s.Pets {
		if pet.ID().IsZero() {
			continue
		}
		labels[pet.ID()] = append(labels[pet.ID()], pet.Name())
	}

	acc := newAccumulator()
	for _, stay := range s.Stays {
		for _, label := range labels[stay.PetID()] {
			acc.add(label, stay.Cost().Amount())
		}
	}
	return acc.result()
}
