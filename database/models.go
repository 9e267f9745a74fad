package database

import (
	"strconv"

	hoteldomain "pethotel/internal/hotel/domain"
	hotelinfra "pethotel/internal/hotel/infrastructure"
)

// ============================================================================
// MODÈLES DE DONNÉES - une structure par table du classeur
// ============================================================================

// Pet - Animal hébergé
type Pet struct {
	ID      int    `json:"pet_id"`
	Name    string `json:"name"`
	Species string `json:"species,omitempty"`
}

// Stay - Séjour facturé
type Stay struct {
	ID     int     `json:"stay_id"`
	PetID  int     `json:"pet_id"`
	Nights int     `json:"nights"`
	Cost   float64 `json:"stay_cost"`
}

// Product - Produit de la boutique
type Product struct {
	ID    int     `json:"product_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PaymentMethodType - Moyen de paiement
type PaymentMethodType struct {
	ID   int    `json:"payment_method_type_id"`
	Nome string `json:"nome"`
}

// Purchase - Achat d'un produit
type Purchase struct {
	ID            int     `json:"purchase_id"`
	ProductID     int     `json:"product_id"`
	Quantity      int     `json:"quantity"`
	TotalValue    float64 `json:"total_value"`
	PaymentMethod int     `json:"payment_method"`
}

// Dataset contenu complet des cinq tables
type Dataset struct {
	Pets               []Pet
	Stays              []Stay
	Products           []Product
	PaymentMethodTypes []PaymentMethodType
	Purchases          []Purchase
}

// Tables convertit le jeu de données en tables brutes (classeur, CSV)
func (d *Dataset) Tables() []*hotelinfra.Table {
	itoa := strconv.Itoa
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

	pets := make([][]string, 0, len(d.Pets))
	for _, p := range d.Pets {
		pets = append(pets, []string{itoa(p.ID), p.Name, p.Species})
	}
	stays := make([][]string, 0, len(d.Stays))
	for _, s := range d.Stays {
		stays = append(stays, []string{itoa(s.ID), itoa(s.PetID), itoa(s.Nights), ftoa(s.Cost)})
	}
	products := make([][]string, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, []string{itoa(p.ID), p.Name, ftoa(p.Price)})
	}
	types := make([][]string, 0, len(d.PaymentMethodTypes))
	for _, t := range d.PaymentMethodTypes {
		types = append(types, []string{itoa(t.ID), t.Nome})
	}
	purchases := make([][]string, 0, len(d.Purchases))
	for _, p := range d.Purchases {
		purchases = append(purchases, []string{
			itoa(p.ID), itoa(p.ProductID), itoa(p.Quantity), ftoa(p.TotalValue), itoa(p.PaymentMethod),
		})
	}

	return []*hotelinfra.Table{
		hotelinfra.NewTable(hoteldomain.TablePet, []string{"pet_id", "name", "species"}, pets),
		hotelinfra.NewTable(hoteldomain.TableStay, []string{"stay_id", "pet_id", "nights", "stay_cost"}, stays),
		hotelinfra.NewTable(hoteldomain.TableProduct, []string{"product_id", "name", "price"}, products),
		hotelinfra.NewTable(hoteldomain.TablePurchase, []string{"purchase_id", "product_id", "quantity", "total_value", "payment_method"}, purchases),
		hotelinfra.NewTable(hoteldomain.TablePaymentMethodType, []string{"payment_method_type_id", "nome"}, types),
	}
}
