package domain

import (
	"errors"

	"pethotel/internal/shared/domain"
)

// Product représente un produit vendu par l'hôtel
type Product struct {
	id   Key
	name string
}

// NewProduct crée une nouvelle instance de Product
func NewProduct(id Key, name string) *Product {
	return &Product{id: id, name: name}
}

// ID retourne l'identifiant du produit
func (p *Product) ID() Key {
	return p.id
}

// Name retourne le nom du produit
func (p *Product) Name() string {
	return p.name
}

// PaymentMethodType représente un moyen de paiement (Pix, carte, ...)
type PaymentMethodType struct {
	id   Key
	name string
}

// NewPaymentMethodType crée une nouvelle instance de PaymentMethodType
func NewPaymentMethodType(id Key, name string) *PaymentMethodType {
	return &PaymentMethodType{id: id, name: name}
}

// ID retourne l'identifiant du moyen de paiement
func (pmt *PaymentMethodType) ID() Key {
	return pmt.id
}

// Name retourne le libellé du moyen de paiement
func (pmt *PaymentMethodType) Name() string {
	return pmt.name
}

// Purchase représente une ligne d'achat
type Purchase struct {
	productID     Key
	paymentMethod Key
	quantity      domain.Quantity
	totalValue    domain.Money
}

// NewPurchase crée une nouvelle instance de Purchase
func NewPurchase(
	productID Key,
	paymentMethod Key,
	quantity domain.Quantity,
	totalValue domain.Money,
) (*Purchase, error) {
	if totalValue.Currency() == "" {
		return nil, errors.New("purchase total must carry a currency")
	}
	return &Purchase{
		productID:     productID,
		paymentMethod: paymentMethod,
		quantity:      quantity,
		totalValue:    totalValue,
	}, nil
}

// ProductID retourne l'identifiant du produit acheté
func (p *Purchase) ProductID() Key {
	return p.productID
}

// PaymentMethod retourne l'identifiant du moyen de paiement
func (p *Purchase) PaymentMethod() Key {
	return p.paymentMethod
}

// Quantity retourne la quantité achetée
func (p *Purchase) Quantity() domain.Quantity {
	return p.quantity
}

// TotalValue retourne le montant de l'achat
func (p *Purchase) TotalValue() domain.Money {
	return p.totalValue
}
