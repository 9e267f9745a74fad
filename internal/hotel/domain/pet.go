package domain

import (
	"errors"

	"pethotel/internal/shared/domain"
)

// Pet représente un animal hébergé
type Pet struct {
	id   Key
	name string
}

// NewPet crée une nouvelle instance de Pet
func NewPet(id Key, name string) *Pet {
	return &Pet{id: id, name: name}
}

// ID retourne l'identifiant du pet
func (p *Pet) ID() Key {
	return p.id
}

// Name retourne le nom du pet, vide si la cellule l'était
func (p *Pet) Name() string {
	return p.name
}

// Stay représente un séjour facturé d'un pet
type Stay struct {
	petID Key
	cost  domain.Money
}

// NewStay crée une nouvelle instance de Stay
func NewStay(petID Key, cost domain.Money) (*Stay, error) {
	if cost.Currency() == "" {
		return nil, errors.New("stay cost must carry a currency")
	}
	return &Stay{petID: petID, cost: cost}, nil
}

// PetID retourne l'identifiant du pet hébergé
func (s *Stay) PetID() Key {
	return s.petID
}

// Cost retourne le coût du séjour
func (s *Stay) Cost() domain.Money {
	return s.cost
}
