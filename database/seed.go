package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
)

// SeedOptions volume du jeu de données généré
type SeedOptions struct {
	Seed      int64
	Pets      int
	Stays     int
	Purchases int
}

// DefaultSeedOptions volume proche du classeur de démonstration
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{Seed: 42, Pets: 30, Stays: 120, Purchases: 400}
}

var (
	petNames = []string{
		"Rex", "Mia", "Thor", "Luna", "Bob", "Nina", "Max", "Mel",
		"Fred", "Belinha", "Toby", "Pipoca", "Zeus", "Amora", "Simba",
	}
	species      = []string{"cachorro", "gato", "coelho", "pássaro"}
	productNames = []string{
		"Ração Premium", "Shampoo Neutro", "Brinquedo Mordedor", "Coleira Ajustável",
		"Areia Higiênica", "Petisco Natural", "Cama Pet", "Escova de Pelos",
	}
	paymentMethods = []string{"Pix", "Cartão de crédito", "Cartão de débito", "Dinheiro"}
)

// GenerateDataset produit un jeu de données déterministe pour une graine donnée
func GenerateDataset(opts SeedOptions) *Dataset {
	rng := rand.New(rand.NewSource(opts.Seed))
	ds := &Dataset{}

	for i, name := range paymentMethods {
		ds.PaymentMethodTypes = append(ds.PaymentMethodTypes, PaymentMethodType{ID: i + 1, Nome: name})
	}

	for i, name := range productNames {
		price := round2(10.0 + rng.Float64()*190.0)
		ds.Products = append(ds.Products, Product{ID: i + 1, Name: name, Price: price})
	}

	for i := 0; i < opts.Pets; i++ {
		name := petNames[i%len(petNames)]
		if i >= len(petNames) {
			name = fmt.Sprintf("%s %d", name, i/len(petNames)+1)
		}
		ds.Pets = append(ds.Pets, Pet{ID: i + 1, Name: name, Species: species[rng.Intn(len(species))]})
	}

	for i := 0; i < opts.Stays && opts.Pets > 0; i++ {
		nights := 1 + rng.Intn(14)
		ds.Stays = append(ds.Stays, Stay{
			ID:     i + 1,
			PetID:  1 + rng.Intn(opts.Pets),
			Nights: nights,
			Cost:   round2(float64(nights) * (80.0 + rng.Float64()*70.0)),
		})
	}

	for i := 0; i < opts.Purchases; i++ {
		product := ds.Products[rng.Intn(len(ds.Products))]
		quantity := 1 + rng.Intn(5)
		ds.Purchases = append(ds.Purchases, Purchase{
			ID:            i + 1,
			ProductID:     product.ID,
			Quantity:      quantity,
			TotalValue:    round2(product.Price * float64(quantity)),
			PaymentMethod: 1 + rng.Intn(len(paymentMethods)),
		})
	}

	return ds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SeedDatabase crée le schéma puis insère le jeu de données dans une transaction
func SeedDatabase(ctx context.Context, db *sql.DB, ds *Dataset) error {
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range ds.PaymentMethodTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO payment_method_type (payment_method_type_id, nome) VALUES ($1, $2)`,
			p.ID, p.Nome,
		); err != nil {
			return fmt.Errorf("failed to insert payment method type %d: %w", p.ID, err)
		}
	}

	for _, p := range ds.Products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product (product_id, name, price) VALUES ($1, $2, $3)`,
			p.ID, p.Name, p.Price,
		); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	for _, p := range ds.Pets {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pet (pet_id, name, species) VALUES ($1, $2, $3)`,
			p.ID, p.Name, p.Species,
		); err != nil {
			return fmt.Errorf("failed to insert pet %d: %w", p.ID, err)
		}
	}

	for _, s := range ds.Stays {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stay (stay_id, pet_id, nights, stay_cost) VALUES ($1, $2, $3, $4)`,
			s.ID, s.PetID, s.Nights, s.Cost,
		); err != nil {
			return fmt.Errorf("failed to insert stay %d: %w", s.ID, err)
		}
	}

	for _, p := range ds.Purchases {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO purchase (purchase_id, product_id, quantity, total_value, payment_method) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.ProductID, p.Quantity, p.TotalValue, p.PaymentMethod,
		); err != nil {
			return fmt.Errorf("failed to insert purchase %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
