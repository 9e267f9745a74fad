package infrastructure

import (
	"context"
	"fmt"

	"pethotel/internal/hotel/domain"
	shareddomain "pethotel/internal/shared/domain"
)

// SnapshotQueryRepository convertit les tables brutes d'une source en entités
type SnapshotQueryRepository struct {
	source Source
}

// NewSnapshotQueryRepository crée un nouveau repository de snapshot
func NewSnapshotQueryRepository(source Source) *SnapshotQueryRepository {
	return &SnapshotQueryRepository{source: source}
}

// Describe retourne la description de la source sous-jacente
func (r *SnapshotQueryRepository) Describe() string {
	return r.source.Describe()
}

// LoadSnapshot relit les cinq tables; rien n'est conservé d'un appel à l'autre
func (r *SnapshotQueryRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	tables, err := r.source.Load(ctx, domain.TableNames()...)
	if err != nil {
		return nil, err
	}

	for _, name := range domain.TableNames() {
		if tables[name] == nil {
			return nil, fmt.Errorf("table %q not loaded", name)
		}
	}

	snapshot := &domain.Snapshot{}

	if snapshot.Pets, err = mapPets(tables[domain.TablePet]); err != nil {
		return nil, err
	}
	if snapshot.Stays, err = mapStays(tables[domain.TableStay]); err != nil {
		return nil, err
	}
	if snapshot.Products, err = mapProducts(tables[domain.TableProduct]); err != nil {
		return nil, err
	}
	if snapshot.Purchases, err = mapPurchases(tables[domain.TablePurchase]); err != nil {
		return nil, err
	}
	if snapshot.PaymentMethodTypes, err = mapPaymentMethodTypes(tables[domain.TablePaymentMethodType]); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// columns résout plusieurs colonnes d'un coup
func columns(t *Table, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}

// rowError situe une cellule invalide (ligne 1 = en-tête)
func rowError(t *Table, rowIdx int, err error) error {
	return fmt.Errorf("table %q row %d: %w", t.Name, rowIdx+2, err)
}

func mapPets(t *Table) ([]*domain.Pet, error) {
	cols, err := columns(t, "pet_id", "name")
	if err != nil {
		return nil, err
	}

	pets := make([]*domain.Pet, 0, len(t.Rows))
	for _, row := range t.Rows {
		pets = append(pets, domain.NewPet(domain.NewKey(Value(row, cols[0])), Value(row, cols[1])))
	}
	return pets, nil
}

func mapStays(t *Table) ([]*domain.Stay, error) {
	cols, err := columns(t, "pet_id", "stay_cost")
	if err != nil {
		return nil, err
	}

	stays := make([]*domain.Stay, 0, len(t.Rows))
	for i, row := range t.Rows {
		cost, err := shareddomain.ParseMoney(Value(row, cols[1]))
		if err != nil {
			return nil, rowError(t, i, err)
		}
		stay, err := domain.NewStay(domain.NewKey(Value(row, cols[0])), cost)
		if err != nil {
			return nil, rowError(t, i, err)
		}
		stays = append(stays, stay)
	}
	return stays, nil
}

func mapProducts(t *Table) ([]*domain.Product, error) {
	cols, err := columns(t, "product_id", "name")
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(t.Rows))
	for _, row := range t.Rows {
		products = append(products, domain.NewProduct(domain.NewKey(Value(row, cols[0])), Value(row, cols[1])))
	}
	return products, nil
}

func mapPurchases(t *Table) ([]*domain.Purchase, error) {
	cols, err := columns(t, "product_id", "quantity", "total_value", "payment_method")
	if err != nil {
		return nil, err
	}

	purchases := make([]*domain.Purchase, 0, len(t.Rows))
	for i, row := range t.Rows {
		quantity, err := shareddomain.ParseQuantity(Value(row, cols[1]))
		if err != nil {
			return nil, rowError(t, i, err)
		}
		total, err := shareddomain.ParseMoney(Value(row, cols[2]))
		if err != nil {
			return nil, rowError(t, i, err)
		}
		purchase, err := domain.NewPurchase(
			domain.NewKey(Value(row, cols[0])),
			domain.NewKey(Value(row, cols[3])),
			quantity,
			total,
		)
		if err != nil {
			return nil, rowError(t, i, err)
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func mapPaymentMethodTypes(t *Table) ([]*domain.PaymentMethodType, error) {
	labelColumn := "nome"
	if !t.HasColumn(labelColumn) && t.HasColumn("name") {
		labelColumn = "name"
	}

	cols, err := columns(t, "payment_method_type_id", labelColumn)
	if err != nil {
		return nil, err
	}

	types := make([]*domain.PaymentMethodType, 0, len(t.Rows))
	for _, row := range t.Rows {
		types = append(types, domain.NewPaymentMethodType(domain.NewKey(Value(row, cols[0])), Value(row, cols[1])))
	}
	return types, nil
}
