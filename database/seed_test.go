package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDataset_Deterministic(t *testing.T) {
	opts := SeedOptions{Seed: 7, Pets: 5, Stays: 12, Purchases: 20}

	first := GenerateDataset(opts)
	second := GenerateDataset(opts)

	assert.Equal(t, first, second)
	assert.Len(t, first.Pets, 5)
	assert.Len(t, first.Stays, 12)
	assert.Len(t, first.Purchases, 20)
	assert.Len(t, first.PaymentMethodTypes, len(paymentMethods))

	for _, s := range first.Stays {
		assert.GreaterOrEqual(t, s.PetID, 1)
		assert.LessOrEqual(t, s.PetID, 5)
		assert.Greater(t, s.Cost, 0.0)
	}
	for _, p := range first.Purchases {
		assert.GreaterOrEqual(t, p.Quantity, 1)
		assert.GreaterOrEqual(t, p.PaymentMethod, 1)
	}
}

func TestDatasetTables(t *testing.T) {
	ds := &Dataset{
		Pets:               []Pet{{ID: 1, Name: "Rex", Species: "cachorro"}},
		Stays:              []Stay{{ID: 1, PetID: 1, Nights: 2, Cost: 180.5}},
		Products:           []Product{{ID: 3, Name: "Cama Pet", Price: 99}},
		PaymentMethodTypes: []PaymentMethodType{{ID: 1, Nome: "Pix"}},
		Purchases:          []Purchase{{ID: 1, ProductID: 3, Quantity: 2, TotalValue: 198, PaymentMethod: 1}},
	}

	tables := ds.Tables()
	require.Len(t, tables, 5)

	byName := make(map[string][][]string)
	for _, tbl := range tables {
		byName[tbl.Name] = tbl.Rows
	}
	assert.Equal(t, [][]string{{"1", "Rex", "cachorro"}}, byName["pet"])
	assert.Equal(t, [][]string{{"1", "1", "2", "180.5"}}, byName["stay"])
	assert.Equal(t, [][]string{{"1", "3", "2", "198", "1"}}, byName["purchase"])
	assert.Equal(t, [][]string{{"1", "Pix"}}, byName["payment_method_type"])
}

func TestSeedDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := &Dataset{
		Pets:               []Pet{{ID: 1, Name: "Rex"}},
		PaymentMethodTypes: []PaymentMethodType{{ID: 1, Nome: "Pix"}},
	}

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payment_method_type").
		WithArgs(1, "Pix").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pet").
		WithArgs(1, "Rex", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, SeedDatabase(context.Background(), db, ds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDatabase_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := &Dataset{Pets: []Pet{{ID: 1, Name: "Rex"}}}

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pet").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = SeedDatabase(context.Background(), db, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
