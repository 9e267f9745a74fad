package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel/internal/analytics/application"
	"pethotel/internal/analytics/domain"
	hoteldomain "pethotel/internal/hotel/domain"
	hotelinfra "pethotel/internal/hotel/infrastructure"
	apperrors "pethotel/internal/shared/errors"
	"pethotel/internal/shared/logger"
	"pethotel/internal/testhelpers"
)

type stubLoader struct {
	snapshot *hoteldomain.Snapshot
	err      error
	calls    int
	panicMsg string
}

func (s *stubLoader) LoadSnapshot(context.Context) (*hoteldomain.Snapshot, error) {
	s.calls++
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.snapshot, s.err
}

func newWorkbookExecutor(t *testing.T) *application.Executor {
	t.Helper()
	src := hotelinfra.NewXLSXSource(testhelpers.WriteFixtureWorkbook(t))
	return application.NewExecutor(hotelinfra.NewSnapshotQueryRepository(src), logger.NewTestLogger(t))
}

func TestExecutor_SalesByPayment(t *testing.T) {
	exec := newWorkbookExecutor(t)

	result := exec.Execute(context.Background(), "sales_by_payment")

	require.False(t, result.IsError(), result.Err())
	assert.Equal(t, []domain.Group{
		{Label: "Pix", Total: 280},
		{Label: "Cartão de crédito", Total: 125.5},
		{Label: "Dinheiro", Total: 106.5},
	}, result.Groups())
}

func TestExecutor_TopProductsByQuantity(t *testing.T) {
	exec := newWorkbookExecutor(t)

	result := exec.Execute(context.Background(), "top_products_by_quantity")

	require.False(t, result.IsError(), result.Err())
	assert.Equal(t, []domain.Group{
		{Label: "Brinquedo Mordedor", Total: 6},
		{Label: "Shampoo Neutro", Total: 4},
		{Label: "Ração Premium", Total: 3},
	}, result.Groups())

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, `{"Brinquedo Mordedor":6,"Shampoo Neutro":4,"Ração Premium":3}`, string(data))
}

func TestExecutor_StayCostByPet_TieBreak(t *testing.T) {
	exec := newWorkbookExecutor(t)

	result := exec.Execute(context.Background(), "stay_cost_by_pet")

	require.False(t, result.IsError(), result.Err())
	assert.Equal(t, []domain.Group{
		{Label: "Rex", Total: 500},
		{Label: "Thor", Total: 500},
		{Label: "Mia", Total: 150},
	}, result.Groups())
}

func TestExecutor_LegacyAliases(t *testing.T) {
	exec := newWorkbookExecutor(t)

	for alias, canonical := range map[string]string{
		"vendas_por_pagamento":   "sales_by_payment",
		"produtos_mais_vendidos": "top_products_by_quantity",
		"estadias_por_pet":       "stay_cost_by_pet",
	} {
		assert.Equal(t,
			exec.Execute(context.Background(), canonical).Groups(),
			exec.Execute(context.Background(), alias).Groups(),
			"alias %s", alias,
		)
	}
}

func TestExecutor_UnknownQueryTypeDoesNotTouchSource(t *testing.T) {
	loader := &stubLoader{}
	exec := application.NewExecutor(loader, logger.NewNoOpLogger())

	result := exec.Execute(context.Background(), "drop_tables")

	assert.True(t, result.IsError())
	assert.Equal(t, "unrecognized query type", result.Err())
	assert.Zero(t, loader.calls)
}

func TestExecutor_SourceNotFound(t *testing.T) {
	src := hotelinfra.NewXLSXSource(filepath.Join(t.TempDir(), "missing.xlsx"))
	exec := application.NewExecutor(hotelinfra.NewSnapshotQueryRepository(src), logger.NewNoOpLogger())

	for _, qt := range domain.QueryTypeNames() {
		result := exec.Execute(context.Background(), qt)
		assert.Equal(t, "data source not found", result.Err(), qt)
	}
}

func TestExecutor_ExecutionError(t *testing.T) {
	loader := &stubLoader{err: errors.New(`column "stay_cost" not found in table "stay"`)}
	exec := application.NewExecutor(loader, logger.NewNoOpLogger())

	result := exec.Execute(context.Background(), "stay_cost_by_pet")

	assert.Equal(t, `error executing query: column "stay_cost" not found in table "stay"`, result.Err())
}

func TestExecutor_WrappedSourceNotFound(t *testing.T) {
	loader := &stubLoader{err: apperrors.NewSourceNotFoundError("sql:postgres", errors.New("connection refused"))}
	exec := application.NewExecutor(loader, logger.NewNoOpLogger())

	result := exec.Execute(context.Background(), "sales_by_payment")

	assert.Equal(t, "data source not found", result.Err())
}

func TestExecutor_RecoversPanic(t *testing.T) {
	loader := &stubLoader{panicMsg: "boom"}
	exec := application.NewExecutor(loader, logger.NewNoOpLogger())

	var result domain.Result
	require.NotPanics(t, func() {
		result = exec.Execute(context.Background(), "sales_by_payment")
	})
	assert.Equal(t, "error executing query: panic: boom", result.Err())
}

func TestExecutor_EmptySnapshot(t *testing.T) {
	exec := application.NewExecutor(&stubLoader{snapshot: &hoteldomain.Snapshot{}}, logger.NewNoOpLogger())

	result := exec.Execute(context.Background(), "top_products_by_quantity")

	assert.False(t, result.IsError())
	assert.Empty(t, result.Groups())
}

func TestExecutor_SourcesAgree(t *testing.T) {
	tc := testhelpers.SetupTestContext(t)

	sources := map[string]hotelinfra.Source{
		"xlsx": hotelinfra.NewXLSXSource(tc.WorkbookPath),
		"csv":  hotelinfra.NewCSVSource(tc.CSVDir, 3),
	}
	if tc.DB != nil {
		sources["sqlite"] = hotelinfra.NewSQLSource(tc.DB, "sqlite3", 3)
	}

	reference := application.NewExecutor(
		hotelinfra.NewSnapshotQueryRepository(sources["xlsx"]), logger.NewNoOpLogger())

	for name, src := range sources {
		exec := application.NewExecutor(hotelinfra.NewSnapshotQueryRepository(src), logger.NewNoOpLogger())
		for _, qt := range domain.QueryTypeNames() {
			want := reference.Execute(context.Background(), qt)
			got := exec.Execute(context.Background(), qt)
			require.False(t, got.IsError(), "%s/%s: %s", name, qt, got.Err())
			assert.Equal(t, want.Groups(), got.Groups(), "%s/%s", name, qt)
		}
	}
}

func TestExecutor_ReadsFreshDataEachCall(t *testing.T) {
	dir := testhelpers.WriteFixtureCSV(t)
	exec := application.NewExecutor(
		hotelinfra.NewSnapshotQueryRepository(hotelinfra.NewCSVSource(dir, 2)), logger.NewNoOpLogger())

	before := exec.Execute(context.Background(), "stay_cost_by_pet")
	require.False(t, before.IsError())

	pets := hotelinfra.NewTable("pet", []string{"pet_id", "name"}, [][]string{{"1", "Rex"}})
	stays := hotelinfra.NewTable("stay", []string{"pet_id", "stay_cost"}, [][]string{{"1", "10"}})
	require.NoError(t, hotelinfra.WriteCSVDir(dir, []*hotelinfra.Table{pets, stays}))

	after := exec.Execute(context.Background(), "stay_cost_by_pet")
	require.False(t, after.IsError(), after.Err())
	assert.Equal(t, []domain.Group{{Label: "Rex", Total: 10}}, after.Groups())
}

func TestExecutor_RefundsAndFractionalQuantitiesAreSummed(t *testing.T) {
	dir := testhelpers.WriteFixtureCSV(t)
	purchases := hotelinfra.NewTable("purchase",
		[]string{"purchase_id", "product_id", "quantity", "total_value", "payment_method"},
		[][]string{
			{"1", "10", "2", "50", "1"},
			{"2", "10", "1", "-20", "1"},
			{"3", "11", "1.5", "12.75", "2"},
		})
	require.NoError(t, hotelinfra.WriteCSVDir(dir, []*hotelinfra.Table{purchases}))

	exec := application.NewExecutor(
		hotelinfra.NewSnapshotQueryRepository(hotelinfra.NewCSVSource(dir, 2)), logger.NewNoOpLogger())

	tests := []struct {
		queryType string
		want      []domain.Group
	}{
		{"sales_by_payment", []domain.Group{
			{Label: "Pix", Total: 30},
			{Label: "Cartão de crédito", Total: 12.75},
		}},
		{"top_products_by_quantity", []domain.Group{
			{Label: "Ração Premium", Total: 3},
			{Label: "Shampoo Neutro", Total: 1.5},
		}},
		{"stay_cost_by_pet", []domain.Group{
			{Label: "Rex", Total: 500},
			{Label: "Thor", Total: 500},
			{Label: "Mia", Total: 150},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.queryType, func(t *testing.T) {
			result := exec.Execute(context.Background(), tt.queryType)
			require.False(t, result.IsError(), result.Err())
			assert.Equal(t, tt.want, result.Groups())
		})
	}
}

func BenchmarkExecutor_SalesByPayment(b *testing.B) {
	src := hotelinfra.NewCSVSource(testhelpers.WriteFixtureCSV(b), 5)
	exec := application.NewExecutor(hotelinfra.NewSnapshotQueryRepository(src), logger.NewNoOpLogger())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := exec.Execute(context.Background(), "sales_by_payment"); r.IsError() {
			b.Fatal(r.Err())
		}
	}
}
