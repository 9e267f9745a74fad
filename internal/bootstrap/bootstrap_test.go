package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel/internal/shared/config"
	"pethotel/internal/shared/logger"
	"pethotel/internal/testhelpers"
)

func TestNew_XLSX(t *testing.T) {
	cfg := &config.Config{Source: config.SourceConfig{
		Kind: config.SourceKindXLSX,
		Path: testhelpers.WriteFixtureWorkbook(t),
	}}

	app, err := New(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	defer app.Close()

	result := app.Executor.Execute(context.Background(), "sales_by_payment")
	require.False(t, result.IsError(), result.Err())
	assert.Len(t, result.Groups(), 3)
	assert.Len(t, app.Matcher.Questions(), 3)
}

func TestNewSource_CSV(t *testing.T) {
	src, db, err := NewSource(context.Background(), config.SourceConfig{
		Kind:        config.SourceKindCSV,
		Path:        testhelpers.WriteFixtureCSV(t),
		LoadWorkers: 2,
	})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Contains(t, src.Describe(), "csv:")
}

func TestNewSource_Unsupported(t *testing.T) {
	_, _, err := NewSource(context.Background(), config.SourceConfig{Kind: "parquet"})
	assert.EqualError(t, err, `unsupported source kind: "parquet"`)
}
