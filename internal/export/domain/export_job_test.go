package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatCSV, f)

	f, err = ParseExportFormat("table")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatTable, f)

	_, err = ParseExportFormat("parquet")
	assert.EqualError(t, err, "invalid export format")
}

func TestNewExportJob(t *testing.T) {
	types := []string{"sales_by_payment"}
	job, err := NewExportJob(ExportFormatCSV, types)
	require.NoError(t, err)

	types[0] = "changed"
	assert.Equal(t, []string{"sales_by_payment"}, job.QueryTypes())
	assert.Equal(t, ExportFormatCSV, job.Format())

	_, err = NewExportJob("xml", types)
	assert.Error(t, err)
	_, err = NewExportJob(ExportFormatTable, nil)
	assert.Error(t, err)
}

func TestResultExportRow_ToCSVRow(t *testing.T) {
	assert.Equal(t,
		[]string{"sales_by_payment", "Pix", "280", ""},
		ResultExportRow{QueryType: "sales_by_payment", Label: "Pix", Total: 280}.ToCSVRow(),
	)
	assert.Equal(t,
		[]string{"sales_by_payment", "Cartão de crédito", "125.5", ""},
		ResultExportRow{QueryType: "sales_by_payment", Label: "Cartão de crédito", Total: 125.5}.ToCSVRow(),
	)
	assert.Equal(t,
		[]string{"stay_cost_by_pet", "", "", "data source not found"},
		ResultExportRow{QueryType: "stay_cost_by_pet", Error: "data source not found"}.ToCSVRow(),
	)
}

func BenchmarkResultExportRow_ToCSVRow(b *testing.B) {
	row := ResultExportRow{QueryType: "sales_by_payment", Label: "Cartão de crédito", Total: 125.5}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = row.ToCSVRow()
	}
}
