package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	analyticsdomain "pethotel/internal/analytics/domain"
	"pethotel/internal/export/domain"
)

// QueryRunner exécute une agrégation par identifiant
type QueryRunner interface {
	Execute(ctx context.Context, queryType string) analyticsdomain.Result
}

// ExportService rend les résultats des agrégations en CSV ou en tableau texte
type ExportService struct {
	runner QueryRunner
}

// NewExportService crée une nouvelle instance d'ExportService
func NewExportService(runner QueryRunner) *ExportService {
	return &ExportService{runner: runner}
}

// Export écrit le job dans w selon son format
func (s *ExportService) Export(ctx context.Context, w io.Writer, job *domain.ExportJob) error {
	switch job.Format() {
	case domain.ExportFormatCSV:
		data, err := s.ExportToCSV(ctx, job.QueryTypes())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return s.WriteTable(ctx, w, job.QueryTypes())
	}
}

// collect exécute chaque agrégation dans l'ordre demandé
func (s *ExportService) collect(ctx context.Context, queryTypes []string) [][]domain.ResultExportRow {
	sections := make([][]domain.ResultExportRow, 0, len(queryTypes))
	for _, qt := range queryTypes {
		result := s.runner.Execute(ctx, qt)
		if result.IsError() {
			sections = append(sections, []domain.ResultExportRow{{QueryType: qt, Error: result.Err()}})
			continue
		}

		groups := result.Groups()
		rows := make([]domain.ResultExportRow, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, domain.ResultExportRow{QueryType: qt, Label: g.Label, Total: g.Total})
		}
		sections = append(sections, rows)
	}
	return sections
}

// ExportToCSV génère un CSV en mémoire: une ligne par groupe, une ligne par agrégation en erreur
func (s *ExportService) ExportToCSV(ctx context.Context, queryTypes []string) ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, 4*1024))
	writer := csv.NewWriter(buffer)

	if err := writer.Write(domain.CSVHeaders()); err != nil {
		return nil, err
	}
	for _, section := range s.collect(ctx, queryTypes) {
		for _, row := range section {
			if err := writer.Write(row.ToCSVRow()); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// WriteTable écrit une section alignée par agrégation
func (s *ExportService) WriteTable(ctx context.Context, w io.Writer, queryTypes []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, section := range s.collect(ctx, queryTypes) {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "== %s ==\n", queryTypes[i])

		if len(section) == 1 && section[0].Error != "" {
			fmt.Fprintf(tw, "error:\t%s\n", section[0].Error)
			continue
		}
		if len(section) == 0 {
			fmt.Fprintln(tw, "(no rows)")
			continue
		}
		for _, row := range section {
			fmt.Fprintf(tw, "%s\t%s\n", row.Label, domain.FormatTotal(row.Total))
		}
	}

	return tw.Flush()
}
