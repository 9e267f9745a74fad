package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ExportFormat représente le format d'export
type ExportFormat string

const (
	ExportFormatTable ExportFormat = "table"
	ExportFormatCSV   ExportFormat = "csv"
)

// ParseExportFormat valide un format saisi en ligne de commande
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case ExportFormatTable:
		return ExportFormatTable, nil
	case ExportFormatCSV:
		return ExportFormatCSV, nil
	}
	return "", errors.New("invalid export format")
}

// ExportJob représente un job d'export des agrégations
type ExportJob struct {
	format     ExportFormat
	queryTypes []string
}

// NewExportJob crée un nouveau job d'export avec validation
func NewExportJob(format ExportFormat, queryTypes []string) (*ExportJob, error) {
	if format != ExportFormatTable && format != ExportFormatCSV {
		return nil, errors.New("invalid export format")
	}
	if len(queryTypes) == 0 {
		return nil, errors.New("at least one query type is required")
	}

	return &ExportJob{
		format:     format,
		queryTypes: append([]string{}, queryTypes...),
	}, nil
}

// Format retourne le format d'export
func (ej *ExportJob) Format() ExportFormat {
	return ej.format
}

// QueryTypes retourne les agrégations à exporter, dans l'ordre
func (ej *ExportJob) QueryTypes() []string {
	return append([]string{}, ej.queryTypes...)
}

// ResultExportRow représente une ligne d'export: un groupe, ou l'erreur d'une agrégation
type ResultExportRow struct {
	QueryType string
	Label     string
	Total     float64
	Error     string
}

// CSVHeaders retourne les en-têtes CSV
func CSVHeaders() []string {
	return []string{"query_type", "label", "total", "error"}
}

// ToCSVRow convertit la ligne en enregistrement CSV
func (r ResultExportRow) ToCSVRow() []string {
	if r.Error != "" {
		return []string{r.QueryType, "", "", r.Error}
	}
	return []string{r.QueryType, r.Label, FormatTotal(r.Total), ""}
}

// FormatTotal écrit un total sans zéros superflus (6, 125.5)
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
