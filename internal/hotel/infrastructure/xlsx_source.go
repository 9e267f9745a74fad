package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	apperrors "pethotel/internal/shared/errors"
)

// XLSXSource lit les tables depuis les feuilles d'un classeur Excel
type XLSXSource struct {
	path string
}

// NewXLSXSource crée une source sur un classeur
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

// Describe retourne le chemin du classeur
func (s *XLSXSource) Describe() string {
	return "xlsx:" + s.path
}

// Load ouvre le classeur à chaque appel: aucune donnée n'est gardée entre deux lectures
func (s *XLSXSource) Load(ctx context.Context, names ...string) (map[string]*Table, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewSourceNotFoundError(s.path, err)
		}
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheets := make(map[string]bool)
	for _, sheet := range f.GetSheetList() {
		sheets[sheet] = true
	}

	tables := make(map[string]*Table, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !sheets[name] {
			return nil, fmt.Errorf("sheet %q not found", name)
		}

		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		if len(rows) == 0 {
			tables[name] = NewTable(name, nil, nil)
			continue
		}
		tables[name] = NewTable(name, rows[0], rows[1:])
	}

	return tables, nil
}

// WriteWorkbook écrit une feuille par table; les cellules numériques sont stockées en nombres
func WriteWorkbook(path string, tables []*Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			f.SetSheetName("Sheet1", t.Name)
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", t.Name, err)
		}

		if err := writeSheetRow(f, t.Name, 1, t.Columns); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := writeSheetRow(f, t.Name, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		if n, err := strconv.ParseFloat(c, 64); err == nil && rowNum > 1 {
			values[i] = n
		} else {
			values[i] = c
		}
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", rowNum, sheet, err)
	}
	return nil
}
