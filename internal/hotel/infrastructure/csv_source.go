package infrastructure

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "pethotel/internal/shared/errors"
	sharedinfra "pethotel/internal/shared/infrastructure"
)

const utf8BOM = "\ufeff"

// CSVSource lit un fichier <table>.csv par table dans un répertoire
type CSVSource struct {
	dir     string
	workers int
}

// NewCSVSource crée une source CSV; workers borne le nombre de fichiers lus en parallèle
func NewCSVSource(dir string, workers int) *CSVSource {
	return &CSVSource{dir: dir, workers: workers}
}

// Describe retourne le répertoire lu
func (s *CSVSource) Describe() string {
	return "csv:" + s.dir
}

// Load lit les fichiers en parallèle via le pool de workers
func (s *CSVSource) Load(ctx context.Context, names ...string) (map[string]*Table, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewSourceNotFoundError(s.dir, err)
		}
		return nil, fmt.Errorf("failed to stat csv directory: %w", err)
	}
	if !info.IsDir() {
		return nil, apperrors.NewSourceNotFoundError(s.dir, fmt.Errorf("%s is not a directory", s.dir))
	}

	var mu sync.Mutex
	tables := make(map[string]*Table, len(names))

	pool := sharedinfra.NewWorkerPool(ctx, s.workers)
	pool.Start()
	for _, name := range names {
		name := name
		if err := pool.Submit(func(ctx context.Context) error {
			t, err := s.readTable(ctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			tables[name] = t
			mu.Unlock()
			return nil
		}); err != nil {
			break
		}
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func (s *CSVSource) readTable(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name+".csv"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("table %q not found", name)
		}
		return nil, fmt.Errorf("failed to open table %q: %w", name, err)
	}
	defer f.Close()

	return ReadCSVTable(name, f)
}

// ReadCSVTable lit une table CSV; la première ligne est l'en-tête
func ReadCSVTable(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table %q: %w", name, err)
	}
	if len(records) == 0 {
		return NewTable(name, nil, nil), nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return NewTable(name, header, records[1:]), nil
}

// WriteCSVDir écrit un fichier <table>.csv par table
func WriteCSVDir(dir string, tables []*Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create csv directory: %w", err)
	}

	for _, t := range tables {
		if err := writeCSVFile(filepath.Join(dir, t.Name+".csv"), t); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
