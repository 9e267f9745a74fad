package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	apperrors "pethotel/internal/shared/errors"
	sharedinfra "pethotel/internal/shared/infrastructure"
)

// SQLSource lit les tables depuis une base PostgreSQL ou SQLite
type SQLSource struct {
	sharedinfra.BaseRepository
	driver  string
	workers int
}

// NewSQLSource crée une source SQL sur une connexion déjà ouverte
func NewSQLSource(db *sql.DB, driver string, workers int) *SQLSource {
	return &SQLSource{
		BaseRepository: sharedinfra.NewBaseRepository(db),
		driver:         driver,
		workers:        workers,
	}
}

// Describe retourne le driver utilisé, jamais le DSN
func (s *SQLSource) Describe() string {
	return "sql:" + s.driver
}

// Load exécute un SELECT par table, en parallèle
func (s *SQLSource) Load(ctx context.Context, names ...string) (map[string]*Table, error) {
	if err := s.Ping(ctx); err != nil {
		return nil, apperrors.NewSourceNotFoundError(s.Describe(), err)
	}

	var mu sync.Mutex
	tables := make(map[string]*Table, len(names))

	pool := sharedinfra.NewWorkerPool(ctx, s.workers)
	pool.Start()
	for _, name := range names {
		name := name
		if err := pool.Submit(func(ctx context.Context) error {
			t, err := s.queryTable(ctx, name)
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

func (s *SQLSource) queryTable(ctx context.Context, name string) (*Table, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("invalid table name %q", name)
	}

	rows, err := s.Query(ctx, "SELECT * FROM "+name)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var data [][]string
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan table %q: %w", name, err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = cellString(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}

	return NewTable(name, columns, data), nil
}

// cellString rend une valeur SQL sous la même forme texte qu'une cellule de tableur
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
