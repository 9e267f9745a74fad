package infrastructure

import (
	"context"
	"database/sql"
)

// BaseRepository structure de base pour les repositories en lecture seule
type BaseRepository struct {
	db *sql.DB
}

// NewBaseRepository crée un nouveau repository de base
func NewBaseRepository(db *sql.DB) BaseRepository {
	return BaseRepository{db: db}
}

// Ping vérifie que la base répond
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Query exécute une requête de lecture
func (r *BaseRepository) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, query, args...)
}
