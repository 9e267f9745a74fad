package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schéma minimal des cinq tables, compatible PostgreSQL et SQLite.
// Pas de clés étrangères: les lignes orphelines existent dans les classeurs réels.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pet (
		pet_id  INTEGER PRIMARY KEY,
		name    TEXT,
		species TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS stay (
		stay_id   INTEGER PRIMARY KEY,
		pet_id    INTEGER,
		nights    INTEGER,
		stay_cost DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		product_id INTEGER PRIMARY KEY,
		name       TEXT,
		price      DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS payment_method_type (
		payment_method_type_id INTEGER PRIMARY KEY,
		nome                   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS purchase (
		purchase_id    INTEGER PRIMARY KEY,
		product_id     INTEGER,
		quantity       INTEGER,
		total_value    DOUBLE PRECISION,
		payment_method INTEGER
	)`,
}

// CreateSchema crée les tables absentes
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
