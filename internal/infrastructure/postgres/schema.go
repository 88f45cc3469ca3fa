package postgres

import (
	"context"
	"fmt"
)

// schemaStatements tablas del catálogo y de la ranura del carrito.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
		image TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id     BIGINT PRIMARY KEY REFERENCES products (id) ON DELETE CASCADE,
		amount INTEGER NOT NULL CHECK (amount >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS cart_storage (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
