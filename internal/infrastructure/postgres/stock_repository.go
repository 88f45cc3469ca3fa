package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto.
func (r *StockRepo) Get(ctx context.Context, productID int64) (*entity.Stock, error) {
	s := entity.Stock{ProductID: productID}
	err := r.q.QueryRow(ctx, `SELECT amount FROM stock WHERE id = $1`, productID).Scan(&s.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad disponible de un producto.
func (r *StockRepo) Upsert(ctx context.Context, s entity.Stock) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (id, amount) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount`,
		s.ProductID, s.Amount,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
