package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/cartjson"
)

var _ repository.CartStorage = (*CartStorageRepo)(nil)

// CartStorageRepo ranura clave → JSONB en la tabla cart_storage.
type CartStorageRepo struct {
	q   Querier
	key string
}

// NewCartStorageRepository construye el adaptador para la ranura key.
func NewCartStorageRepository(q Querier, key string) *CartStorageRepo {
	return &CartStorageRepo{q: q, key: key}
}

// Save reemplaza el carrito guardado en la ranura.
func (r *CartStorageRepo) Save(ctx context.Context, cart entity.Cart) error {
	payload, err := cartjson.Marshal(cart)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO cart_storage (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		r.key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Load lee la ranura; found=false si no hay fila.
func (r *CartStorageRepo) Load(ctx context.Context) (entity.Cart, bool, error) {
	var payload string
	err := r.q.QueryRow(ctx, `SELECT payload::text FROM cart_storage WHERE key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Cart{}, false, nil
		}
		return entity.Cart{}, false, fmt.Errorf("load cart: %w", err)
	}
	c, err := cartjson.Unmarshal([]byte(payload))
	if err != nil {
		return entity.Cart{}, false, err
	}
	return c, true, nil
}
