package repository

import (
	"context"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos del catálogo (DIP).
type ProductRepository interface {
	// List devuelve todos los productos del catálogo.
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve domain.ErrProductNotFound si el id no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
