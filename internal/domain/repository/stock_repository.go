package repository

import (
	"context"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

// StockRepository define el puerto para consultar el stock disponible de un producto.
type StockRepository interface {
	// Get devuelve domain.ErrProductNotFound si el producto no tiene registro de stock.
	Get(ctx context.Context, productID int64) (*entity.Stock, error)
}

// CatalogRepository servicio de catálogo completo: productos y stock.
type CatalogRepository interface {
	ProductRepository
	StockRepository
}
