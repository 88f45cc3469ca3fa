package postgres

import "github.com/jhoicas/Storefront-cart/internal/domain/repository"

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo completo (productos + stock) sobre las mismas conexiones.
type CatalogRepo struct {
	*ProductRepo
	*StockRepo
}

// NewCatalogRepository construye el catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{
		ProductRepo: NewProductRepository(q),
		StockRepo:   NewStockRepository(q),
	}
}
