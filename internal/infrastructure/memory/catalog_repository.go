package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo en memoria. Se usa en desarrollo (semilla JSON) y en tests.
type CatalogRepo struct {
	mu       sync.RWMutex
	products []entity.Product
	stock    map[int64]int
}

// NewCatalogRepository construye el catálogo con productos y stock iniciales.
func NewCatalogRepository(products []entity.Product, stock []entity.Stock) *CatalogRepo {
	r := &CatalogRepo{
		products: append([]entity.Product(nil), products...),
		stock:    make(map[int64]int, len(stock)),
	}
	for _, s := range stock {
		r.stock[s.ProductID] = s.Amount
	}
	return r
}

type seedFile struct {
	Products []struct {
		ID    int64           `json:"id"`
		Title string          `json:"title"`
		Price decimal.Decimal `json:"price"`
		Image string          `json:"image"`
	} `json:"products"`
	Stock []struct {
		ID     int64 `json:"id"`
		Amount int   `json:"amount"`
	} `json:"stock"`
}

// LoadCatalogSeed lee un archivo con el formato de json-server: {"products": [...], "stock": [...]}.
func LoadCatalogSeed(path string) (*CatalogRepo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("leer semilla de catálogo: %w", err)
	}
	defer f.Close()
	return ParseCatalogSeed(f)
}

// ParseCatalogSeed como LoadCatalogSeed pero desde un reader (UTF-8).
func ParseCatalogSeed(r io.Reader) (*CatalogRepo, error) {
	var seed seedFile
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("parsear semilla de catálogo: %w", err)
	}
	products := make([]entity.Product, 0, len(seed.Products))
	for _, p := range seed.Products {
		products = append(products, entity.Product{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image})
	}
	stock := make([]entity.Stock, 0, len(seed.Stock))
	for _, s := range seed.Stock {
		stock = append(stock, entity.Stock{ProductID: s.ID, Amount: s.Amount})
	}
	return NewCatalogRepository(products, stock), nil
}

// List devuelve una copia de los productos en el orden de carga.
func (r *CatalogRepo) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Product(nil), r.products...), nil
}

// GetByID obtiene un producto por ID.
func (r *CatalogRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Get obtiene el stock de un producto.
func (r *CatalogRepo) Get(_ context.Context, productID int64) (*entity.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	amount, ok := r.stock[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &entity.Stock{ProductID: productID, Amount: amount}, nil
}

// SetStock ajusta el stock disponible de un producto.
func (r *CatalogRepo) SetStock(productID int64, amount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock[productID] = amount
}

// StockLevels devuelve el stock de todos los productos ordenado por id.
func (r *CatalogRepo) StockLevels() []entity.Stock {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Stock, 0, len(r.stock))
	for id, amount := range r.stock {
		out = append(out, entity.Stock{ProductID: id, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
