package view

import (
	"context"
	"sync"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/pkg/logger"
	"github.com/jhoicas/Storefront-cart/pkg/money"
)

// CatalogView modelo de la página del catálogo: lista de productos con el badge
// de cantidad en el carrito. Los badges se actualizan con cada commit del Store.
type CatalogView struct {
	store    CartStore
	products repository.ProductRepository
	money    *money.Formatter
	log      *logger.Logger

	loadMu sync.Mutex // una sola carga en curso

	mu          sync.RWMutex
	state       string
	items       []entity.Product
	amounts     map[int64]int
	unsubscribe func()
}

// NewCatalogView construye la vista en estado loading y la suscribe al Store.
func NewCatalogView(store CartStore, products repository.ProductRepository, formatter *money.Formatter, log *logger.Logger) *CatalogView {
	v := &CatalogView{
		store:    store,
		products: products,
		money:    formatter,
		log:      log.Named("catalog_view"),
		state:    dto.CatalogLoading,
	}
	v.unsubscribe = store.Subscribe(v.onCart)
	v.onCart(store.Read())
	return v
}

func (v *CatalogView) onCart(c entity.Cart) {
	amounts := c.AmountByProduct()
	v.mu.Lock()
	v.amounts = amounts
	v.mu.Unlock()
}

// Load obtiene la lista de productos una sola vez. Tras un éxito las llamadas siguientes no hacen nada;
// si falla la vista queda en failed y se puede reintentar.
func (v *CatalogView) Load(ctx context.Context) *dto.Notice {
	v.loadMu.Lock()
	defer v.loadMu.Unlock()

	if v.State() == dto.CatalogLoaded {
		return nil
	}

	items, err := v.products.List(ctx)
	if err != nil {
		v.log.Warn().Err(err).Msg("no se pudo cargar el catálogo")
		v.setState(dto.CatalogFailed, nil)
		return NoticeFor(catalogLoadError(err))
	}
	v.setState(dto.CatalogLoaded, items)
	v.log.Debug().Int("products", len(items)).Msg("catálogo cargado")
	return nil
}

func (v *CatalogView) setState(state string, items []entity.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
	if items != nil {
		v.items = items
	}
}

// State estado de carga actual.
func (v *CatalogView) State() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Page arma la página con los precios formateados y el badge de cada producto (0 si no está en el carrito).
func (v *CatalogView) Page() dto.CatalogPage {
	v.mu.RLock()
	defer v.mu.RUnlock()

	page := dto.CatalogPage{State: v.state, Products: make([]dto.ProductCard, 0, len(v.items))}
	for _, p := range v.items {
		page.Products = append(page.Products, dto.ProductCard{
			ID:             p.ID,
			Title:          p.Title,
			Image:          p.Image,
			Price:          p.Price,
			PriceFormatted: v.money.Format(p.Price),
			CartAmount:     v.amounts[p.ID],
		})
	}
	return page
}

// AddProduct agrega una unidad al carrito. Devuelve nil si tuvo éxito.
func (v *CatalogView) AddProduct(ctx context.Context, productID int64) *dto.Notice {
	return NoticeFor(v.store.AddProduct(ctx, productID))
}

// Close da de baja la suscripción al Store.
func (v *CatalogView) Close() {
	v.unsubscribe()
}
