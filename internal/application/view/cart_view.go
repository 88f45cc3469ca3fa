package view

import (
	"context"
	"sync"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/pkg/logger"
	"github.com/jhoicas/Storefront-cart/pkg/money"
)

// CartView modelo de la página del carrito. Las filas solo cambian cuando el Store
// notifica un carrito confirmado; nunca se actualizan de forma optimista.
type CartView struct {
	store CartStore
	money *money.Formatter
	log   *logger.Logger

	mu          sync.RWMutex
	cart        entity.Cart
	unsubscribe func()
}

// NewCartView construye la vista con el carrito actual y la suscribe al Store.
func NewCartView(store CartStore, formatter *money.Formatter, log *logger.Logger) *CartView {
	v := &CartView{
		store: store,
		money: formatter,
		log:   log.Named("cart_view"),
	}
	v.unsubscribe = store.Subscribe(v.onCart)
	v.onCart(store.Read())
	return v
}

func (v *CartView) onCart(c entity.Cart) {
	v.mu.Lock()
	v.cart = c
	v.mu.Unlock()
}

// Page arma las filas con subtotales y el total formateados.
func (v *CartView) Page() dto.CartPage {
	v.mu.RLock()
	c := v.cart
	v.mu.RUnlock()

	page := dto.CartPage{
		Items:    make([]dto.CartRow, 0, c.Len()),
		Total:    c.Total(),
		Currency: v.money.Currency(),
	}
	for _, it := range c.Items {
		subtotal := it.Subtotal()
		page.Items = append(page.Items, dto.CartRow{
			ProductID:         it.ProductID,
			Title:             it.Title,
			Image:             it.Image,
			Price:             it.Price,
			PriceFormatted:    v.money.Format(it.Price),
			Amount:            it.Amount,
			Subtotal:          subtotal,
			SubtotalFormatted: v.money.Format(subtotal),
			CanDecrement:      it.Amount > 1,
		})
	}
	page.TotalFormatted = v.money.Format(page.Total)
	return page
}

// Increment suma una unidad al producto.
func (v *CartView) Increment(ctx context.Context, productID int64) *dto.Notice {
	return NoticeFor(v.store.ChangeProductAmount(ctx, productID, 1))
}

// Decrement resta una unidad. Con cantidad 1 el botón está deshabilitado y no se llama al Store.
func (v *CartView) Decrement(ctx context.Context, productID int64) *dto.Notice {
	v.mu.RLock()
	it, ok := v.cart.Find(productID)
	v.mu.RUnlock()
	if ok && it.Amount <= 1 {
		return NoticeFor(domain.ErrInvalidAmount)
	}
	return NoticeFor(v.store.ChangeProductAmount(ctx, productID, -1))
}

// Remove quita el producto del carrito.
func (v *CartView) Remove(ctx context.Context, productID int64) *dto.Notice {
	return NoticeFor(v.store.RemoveProduct(ctx, productID))
}

// FinalizeOrder el checkout no está implementado; solo registra el pedido.
func (v *CartView) FinalizeOrder(_ context.Context) *dto.Notice {
	page := v.Page()
	v.log.Info().Int("items", len(page.Items)).Str("total", page.Total.StringFixed(2)).Msg("finalizar pedido solicitado")
	return newNotice(dto.NoticeInfo, dto.CodeNotImplemented, "Finalizar pedido aún no está disponible")
}

// Close da de baja la suscripción al Store.
func (v *CartView) Close() {
	v.unsubscribe()
}
