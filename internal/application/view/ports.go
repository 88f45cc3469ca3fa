package view

import (
	"context"

	"github.com/jhoicas/Storefront-cart/internal/application/cart"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

// CartStore lo que las vistas necesitan del Store del carrito.
type CartStore interface {
	Read() entity.Cart
	Subscribe(fn cart.Listener) (unsubscribe func())
	AddProduct(ctx context.Context, productID int64) error
	RemoveProduct(ctx context.Context, productID int64) error
	ChangeProductAmount(ctx context.Context, productID int64, delta int) error
}

var _ CartStore = (*cart.Store)(nil)
