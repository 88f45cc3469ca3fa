package repository

import (
	"context"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

// CartStorage ranura durable donde se guarda el carrito serializado.
// Debe conservar el orden de las líneas.
type CartStorage interface {
	Save(ctx context.Context, cart entity.Cart) error
	// Load devuelve found=false cuando la ranura está vacía.
	Load(ctx context.Context) (cart entity.Cart, found bool, err error)
}
