package cart

import (
	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

// NextAmount cantidad resultante de agregar una unidad del producto: la actual + 1, o 1 si no está.
func NextAmount(c entity.Cart, productID int64) int {
	if it, ok := c.Find(productID); ok {
		return it.Amount + 1
	}
	return 1
}

// CheckAmount valida una cantidad deseada contra el stock disponible (servicio de dominio).
// amount <= 0 -> ErrInvalidAmount; amount > stock -> ErrOutOfStock.
func CheckAmount(amount int, stock entity.Stock) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if !stock.Allows(amount) {
		return domain.ErrOutOfStock
	}
	return nil
}
