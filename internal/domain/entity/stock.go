package entity

// Stock cantidad disponible de un producto; es el techo para la cantidad en el carrito.
type Stock struct {
	ProductID int64
	Amount    int
}

// Allows indica si se pueden tener amount unidades del producto.
func (s Stock) Allows(amount int) bool {
	return amount <= s.Amount
}
