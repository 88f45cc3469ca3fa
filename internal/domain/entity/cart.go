package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Lleva los datos del producto desnormalizados para renderizar.
// Invariante: 1 <= Amount <= stock del producto.
type CartItem struct {
	ProductID int64
	Title     string
	Price     decimal.Decimal
	Image     string
	Amount    int
}

// NewCartItem crea una línea a partir de un producto del catálogo.
func NewCartItem(p Product, amount int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Amount:    amount,
	}
}

// Subtotal precio × cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Amount)))
}

// AmountUpdate nueva cantidad total deseada para un producto del carrito.
type AmountUpdate struct {
	ProductID int64
	Amount    int
}

// Cart secuencia ordenada de líneas (orden de inserción). Se trata como valor:
// las operaciones devuelven un carrito nuevo y nunca modifican el receptor.
type Cart struct {
	Items []CartItem
}

// Find devuelve la línea del producto, si existe.
func (c Cart) Find(productID int64) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Upsert reemplaza la línea del producto conservando su posición, o la agrega al final.
func (c Cart) Upsert(item CartItem) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	replaced := false
	for _, it := range c.Items {
		if it.ProductID == item.ProductID {
			items = append(items, item)
			replaced = true
			continue
		}
		items = append(items, it)
	}
	if !replaced {
		items = append(items, item)
	}
	return Cart{Items: items}
}

// WithAmount cambia la cantidad de una línea existente. Si no existe, devuelve el carrito sin cambios.
func (c Cart) WithAmount(productID int64, amount int) Cart {
	it, ok := c.Find(productID)
	if !ok {
		return c.Clone()
	}
	it.Amount = amount
	return c.Upsert(it)
}

// Remove quita la línea del producto.
func (c Cart) Remove(productID int64) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

// Clone copia profunda de las líneas.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// Len número de líneas.
func (c Cart) Len() int { return len(c.Items) }

// Total suma de subtotales.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// AmountByProduct cantidad en carrito por producto (badges del catálogo).
func (c Cart) AmountByProduct() map[int64]int {
	out := make(map[int64]int, len(c.Items))
	for _, it := range c.Items {
		out[it.ProductID] += it.Amount
	}
	return out
}
