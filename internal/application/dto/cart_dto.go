package dto

import "github.com/shopspring/decimal"

// CartRow línea de la página del carrito.
type CartRow struct {
	ProductID         int64           `json:"product_id"`
	Title             string          `json:"title"`
	Image             string          `json:"image"`
	Price             decimal.Decimal `json:"price"`
	PriceFormatted    string          `json:"price_formatted"`
	Amount            int             `json:"amount"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	SubtotalFormatted string          `json:"subtotal_formatted"`
	CanDecrement      bool            `json:"can_decrement"`
}

// CartPage modelo de la página del carrito.
type CartPage struct {
	Items          []CartRow       `json:"items"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	Currency       string          `json:"currency"`
}

// CartResponse cuerpo HTTP de las rutas del carrito.
type CartResponse struct {
	Page   CartPage `json:"page"`
	Notice *Notice  `json:"notice,omitempty"`
}
