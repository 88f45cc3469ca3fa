package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (solo lectura para el carrito).
type Product struct {
	ID    int64
	Title string
	Price decimal.Decimal // precio unitario
	Image string          // URI de la imagen
}
