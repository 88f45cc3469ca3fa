package dto

import "github.com/shopspring/decimal"

// Estados de carga del catálogo.
const (
	CatalogLoading = "loading"
	CatalogLoaded  = "loaded"
	CatalogFailed  = "failed"
)

// ProductCard tarjeta de producto en la página del catálogo.
type ProductCard struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Image          string          `json:"image"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	CartAmount     int             `json:"cart_amount"`
}

// CatalogPage modelo de la página del catálogo.
type CatalogPage struct {
	State    string        `json:"state"`
	Products []ProductCard `json:"products"`
}

// CatalogResponse cuerpo HTTP de las rutas del catálogo.
type CatalogResponse struct {
	Page   CatalogPage `json:"page"`
	Notice *Notice     `json:"notice,omitempty"`
}
