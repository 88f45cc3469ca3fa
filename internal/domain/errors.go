package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")

	// Carrito
	ErrOutOfStock         = errors.New("cantidad solicitada fuera de stock")
	ErrProductNotInCart   = errors.New("el producto no está en el carrito")
	ErrInvalidAmount      = errors.New("cantidad inválida")
	ErrProductNotFound    = errors.New("producto no encontrado en el catálogo")
	ErrCatalogUnavailable = errors.New("catálogo no disponible")
	ErrPersistenceFailure = errors.New("no fue posible guardar el carrito")
)
