package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-cart/internal/application/view"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogView *view.CatalogView
	CartView    *view.CartView
}

// Router registra las rutas de la tienda.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogView)
	catalog.Get("/", catalogHandler.Page)
	catalog.Post("/:id/add", catalogHandler.AddProduct)

	// Carrito
	carts := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartView)
	carts.Get("/", cartHandler.Page)
	carts.Post("/checkout", cartHandler.Checkout)
	carts.Post("/:id/increment", cartHandler.Increment)
	carts.Post("/:id/decrement", cartHandler.Decrement)
	carts.Delete("/:id", cartHandler.Remove)
}
