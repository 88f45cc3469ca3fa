package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
	"github.com/jhoicas/Storefront-cart/internal/application/view"
)

// CatalogHandler expone la página del catálogo.
type CatalogHandler struct {
	view *view.CatalogView
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(v *view.CatalogView) *CatalogHandler {
	return &CatalogHandler{view: v}
}

// Page carga el catálogo (solo la primera vez) y devuelve la página con los badges del carrito.
func (h *CatalogHandler) Page(c *fiber.Ctx) error {
	notice := h.view.Load(c.Context())
	return h.respond(c, notice)
}

// AddProduct agrega una unidad del producto al carrito.
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}
	notice := h.view.AddProduct(c.Context(), id)
	return h.respond(c, notice)
}

func (h *CatalogHandler) respond(c *fiber.Ctx, notice *dto.Notice) error {
	return c.Status(noticeStatus(notice)).JSON(dto.CatalogResponse{
		Page:   h.view.Page(),
		Notice: notice,
	})
}
