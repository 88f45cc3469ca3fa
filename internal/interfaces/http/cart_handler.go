package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
	"github.com/jhoicas/Storefront-cart/internal/application/view"
)

// CartHandler expone la página del carrito y sus acciones.
type CartHandler struct {
	view *view.CartView
}

// NewCartHandler construye el handler.
func NewCartHandler(v *view.CartView) *CartHandler {
	return &CartHandler{view: v}
}

// Page devuelve el carrito actual.
func (h *CartHandler) Page(c *fiber.Ctx) error {
	return h.respond(c, nil)
}

// Increment suma una unidad.
func (h *CartHandler) Increment(c *fiber.Ctx) error {
	return h.withProduct(c, h.view.Increment)
}

// Decrement resta una unidad.
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	return h.withProduct(c, h.view.Decrement)
}

// Remove quita el producto del carrito.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return h.withProduct(c, h.view.Remove)
}

// Checkout finalizar pedido (no implementado).
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	return h.respond(c, h.view.FinalizeOrder(c.Context()))
}

func (h *CartHandler) withProduct(c *fiber.Ctx, action func(context.Context, int64) *dto.Notice) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}
	return h.respond(c, action(c.Context(), id))
}

func (h *CartHandler) respond(c *fiber.Ctx, notice *dto.Notice) error {
	return c.Status(noticeStatus(notice)).JSON(dto.CartResponse{
		Page:   h.view.Page(),
		Notice: notice,
	})
}
