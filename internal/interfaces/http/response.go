package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
)

// noticeStatus código HTTP según el aviso. Una falla de persistencia responde 200:
// el carrito en memoria sí cambió y el aviso es solo una advertencia.
func noticeStatus(n *dto.Notice) int {
	if n == nil {
		return fiber.StatusOK
	}
	switch n.Code {
	case dto.CodeOutOfStock:
		return fiber.StatusConflict
	case dto.CodeProductNotInCart, dto.CodeProductNotFound:
		return fiber.StatusNotFound
	case dto.CodeInvalidAmount:
		return fiber.StatusBadRequest
	case dto.CodeCatalogUnavailable:
		return fiber.StatusServiceUnavailable
	case dto.CodePersistenceFailure:
		return fiber.StatusOK
	case dto.CodeNotImplemented:
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

// productID lee :id como entero positivo.
func productID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
}
