package view

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/Storefront-cart/internal/application/dto"
	"github.com/jhoicas/Storefront-cart/internal/domain"
)

// NoticeFor traduce un error del Store a un aviso para el usuario. nil si err es nil.
func NoticeFor(err error) *dto.Notice {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPersistenceFailure):
		return newNotice(dto.NoticeWarning, dto.CodePersistenceFailure, "El carrito se actualizó pero no se pudo guardar")
	case errors.Is(err, domain.ErrOutOfStock):
		return newNotice(dto.NoticeWarning, dto.CodeOutOfStock, "Cantidad solicitada fuera de stock")
	case errors.Is(err, domain.ErrProductNotInCart):
		return newNotice(dto.NoticeWarning, dto.CodeProductNotInCart, "El producto no está en el carrito")
	case errors.Is(err, domain.ErrInvalidAmount):
		return newNotice(dto.NoticeInfo, dto.CodeInvalidAmount, "La cantidad debe ser mayor que cero")
	case errors.Is(err, domain.ErrProductNotFound):
		return newNotice(dto.NoticeError, dto.CodeProductNotFound, "Producto no encontrado")
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return newNotice(dto.NoticeError, dto.CodeCatalogUnavailable, "Catálogo no disponible, intente nuevamente")
	default:
		return newNotice(dto.NoticeError, dto.CodeInternal, "Error inesperado")
	}
}

func newNotice(level, code, message string) *dto.Notice {
	return &dto.Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Code:    code,
		Message: message,
	}
}
