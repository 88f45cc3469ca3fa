package view

import (
	"errors"
	"fmt"

	"github.com/jhoicas/Storefront-cart/internal/domain"
)

// catalogLoadError una falla al listar productos siempre se muestra como catálogo no disponible.
func catalogLoadError(err error) error {
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
}
