// Package cartjson define el formato serializado del carrito que comparten los adaptadores de almacenamiento:
// un arreglo JSON de {id, title, price, image, amount} en el orden del carrito.
package cartjson

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

type itemRecord struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Amount int             `json:"amount"`
}

// Marshal serializa el carrito. Un carrito vacío produce "[]".
func Marshal(c entity.Cart) ([]byte, error) {
	records := make([]itemRecord, 0, len(c.Items))
	for _, it := range c.Items {
		records = append(records, itemRecord{
			ID:     it.ProductID,
			Title:  it.Title,
			Price:  it.Price,
			Image:  it.Image,
			Amount: it.Amount,
		})
	}
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("serializar carrito: %w", err)
	}
	return b, nil
}

// Unmarshal reconstruye el carrito y valida sus invariantes (cantidad >= 1, sin productos repetidos).
func Unmarshal(data []byte) (entity.Cart, error) {
	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return entity.Cart{}, fmt.Errorf("%w: deserializar carrito: %w", domain.ErrInvalidInput, err)
	}
	seen := make(map[int64]struct{}, len(records))
	items := make([]entity.CartItem, 0, len(records))
	for _, r := range records {
		if r.Amount < 1 {
			return entity.Cart{}, fmt.Errorf("%w: producto %d con cantidad %d", domain.ErrInvalidInput, r.ID, r.Amount)
		}
		if _, dup := seen[r.ID]; dup {
			return entity.Cart{}, fmt.Errorf("%w: producto %d repetido", domain.ErrInvalidInput, r.ID)
		}
		seen[r.ID] = struct{}{}
		items = append(items, entity.CartItem{
			ProductID: r.ID,
			Title:     r.Title,
			Price:     r.Price,
			Image:     r.Image,
			Amount:    r.Amount,
		})
	}
	return entity.Cart{Items: items}, nil
}
