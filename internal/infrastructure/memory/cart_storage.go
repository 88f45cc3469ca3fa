package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/cartjson"
)

var _ repository.CartStorage = (*CartStorage)(nil)

// CartStorage ranura en memoria. Guarda el carrito serializado para que el round-trip
// sea el mismo que en los adaptadores durables.
type CartStorage struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewCartStorage construye una ranura vacía.
func NewCartStorage() *CartStorage {
	return &CartStorage{}
}

// Save reemplaza el contenido de la ranura.
func (s *CartStorage) Save(_ context.Context, cart entity.Cart) error {
	data, err := cartjson.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.saves++
	return nil
}

// Load devuelve found=false si nunca se guardó nada.
func (s *CartStorage) Load(_ context.Context) (entity.Cart, bool, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if data == nil {
		return entity.Cart{}, false, nil
	}
	c, err := cartjson.Unmarshal(data)
	if err != nil {
		return entity.Cart{}, false, err
	}
	return c, true, nil
}

// Saves número de escrituras realizadas.
func (s *CartStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
