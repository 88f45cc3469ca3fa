package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/cartjson"
)

var _ repository.CartStorage = (*CartStorage)(nil)

// CartStorage guarda el carrito en un archivo JSON clave → valor (similar a localStorage).
// Cada escritura reemplaza el archivo completo con un archivo temporal + rename.
type CartStorage struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewCartStorage construye el adaptador. El directorio de path se crea en la primera escritura.
func NewCartStorage(path, key string) *CartStorage {
	return &CartStorage{path: path, key: key}
}

// Save escribe el carrito en la ranura key sin tocar las demás claves del archivo.
func (s *CartStorage) Save(ctx context.Context, cart entity.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := cartjson.Marshal(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.readSlots()
	if err != nil {
		return err
	}
	slots[s.key] = payload

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar archivo de carrito: %w", err)
	}
	return s.writeAtomic(data)
}

// Load lee la ranura key. found=false si el archivo o la clave no existen.
func (s *CartStorage) Load(ctx context.Context) (entity.Cart, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.Cart{}, false, err
	}
	s.mu.Lock()
	slots, err := s.readSlots()
	s.mu.Unlock()
	if err != nil {
		return entity.Cart{}, false, err
	}
	payload, ok := slots[s.key]
	if !ok {
		return entity.Cart{}, false, nil
	}
	c, err := cartjson.Unmarshal(payload)
	if err != nil {
		return entity.Cart{}, false, err
	}
	return c, true, nil
}

func (s *CartStorage) readSlots() (map[string]json.RawMessage, error) {
	slots := map[string]json.RawMessage{}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return slots, nil
		}
		return nil, fmt.Errorf("leer archivo de carrito: %w", err)
	}
	if len(raw) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("parsear archivo de carrito: %w", err)
	}
	return slots, nil
}

func (s *CartStorage) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de carrito: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".cart-*.tmp")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir archivo temporal: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync archivo temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("reemplazar archivo de carrito: %w", err)
	}
	return nil
}
