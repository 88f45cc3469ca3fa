package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	domcart "github.com/jhoicas/Storefront-cart/internal/domain/cart"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/pkg/logger"
)

// DefaultLookupTimeout tiempo máximo de una consulta al catálogo si no se configura otro.
const DefaultLookupTimeout = 5 * time.Second

// Listener recibe una copia del carrito después de cada mutación confirmada.
type Listener func(entity.Cart)

type listenerEntry struct {
	id int
	fn Listener
}

// Store fuente única de verdad del carrito. Es el único que escribe en el CartStorage y el único
// que consulta stock y precios al catálogo. Las vistas leen con Read y se suscriben con Subscribe.
//
// Cada mutación bloquea su producto desde la consulta de stock hasta el commit, así dos clics
// rápidos sobre el mismo producto nunca leen la misma cantidad; productos distintos avanzan en paralelo.
type Store struct {
	catalog repository.CatalogRepository
	storage repository.CartStorage
	log     *logger.Logger
	timeout time.Duration

	locks    *productLocks
	commitMu sync.Mutex // ordena aplicar → persistir → notificar

	mu        sync.RWMutex
	cart      entity.Cart
	listeners []listenerEntry
	nextID    int
}

// Option configura el Store.
type Option func(*Store)

// WithLookupTimeout límite para cada consulta al catálogo; al vencer se reporta ErrCatalogUnavailable.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewStore construye el Store y rehidrata el carrito desde storage (ranura vacía = carrito vacío).
func NewStore(
	ctx context.Context,
	catalog repository.CatalogRepository,
	storage repository.CartStorage,
	log *logger.Logger,
	opts ...Option,
) (*Store, error) {
	s := &Store{
		catalog: catalog,
		storage: storage,
		log:     log.Named("cart"),
		timeout: DefaultLookupTimeout,
		locks:   newProductLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}

	saved, found, err := storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: rehidratar carrito: %w", domain.ErrPersistenceFailure, err)
	}
	if found {
		s.cart = saved
	}
	s.log.Info().Bool("rehydrated", found).Int("items", s.cart.Len()).Msg("carrito inicializado")
	return s, nil
}

// Read devuelve una copia del carrito actual. No tiene efectos secundarios.
func (s *Store) Read() entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

// Subscribe registra un listener y devuelve la función para darlo de baja.
// Los listeners se ejecutan en orden de commit y no deben llamar a los mutadores del Store.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// AddProduct agrega una unidad del producto: 1 si no estaba, actual+1 si ya estaba.
// Falla con ErrOutOfStock si supera el stock; el carrito queda igual.
func (s *Store) AddProduct(ctx context.Context, productID int64) error {
	unlock := s.locks.lock(productID)
	defer unlock()

	stock, err := s.lookupStock(ctx, productID)
	if err != nil {
		return s.reject("add", productID, err)
	}

	current := s.Read()
	desired := domcart.NextAmount(current, productID)
	if err := domcart.CheckAmount(desired, stock); err != nil {
		return s.reject("add", productID, err)
	}

	item, exists := current.Find(productID)
	if exists {
		item.Amount = desired
	} else {
		product, err := s.lookupProduct(ctx, productID)
		if err != nil {
			return s.reject("add", productID, err)
		}
		item = entity.NewCartItem(*product, desired)
	}

	return s.commit(ctx, "add", productID, func(c entity.Cart) entity.Cart {
		return c.Upsert(item)
	})
}

// RemoveProduct quita la línea del producto. Falla con ErrProductNotInCart si no existe.
func (s *Store) RemoveProduct(ctx context.Context, productID int64) error {
	unlock := s.locks.lock(productID)
	defer unlock()

	if _, ok := s.Read().Find(productID); !ok {
		return s.reject("remove", productID, domain.ErrProductNotInCart)
	}
	return s.commit(ctx, "remove", productID, func(c entity.Cart) entity.Cart {
		return c.Remove(productID)
	})
}

// UpdateProductAmount fija la cantidad total de un producto del carrito.
// Orden de validación: cantidad <= 0 (ErrInvalidAmount), stock (ErrOutOfStock), existencia (ErrProductNotInCart).
// Una cantidad 0 se rechaza; para quitar un producto se usa RemoveProduct.
func (s *Store) UpdateProductAmount(ctx context.Context, in entity.AmountUpdate) error {
	if in.Amount <= 0 {
		return s.reject("update", in.ProductID, domain.ErrInvalidAmount)
	}
	unlock := s.locks.lock(in.ProductID)
	defer unlock()

	return s.setAmount(ctx, "update", in.ProductID, in.Amount)
}

// ChangeProductAmount suma delta a la cantidad confirmada más reciente del producto y aplica
// las mismas validaciones que UpdateProductAmount. Lo usan los botones +/- de la vista del carrito.
func (s *Store) ChangeProductAmount(ctx context.Context, productID int64, delta int) error {
	unlock := s.locks.lock(productID)
	defer unlock()

	item, ok := s.Read().Find(productID)
	if !ok {
		return s.reject("change", productID, domain.ErrProductNotInCart)
	}
	amount := item.Amount + delta
	if amount <= 0 {
		return s.reject("change", productID, domain.ErrInvalidAmount)
	}
	return s.setAmount(ctx, "change", productID, amount)
}

// setAmount requiere el lock del producto.
func (s *Store) setAmount(ctx context.Context, op string, productID int64, amount int) error {
	stock, err := s.lookupStock(ctx, productID)
	if err != nil {
		return s.reject(op, productID, err)
	}
	if err := domcart.CheckAmount(amount, stock); err != nil {
		return s.reject(op, productID, err)
	}
	if _, ok := s.Read().Find(productID); !ok {
		return s.reject(op, productID, domain.ErrProductNotInCart)
	}
	return s.commit(ctx, op, productID, func(c entity.Cart) entity.Cart {
		return c.WithAmount(productID, amount)
	})
}

// commit aplica mutate sobre el carrito más reciente, persiste el resultado y notifica a los listeners.
// Si la escritura falla el cambio en memoria se conserva y se devuelve ErrPersistenceFailure.
func (s *Store) commit(ctx context.Context, op string, productID int64, mutate func(entity.Cart) entity.Cart) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	next := mutate(s.cart)
	s.cart = next
	listeners := append([]listenerEntry(nil), s.listeners...)
	s.mu.Unlock()

	// El cambio ya es visible: la escritura no se cancela con el contexto del llamador.
	saveErr := s.storage.Save(context.WithoutCancel(ctx), next)

	for _, l := range listeners {
		l.fn(next.Clone())
	}

	if saveErr != nil {
		s.log.Error().Err(saveErr).Str("op", op).Int64("product_id", productID).Msg("no se pudo persistir el carrito")
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, saveErr)
	}
	s.log.Debug().Str("op", op).Int64("product_id", productID).Int("items", next.Len()).Msg("carrito actualizado")
	return nil
}

func (s *Store) lookupStock(ctx context.Context, productID int64) (entity.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stock, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return entity.Stock{}, catalogError(err)
	}
	if stock == nil {
		return entity.Stock{}, domain.ErrProductNotFound
	}
	return *stock, nil
}

func (s *Store) lookupProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, catalogError(err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// catalogError normaliza los errores del catálogo: todo lo que no sea "producto inexistente"
// (red, timeout, SQL) se reporta como ErrCatalogUnavailable.
func catalogError(err error) error {
	if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrCatalogUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
}

func (s *Store) reject(op string, productID int64, err error) error {
	ev := s.log.Info()
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		ev = s.log.Warn()
	}
	ev.Err(err).Str("op", op).Int64("product_id", productID).Msg("operación de carrito rechazada")
	return err
}
