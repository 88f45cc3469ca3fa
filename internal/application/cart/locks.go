package cart

import "sync"

// productLocks mutex por producto con conteo de referencias; las entradas se liberan al quedar sin uso.
type productLocks struct {
	mu    sync.Mutex
	locks map[int64]*productLock
}

type productLock struct {
	mu   sync.Mutex
	refs int
}

func newProductLocks() *productLocks {
	return &productLocks{locks: make(map[int64]*productLock)}
}

// lock bloquea el producto y devuelve la función que lo libera.
func (p *productLocks) lock(productID int64) func() {
	p.mu.Lock()
	l, ok := p.locks[productID]
	if !ok {
		l = &productLock{}
		p.locks[productID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, productID)
		}
		p.mu.Unlock()
	}
}

func (p *productLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
