package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductLocks_LiberaEntradasSinUso(t *testing.T) {
	locks := newProductLocks()

	unlockA := locks.lock(1)
	unlockB := locks.lock(2)
	assert.Equal(t, 2, locks.size())

	unlockA()
	unlockB()
	assert.Equal(t, 0, locks.size())
}

func TestProductLocks_SerializaElMismoProducto(t *testing.T) {
	locks := newProductLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(7)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, locks.size())
}
