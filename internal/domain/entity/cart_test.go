package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
)

func item(id int64, price string, amount int) entity.CartItem {
	return entity.CartItem{ProductID: id, Title: "p", Price: decimal.RequireFromString(price), Amount: amount}
}

func ids(c entity.Cart) []int64 {
	out := make([]int64, 0, c.Len())
	for _, it := range c.Items {
		out = append(out, it.ProductID)
	}
	return out
}

func TestCart_UpsertConservaOrden(t *testing.T) {
	c := entity.Cart{}.Upsert(item(1, "10", 1)).Upsert(item(2, "5", 1)).Upsert(item(3, "1", 1))
	c = c.Upsert(item(2, "5", 4))

	assert.Equal(t, []int64{1, 2, 3}, ids(c), "actualizar no cambia la posición")
	it, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, 4, it.Amount)
}

func TestCart_OperacionesNoModificanElReceptor(t *testing.T) {
	orig := entity.Cart{Items: []entity.CartItem{item(1, "10", 1), item(2, "5", 2)}}

	_ = orig.WithAmount(1, 5)
	_ = orig.Remove(2)
	_ = orig.Upsert(item(3, "1", 1))
	clone := orig.Clone()
	clone.Items[0].Amount = 99

	assert.Equal(t, []int64{1, 2}, ids(orig))
	assert.Equal(t, 1, orig.Items[0].Amount)
}

func TestCart_WithAmountSobreProductoAusente(t *testing.T) {
	c := entity.Cart{Items: []entity.CartItem{item(1, "10", 1)}}
	assert.Equal(t, c, c.WithAmount(9, 3))
}

func TestCart_Remove(t *testing.T) {
	c := entity.Cart{Items: []entity.CartItem{item(1, "10", 1), item(2, "5", 2), item(3, "1", 1)}}
	assert.Equal(t, []int64{1, 3}, ids(c.Remove(2)))
	assert.Equal(t, []int64{1, 2, 3}, ids(c.Remove(42)))
}

func TestCart_TotalYSubtotales(t *testing.T) {
	c := entity.Cart{Items: []entity.CartItem{item(1, "179.90", 2), item(2, "139.90", 1)}}

	assert.True(t, decimal.RequireFromString("359.80").Equal(c.Items[0].Subtotal()))
	assert.True(t, decimal.RequireFromString("499.70").Equal(c.Total()))
	assert.True(t, entity.Cart{}.Total().IsZero())
}

func TestCart_AmountByProduct(t *testing.T) {
	c := entity.Cart{Items: []entity.CartItem{item(1, "1", 2), item(5, "1", 1)}}
	assert.Equal(t, map[int64]int{1: 2, 5: 1}, c.AmountByProduct())
}

func TestNewCartItem(t *testing.T) {
	p := entity.Product{ID: 4, Title: "Tênis", Price: decimal.NewFromInt(100), Image: "https://img/4.jpg"}
	it := entity.NewCartItem(p, 1)
	assert.Equal(t, int64(4), it.ProductID)
	assert.Equal(t, "Tênis", it.Title)
	assert.Equal(t, "https://img/4.jpg", it.Image)
	assert.Equal(t, 1, it.Amount)
}
