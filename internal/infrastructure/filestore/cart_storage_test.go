package filestore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/filestore"
)

const testKey = "@RocketShoes:cart"

func sampleCart() entity.Cart {
	return entity.Cart{Items: []entity.CartItem{
		{ProductID: 5, Title: "Tênis", Price: decimal.RequireFromString("139.90"), Image: "https://img/5.jpg", Amount: 2},
		{ProductID: 1, Title: "Sapato", Price: decimal.RequireFromString("99.90"), Image: "https://img/1.jpg", Amount: 1},
	}}
}

func TestCartStorage_LoadSinArchivo(t *testing.T) {
	st := filestore.NewCartStorage(filepath.Join(t.TempDir(), "data", "cart.json"), testKey)

	c, found, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, c.Items)
}

func TestCartStorage_RoundTripEntreInstancias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cart.json")
	ctx := context.Background()

	require.NoError(t, filestore.NewCartStorage(path, testKey).Save(ctx, sampleCart()))

	// una instancia nueva simula un reinicio del proceso
	got, found, err := filestore.NewCartStorage(path, testKey).Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(5), got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Amount)
	assert.Equal(t, int64(1), got.Items[1].ProductID)
	assert.True(t, decimal.RequireFromString("99.9").Equal(got.Items[1].Price))
}

func TestCartStorage_ConservaOtrasClaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"otra":"valor"}`), 0o600))

	require.NoError(t, filestore.NewCartStorage(path, testKey).Save(context.Background(), sampleCart()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var slots map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &slots))
	assert.JSONEq(t, `"valor"`, string(slots["otra"]))
	assert.Contains(t, slots, testKey)
}

func TestCartStorage_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{corrupto`), 0o600))

	_, _, err := filestore.NewCartStorage(path, testKey).Load(context.Background())
	assert.Error(t, err)
}

func TestCartStorage_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := filestore.NewCartStorage(filepath.Join(t.TempDir(), "cart.json"), testKey).Save(ctx, sampleCart())
	assert.ErrorIs(t, err, context.Canceled)
}
