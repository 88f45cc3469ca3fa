package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/memory"
)

const seed = `{
  "products": [
    {"id": 1, "title": "Tênis de Caminhada Leve Confortável", "price": 179.9, "image": "https://img/1.jpg"},
    {"id": 2, "title": "Tênis VR Caminhada Confortável", "price": 139.9, "image": "https://img/2.jpg"}
  ],
  "stock": [
    {"id": 1, "amount": 3},
    {"id": 2, "amount": 5}
  ]
}`

func TestLoadCatalogSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	repo, err := memory.LoadCatalogSeed(path)
	require.NoError(t, err)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.True(t, decimal.RequireFromString("179.9").Equal(list[0].Price))

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Tênis VR Caminhada Confortável", p.Title)

	s, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Amount)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLoadCatalogSeed_ArchivoInexistente(t *testing.T) {
	_, err := memory.LoadCatalogSeed(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseCatalogSeed_JSONInvalido(t *testing.T) {
	_, err := memory.ParseCatalogSeed(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestCatalogRepo_StockLevelsOrdenado(t *testing.T) {
	repo, err := memory.ParseCatalogSeed(strings.NewReader(seed))
	require.NoError(t, err)
	repo.SetStock(9, 4)

	assert.Equal(t, []entity.Stock{
		{ProductID: 1, Amount: 3},
		{ProductID: 2, Amount: 5},
		{ProductID: 9, Amount: 4},
	}, repo.StockLevels())
}

func TestCatalogRepo_SetStock(t *testing.T) {
	repo := memory.NewCatalogRepository(nil, []entity.Stock{{ProductID: 1, Amount: 1}})
	repo.SetStock(1, 10)

	s, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Amount)
}

func TestCartStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := memory.NewCartStorage()

	_, found, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found, "ranura vacía al inicio")

	c := entity.Cart{Items: []entity.CartItem{
		{ProductID: 2, Title: "b", Price: decimal.NewFromInt(2), Amount: 1},
		{ProductID: 1, Title: "a", Price: decimal.NewFromInt(1), Amount: 3},
	}}
	require.NoError(t, st.Save(ctx, c))

	got, found, err := st.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(2), got.Items[0].ProductID)
	assert.Equal(t, 3, got.Items[1].Amount)
	assert.Equal(t, 1, st.Saves())
}
