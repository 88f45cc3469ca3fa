// seed_catalog carga productos y stock en PostgreSQL a partir de un archivo JSON
// con el formato de json-server ({"products": [...], "stock": [...]}).
//
// Uso: go run ./cmd/seed_catalog [ruta/server.json]
// Por defecto usa CATALOG_SEED_PATH (server.json). Archivos exportados en ISO-8859-1 se convierten a UTF-8.
package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Storefront-cart/internal/infrastructure/memory"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/postgres"
	"github.com/jhoicas/Storefront-cart/pkg/config"
	"github.com/jhoicas/Storefront-cart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed_catalog")

	seedPath := cfg.Catalog.SeedPath
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", seedPath).Msg("leer semilla")
	}

	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		log.Info().Msg("semilla en ISO-8859-1, convirtiendo a UTF-8")
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	seed, err := memory.ParseCatalogSeed(r)
	if err != nil {
		log.Fatal().Err(err).Msg("parsear semilla")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	products, err := seed.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos de la semilla")
	}
	levels := seed.StockLevels()

	err = postgres.NewTxRunner(pool).RunCatalog(ctx, func(productRepo *postgres.ProductRepo, stockRepo *postgres.StockRepo) error {
		for _, p := range products {
			if err := productRepo.Upsert(ctx, p); err != nil {
				return err
			}
		}
		for _, s := range levels {
			if err := stockRepo.Upsert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}

	log.Info().Int("products", len(products)).Int("stock", len(levels)).Msg("catálogo cargado")
}
