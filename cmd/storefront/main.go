package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Storefront-cart/internal/application/cart"
	"github.com/jhoicas/Storefront-cart/internal/application/view"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/catalogapi"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/filestore"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/memory"
	"github.com/jhoicas/Storefront-cart/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Storefront-cart/internal/interfaces/http"
	"github.com/jhoicas/Storefront-cart/pkg/config"
	"github.com/jhoicas/Storefront-cart/pkg/logger"
	"github.com/jhoicas/Storefront-cart/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog_driver", cfg.Catalog.Driver).
		Str("storage_driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.UsesPostgres() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	catalog, err := buildCatalog(cfg.Catalog, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo")
	}
	storage := buildStorage(cfg.Storage, pool)

	formatter, err := money.NewFormatter(cfg.Price.Locale, cfg.Price.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de precios")
	}

	store, err := cart.NewStore(ctx, catalog, storage, log, cart.WithLookupTimeout(cfg.Catalog.Timeout))
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar carrito")
	}

	catalogView := view.NewCatalogView(store, catalog, formatter, log)
	defer catalogView.Close()
	cartView := view.NewCartView(store, formatter, log)
	defer cartView.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogView: catalogView,
		CartView:    cartView,
	})

	g, gctx := errgroup.WithContext(ctx)

	// Precarga del catálogo; si falla, la primera petición reintenta.
	g.Go(func() error {
		if notice := catalogView.Load(gctx); notice != nil {
			log.Warn().Str("code", notice.Code).Msg("precarga del catálogo fallida")
		}
		return nil
	})

	g.Go(func() error {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func buildCatalog(cfg config.CatalogConfig, pool *pgxpool.Pool) (repository.CatalogRepository, error) {
	switch cfg.Driver {
	case config.CatalogDriverPostgres:
		return postgres.NewCatalogRepository(pool), nil
	case config.CatalogDriverMemory:
		repo, err := memory.LoadCatalogSeed(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return catalogapi.NewClient(cfg.BaseURL, cfg.Timeout), nil
	}
}

func buildStorage(cfg config.StorageConfig, pool *pgxpool.Pool) repository.CartStorage {
	switch cfg.Driver {
	case config.StorageDriverPostgres:
		return postgres.NewCartStorageRepository(pool, cfg.Key)
	case config.StorageDriverMemory:
		return memory.NewCartStorage()
	default:
		return filestore.NewCartStorage(cfg.Path, cfg.Key)
	}
}
