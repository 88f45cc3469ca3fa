package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Storefront-cart/internal/domain"
	"github.com/jhoicas/Storefront-cart/internal/domain/entity"
	"github.com/jhoicas/Storefront-cart/internal/domain/repository"
)

// Verificar en tiempo de compilación que Client implementa CatalogRepository.
var _ repository.CatalogRepository = (*Client)(nil)

// maxBody límite de lectura de respuestas (el catálogo completo cabe de sobra).
const maxBody = 1 << 20

// Client adaptador del servicio de catálogo remoto (API estilo json-server):
//
//	GET /products      -> [{id, title, price, image}]
//	GET /products/{id} -> {id, title, price, image}
//	GET /stock/{id}    -> {id, amount}
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout aplica a cada petición HTTP.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type productPayload struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image}
}

type stockPayload struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// List obtiene todos los productos.
func (c *Client) List(ctx context.Context) ([]entity.Product, error) {
	var payload []productPayload
	if err := c.getJSON(ctx, "/products", &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// GetByID obtiene un producto; 404 -> domain.ErrProductNotFound.
func (c *Client) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var payload productPayload
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &payload); err != nil {
		return nil, err
	}
	p := payload.toEntity()
	return &p, nil
}

// Get obtiene el stock de un producto; 404 -> domain.ErrProductNotFound.
func (c *Client) Get(ctx context.Context, productID int64) (*entity.Stock, error) {
	var payload stockPayload
	if err := c.getJSON(ctx, "/stock/"+strconv.FormatInt(productID, 10), &payload); err != nil {
		return nil, err
	}
	if payload.Amount < 0 {
		return nil, fmt.Errorf("%w: stock negativo para producto %d", domain.ErrCatalogUnavailable, productID)
	}
	return &entity.Stock{ProductID: productID, Amount: payload.Amount}, nil
}

// getJSON hace GET baseURL+path y decodifica la respuesta en out.
// Errores de red, timeouts y códigos distintos de 2xx/404 se envuelven en domain.ErrCatalogUnavailable.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catálogo: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrCatalogUnavailable, ctx.Err())
		}
		return fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrCatalogUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrProductNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: GET %s respondió %d", domain.ErrCatalogUnavailable, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("%w: JSON inválido en %s (offset %d)", domain.ErrCatalogUnavailable, path, syntaxErr.Offset)
		}
		return fmt.Errorf("%w: decodificar %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	return nil
}
