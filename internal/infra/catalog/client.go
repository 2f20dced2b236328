package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"order-assembly/internal/domain/order"
	"order-assembly/internal/pkg/config"
	"order-assembly/internal/pkg/errs"
	"order-assembly/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Client looks up SKU metadata over HTTP (GET /catalog/sku/{sku}). Each call
// is bounded by the configured per-lookup timeout.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	maxInFlight int
}

func NewClient(cfg config.CatalogConfig) *Client {
	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{},
		timeout:     cfg.LookupTimeout,
		maxInFlight: maxInFlight,
	}
}

// Enrich fans the lookups out concurrently. The first failure cancels the
// remaining lookups and is returned as an *commands.EnrichmentError; the
// result slice preserves the input item order regardless of completion order.
func (c *Client) Enrich(ctx context.Context, items []order.LineItem) ([]order.EnrichedLineItem, error) {
	enriched := make([]order.EnrichedLineItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxInFlight)
	for i, item := range items {
		g.Go(func() error {
			metadata, err := c.lookup(gctx, item.SKU)
			if err != nil {
				return &commands.EnrichmentError{SKU: item.SKU, Cause: err}
			}
			enriched[i] = order.EnrichedLineItem{LineItem: item, Metadata: metadata}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (c *Client) lookup(ctx context.Context, sku string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	lookupURL := c.baseURL + "/catalog/sku/" + url.PathEscape(sku)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to build catalog request"), errs.ErrCatalogUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.Mark(
				errs.New(fmt.Sprintf("catalog lookup for SKU %s timed out after %s", sku, c.timeout)),
				errs.ErrCatalogTimeout,
			)
		}
		return nil, errs.Mark(errs.Wrapf(err, "catalog lookup for SKU %s failed", sku), errs.ErrCatalogUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to read catalog response"), errs.ErrCatalogUnavailable)
		}
		return json.RawMessage(body), nil
	case http.StatusNotFound:
		return nil, errs.Mark(errs.New(fmt.Sprintf("SKU %s not found in catalog", sku)), errs.ErrSKUNotFound)
	default:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("catalog returned unexpected status %d for SKU %s", resp.StatusCode, sku)),
			errs.ErrCatalogUnavailable,
		)
	}
}
