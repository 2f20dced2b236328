package commands

import (
	"context"

	"order-assembly/internal/domain/order"
)

// CatalogGateway performs the per-item metadata lookups. The contract is
// all-or-nothing: the first failed lookup aborts the whole enrichment and is
// reported as an *EnrichmentError; on success the output preserves the input
// item order.
type CatalogGateway interface {
	Enrich(ctx context.Context, items []order.LineItem) ([]order.EnrichedLineItem, error)
}

// QueuePublisher hands an assembled order to the message queue. No retry is
// attempted here; retry policy belongs to the caller.
type QueuePublisher interface {
	Publish(ctx context.Context, assembled order.AssembledOrder) (*order.PublishReceipt, error)
}

// EnrichmentError identifies the first line item whose catalog lookup failed.
type EnrichmentError struct {
	SKU   string
	Cause error
}

func (e *EnrichmentError) Error() string {
	return "enrichment failed for sku " + e.SKU + ": " + e.Cause.Error()
}

func (e *EnrichmentError) Unwrap() error {
	return e.Cause
}
