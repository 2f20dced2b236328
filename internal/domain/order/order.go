package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type LineItem struct {
	SKU      string
	Quantity int
}

// OrderRequest is a fully validated inbound order. It lives for exactly one
// pipeline invocation and is immutable once built.
type OrderRequest struct {
	OrderID    string
	CustomerID string
	Items      []LineItem
	OrderTS    time.Time
}

// EnrichedLineItem only exists when its catalog lookup succeeded; there is no
// partially enriched order.
type EnrichedLineItem struct {
	LineItem
	Metadata json.RawMessage
}

// AssembledOrder is the publish payload: the validated order, its enriched
// items, and a fresh assembly identity. It is never retained after the
// publish attempt.
type AssembledOrder struct {
	OrderID     string
	CustomerID  string
	Items       []EnrichedLineItem
	OrderTS     time.Time
	AssemblyID  uuid.UUID
	AssembledAt time.Time
}

// Assemble stamps a validated, enriched order with a fresh assembly UUID and
// timestamp. Every invocation gets a new identifier, even for identical
// payloads.
func Assemble(req OrderRequest, enriched []EnrichedLineItem, now time.Time) AssembledOrder {
	return AssembledOrder{
		OrderID:     req.OrderID,
		CustomerID:  req.CustomerID,
		Items:       enriched,
		OrderTS:     req.OrderTS,
		AssemblyID:  uuid.New(),
		AssembledAt: now,
	}
}

// PublishReceipt is the queue-assigned message identifier returned on a
// successful publish.
type PublishReceipt struct {
	MessageID string
}
