package order

import (
	"fmt"
	"math"
	"time"
)

// RawPayload mirrors the inbound JSON document before any validation. Pointer
// fields distinguish absent from empty.
type RawPayload struct {
	OrderID    *string
	CustomerID *string
	Items      []RawItem
	OrderTS    *string
}

type RawItem struct {
	SKU      *string
	Quantity *float64
}

// Validate checks the payload exhaustively: every structural violation is
// collected, never just the first one. On success the returned details slice
// is empty and the OrderRequest is ready for enrichment.
func Validate(p RawPayload) (*OrderRequest, []string) {
	var details []string

	if p.OrderID == nil || *p.OrderID == "" {
		details = append(details, "order_id is required and must be a non-empty string")
	}
	if p.CustomerID == nil || *p.CustomerID == "" {
		details = append(details, "customer_id is required and must be a non-empty string")
	}
	if len(p.Items) == 0 {
		details = append(details, "items is required and must be a non-empty array")
	}

	items := make([]LineItem, 0, len(p.Items))
	for i, it := range p.Items {
		itemOK := true
		if it.SKU == nil || *it.SKU == "" {
			details = append(details, fmt.Sprintf("items[%d].sku is required and must be a non-empty string", i))
			itemOK = false
		}
		// values at or beyond 2^63 would wrap negative when converted to int
		if it.Quantity == nil || *it.Quantity <= 0 ||
			*it.Quantity != math.Trunc(*it.Quantity) || *it.Quantity >= math.MaxInt64 {
			details = append(details, fmt.Sprintf("items[%d].quantity is required and must be a number greater than zero", i))
			itemOK = false
		}
		if itemOK {
			items = append(items, LineItem{SKU: *it.SKU, Quantity: int(*it.Quantity)})
		}
	}

	var orderTS time.Time
	if p.OrderTS == nil {
		details = append(details, "order_ts is required and must be a valid ISO-8601 timestamp")
	} else {
		ts, err := time.Parse(time.RFC3339, *p.OrderTS)
		if err != nil {
			details = append(details, "order_ts is required and must be a valid ISO-8601 timestamp")
		} else {
			orderTS = ts
		}
	}

	if len(details) > 0 {
		return nil, details
	}

	return &OrderRequest{
		OrderID:    *p.OrderID,
		CustomerID: *p.CustomerID,
		Items:      items,
		OrderTS:    orderTS,
	}, nil
}
