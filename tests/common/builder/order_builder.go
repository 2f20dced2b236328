//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"order-assembly/internal/domain/order"
	reqdto "order-assembly/internal/handler/dto/request"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderID    string
	CustomerID string
	SKUs       []string
	Quantities []int
	OrderTS    string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:    "O1",
		CustomerID: "C1",
		SKUs:       []string{"SKU100"},
		Quantities: []int{2},
		OrderTS:    "2025-01-31T10:00:00Z",
	}
}

func (b *OrderBuilder) WithItems(skus []string, quantities []int) *OrderBuilder {
	b.SKUs = skus
	b.Quantities = quantities
	return b
}

// Build methods
func (b *OrderBuilder) BuildRequestDTO() reqdto.AssembleOrderRequest {
	items := make([]reqdto.AssembleOrderItem, len(b.SKUs))
	for i := range b.SKUs {
		sku := b.SKUs[i]
		qty := float64(b.Quantities[i])
		items[i] = reqdto.AssembleOrderItem{SKU: &sku, Quantity: &qty}
	}
	orderID := b.OrderID
	customerID := b.CustomerID
	orderTS := b.OrderTS
	return reqdto.AssembleOrderRequest{
		OrderID:    &orderID,
		CustomerID: &customerID,
		Items:      items,
		OrderTS:    &orderTS,
	}
}

func (b *OrderBuilder) BuildDomain() order.OrderRequest {
	items := make([]order.LineItem, len(b.SKUs))
	for i := range b.SKUs {
		items[i] = order.LineItem{SKU: b.SKUs[i], Quantity: b.Quantities[i]}
	}
	ts, _ := time.Parse(time.RFC3339, b.OrderTS)
	return order.OrderRequest{
		OrderID:    b.OrderID,
		CustomerID: b.CustomerID,
		Items:      items,
		OrderTS:    ts,
	}
}

func (b *OrderBuilder) BuildEnriched() []order.EnrichedLineItem {
	domain := b.BuildDomain()
	enriched := make([]order.EnrichedLineItem, len(domain.Items))
	for i, it := range domain.Items {
		enriched[i] = order.EnrichedLineItem{
			LineItem: it,
			Metadata: json.RawMessage(`{"sku":"` + it.SKU + `","name":"Test Product"}`),
		}
	}
	return enriched
}

func (b *OrderBuilder) BuildAssembled(assembledAt time.Time) order.AssembledOrder {
	domain := b.BuildDomain()
	return order.AssembledOrder{
		OrderID:     domain.OrderID,
		CustomerID:  domain.CustomerID,
		Items:       b.BuildEnriched(),
		OrderTS:     domain.OrderTS,
		AssemblyID:  uuid.New(),
		AssembledAt: assembledAt,
	}
}
