package request

import (
	"order-assembly/internal/domain/order"
)

// Pointer fields keep absent and empty distinguishable; the exhaustive
// validator in the domain reports every violation, so no binding tags here.
type AssembleOrderRequest struct {
	OrderID    *string             `json:"order_id"`
	CustomerID *string             `json:"customer_id"`
	Items      []AssembleOrderItem `json:"items"`
	OrderTS    *string             `json:"order_ts"`
}

type AssembleOrderItem struct {
	SKU      *string  `json:"sku"`
	Quantity *float64 `json:"quantity"`
}

func (r *AssembleOrderRequest) ToPayload() order.RawPayload {
	items := make([]order.RawItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.RawItem{SKU: it.SKU, Quantity: it.Quantity}
	}
	return order.RawPayload{
		OrderID:    r.OrderID,
		CustomerID: r.CustomerID,
		Items:      items,
		OrderTS:    r.OrderTS,
	}
}
