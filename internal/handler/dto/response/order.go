package response

import (
	"time"

	"order-assembly/internal/usecase/commands"
)

type AssembleOrderResponse struct {
	Success      bool   `json:"success"`
	OrderID      string `json:"order_id"`
	AssemblyID   string `json:"assembly_id"`
	Message      string `json:"message"`
	SQSMessageID string `json:"sqs_message_id"`
}

func FromAssembleResult(r *commands.AssembleResult) *AssembleOrderResponse {
	return &AssembleOrderResponse{
		Success:      true,
		OrderID:      r.OrderID,
		AssemblyID:   r.AssemblyID.String(),
		Message:      "Order assembled and published successfully",
		SQSMessageID: r.MessageID,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func NewHealthResponse(now time.Time, version string) *HealthResponse {
	return &HealthResponse{
		Status:    "healthy",
		Service:   "order-assembly-service",
		Timestamp: now.UTC().Format(time.RFC3339),
		Version:   version,
	}
}
