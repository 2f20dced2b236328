package commands

import (
	"context"
	"log/slog"

	"order-assembly/internal/domain/order"
	reqdto "order-assembly/internal/handler/dto/request"
	"order-assembly/internal/pkg/clock"
	"order-assembly/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type AssembleResult struct {
	OrderID    string
	AssemblyID uuid.UUID
	MessageID  string
}

type OrderCommands interface {
	Assemble(ctx context.Context, req reqdto.AssembleOrderRequest) (*AssembleResult, error)
}

type assemblyPipeline struct {
	catalog CatalogGateway
	queue   QueuePublisher
	clock   clock.Clock
}

func NewOrderCommands(catalog CatalogGateway, queue QueuePublisher, clock clock.Clock) OrderCommands {
	return &assemblyPipeline{
		catalog: catalog,
		queue:   queue,
		clock:   clock,
	}
}

// Assemble runs the validated → enriched → assembled → published stages in
// order. Authentication has already happened in the transport middleware.
// Failures return a *StageError; any other error is an unanticipated internal
// failure and maps to 500 at the boundary.
func (p *assemblyPipeline) Assemble(ctx context.Context, req reqdto.AssembleOrderRequest) (*AssembleResult, error) {
	validated, details := order.Validate(req.ToPayload())
	if len(details) > 0 {
		return nil, newValidationFailure(details)
	}

	enriched, err := p.catalog.Enrich(ctx, validated.Items)
	if err != nil {
		var enrichErr *EnrichmentError
		if errors.As(err, &enrichErr) {
			return nil, newEnrichmentFailure(enrichErr)
		}
		return nil, errs.Wrap(err, "catalog enrichment failed unexpectedly")
	}

	assembled := order.Assemble(*validated, enriched, p.clock.Now())

	receipt, err := p.queue.Publish(ctx, assembled)
	if err != nil {
		return nil, newPublishFailure(err)
	}

	slog.Info("order assembled and published",
		"order_id", assembled.OrderID,
		"assembly_id", assembled.AssemblyID.String(),
		"items", len(assembled.Items),
		"message_id", receipt.MessageID,
	)

	return &AssembleResult{
		OrderID:    assembled.OrderID,
		AssemblyID: assembled.AssemblyID,
		MessageID:  receipt.MessageID,
	}, nil
}
