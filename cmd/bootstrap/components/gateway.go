package components

import (
	"order-assembly/internal/infra/catalog"
	"order-assembly/internal/infra/queue"
	"order-assembly/internal/pkg/config"
	"order-assembly/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(commands.CatalogGateway)),
		),
		fx.Annotate(
			NewQueuePublisher,
			fx.As(new(commands.QueuePublisher)),
		),
	),
)

func NewCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}

func NewQueuePublisher(client *sqs.Client, cfg config.Config) *queue.Publisher {
	return queue.NewPublisher(client, cfg.Queue)
}
