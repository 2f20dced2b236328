package bootstrap

import (
	"context"

	"order-assembly/internal/infra/queue"
	"order-assembly/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewSQSClient,
	),
)

func NewSQSClient(cfg config.Config) (*sqs.Client, error) {
	return queue.NewSQSClient(context.Background(), cfg.Queue)
}
