package queue

import (
	"context"
	"encoding/json"
	"time"

	"order-assembly/internal/domain/order"
	"order-assembly/internal/pkg/config"
	"order-assembly/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SendMessageAPI is the slice of the SQS client the publisher needs.
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type Publisher struct {
	client   SendMessageAPI
	queueURL string
}

func NewSQSClient(ctx context.Context, cfg config.QueueConfig) (*sqs.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS config")
	}
	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewPublisher(client SendMessageAPI, cfg config.QueueConfig) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: cfg.QueueURL,
	}
}

// canonical message body; order_id and customer_id ride along as message
// attributes for attribute-based consumers
type messageBody struct {
	OrderID     string        `json:"order_id"`
	CustomerID  string        `json:"customer_id"`
	Items       []messageItem `json:"items"`
	OrderTS     string        `json:"order_ts"`
	AssemblyID  string        `json:"assembly_id"`
	AssembledAt string        `json:"assembled_at"`
}

type messageItem struct {
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Metadata json.RawMessage `json:"metadata"`
}

func (p *Publisher) Publish(ctx context.Context, assembled order.AssembledOrder) (*order.PublishReceipt, error) {
	items := make([]messageItem, len(assembled.Items))
	for i, it := range assembled.Items {
		items[i] = messageItem{
			SKU:      it.SKU,
			Quantity: it.Quantity,
			Metadata: it.Metadata,
		}
	}

	body, err := json.Marshal(messageBody{
		OrderID:     assembled.OrderID,
		CustomerID:  assembled.CustomerID,
		Items:       items,
		OrderTS:     assembled.OrderTS.UTC().Format(time.RFC3339),
		AssemblyID:  assembled.AssemblyID.String(),
		AssembledAt: assembled.AssembledAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to serialize assembled order"), errs.ErrQueuePublishFailed)
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"order_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(assembled.OrderID),
			},
			"customer_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(assembled.CustomerID),
			},
		},
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to send message to SQS"), errs.ErrQueuePublishFailed)
	}
	if out.MessageId == nil || *out.MessageId == "" {
		return nil, errs.Mark(errs.New("SQS returned an empty message id"), errs.ErrQueuePublishFailed)
	}

	return &order.PublishReceipt{MessageID: *out.MessageId}, nil
}
