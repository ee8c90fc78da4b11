package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/document_uploader/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher puts upload work items on the queue through the default exchange.
type Publisher struct {
	channel publishChannel
	queue   string
}

func NewPublisher(channel publishChannel, queue string) *Publisher {
	return &Publisher{
		channel: channel,
		queue:   queue,
	}
}

func (p *Publisher) PublishUpload(ctx context.Context, fileID int64) error {
	body, err := json.Marshal(domain.UploadWorkItem{FileID: fileID})
	if err != nil {
		return fmt.Errorf("failed to marshal work item: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish work item for file %d: %w", fileID, err)
	}

	return nil
}
