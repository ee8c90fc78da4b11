package pipeline

import (
	"context"
	"time"

	"github.com/kurochkinivan/document_uploader/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

type RecordProvider interface {
	UploadByFileID(ctx context.Context, fileID int64) (*domain.UploadRecord, error)
}

type OutcomeSaver interface {
	SaveOutcome(ctx context.Context, outcome *domain.Outcome) error
}

type AttemptRecorder interface {
	SaveAttempt(ctx context.Context, outcome *domain.Outcome) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UploadClient interface {
	RequestSlot(ctx context.Context, req domain.SlotRequest) (*domain.SlotResponse, error)
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResponse, error)
}

type UploadObserver interface {
	ObserveUpload(result string, duration time.Duration)
}

type Processor interface {
	Process(ctx context.Context, fileID int64) bool
}

type DeliveryObserver interface {
	ObserveDelivery(outcome string)
}

// DeliveryChannel is the part of *amqp.Channel the consumer relies on.
type DeliveryChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp.Table,
	) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
	Close() error
}
