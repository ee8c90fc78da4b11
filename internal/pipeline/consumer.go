package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kurochkinivan/document_uploader/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DeliveryAcked     = "acked"
	DeliveryRejected  = "rejected"
	DeliveryMalformed = "malformed"
	DeliveryRequeued  = "requeued"
)

var ErrDeliveriesClosed = errors.New("delivery channel closed by broker")

// Consumer reads upload work items from a single queue and settles every
// delivery according to the processor's result. It owns its channel and
// closes it before Run returns.
type Consumer struct {
	log       *slog.Logger
	channel   DeliveryChannel
	queue     string
	tag       string
	workers   int
	processor Processor
	observer  DeliveryObserver
}

func NewConsumer(
	log *slog.Logger,
	channel DeliveryChannel,
	queue, tag string,
	workers int,
	processor Processor,
	observer DeliveryObserver,
) *Consumer {
	return &Consumer{
		log:       log,
		channel:   channel,
		queue:     queue,
		tag:       tag,
		workers:   max(workers, 1),
		processor: processor,
		observer:  observer,
	}
}

// Run consumes until ctx is done or the broker closes the delivery stream.
// On shutdown it stops the subscription and waits for in-flight deliveries;
// they are processed with a context that is never cancelled.
func (c *Consumer) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := c.channel.Close(); closeErr != nil && !errors.Is(closeErr, amqp.ErrClosed) {
			err = errors.Join(err, fmt.Errorf("failed to close channel: %w", closeErr))
		}
	}()

	if err := c.channel.Qos(c.workers, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch count: %w", err)
	}

	deliveries, err := c.channel.Consume(c.queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %q: %w", c.queue, err)
	}

	c.log.InfoContext(ctx, "consuming queue",
		slog.String("queue", c.queue),
		slog.String("consumer_tag", c.tag),
		slog.Int("workers", c.workers),
	)

	var wg sync.WaitGroup
	for range c.workers {
		wg.Go(func() {
			c.work(ctx, deliveries)
		})
	}

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		return ErrDeliveriesClosed
	case <-ctx.Done():
	}

	c.log.InfoContext(ctx, "stopping consumer, waiting for in-flight deliveries")

	if err := c.channel.Cancel(c.tag, false); err != nil {
		c.log.WarnContext(ctx, "failed to cancel consumer, closing channel", slog.String("err", err.Error()))

		// Closing the channel ends the delivery stream; unsettled deliveries
		// return to the queue.
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			c.log.WarnContext(ctx, "failed to close channel", slog.String("err", err.Error()))
		}
	}

	<-stopped

	c.log.InfoContext(ctx, "consumer stopped")

	return ctx.Err()
}

func (c *Consumer) work(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		if ctx.Err() != nil {
			c.settle(ctx, c.log.With(slog.Uint64("delivery_tag", d.DeliveryTag)), DeliveryRequeued, d.Nack(false, true))
			continue
		}

		c.handle(context.WithoutCancel(ctx), d)
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	log := c.log.With(
		slog.Uint64("delivery_tag", d.DeliveryTag),
		slog.String("message_id", d.MessageId),
	)

	item, err := domain.DecodeWorkItem(d.Body)
	if err != nil {
		log.ErrorContext(ctx, "rejecting malformed delivery", slog.String("err", err.Error()))
		c.settle(ctx, log, DeliveryMalformed, d.Reject(false))
		return
	}

	log = log.With(slog.Int64("file_id", item.FileID))
	log.DebugContext(ctx, "received upload work item")

	if c.processor.Process(ctx, item.FileID) {
		c.settle(ctx, log, DeliveryAcked, d.Ack(false))
		return
	}

	// Failed work is not requeued; a dead-letter exchange configured on the
	// queue picks it up.
	c.settle(ctx, log, DeliveryRejected, d.Nack(false, false))
}

func (c *Consumer) settle(ctx context.Context, log *slog.Logger, outcome string, err error) {
	if err != nil {
		log.ErrorContext(ctx, "failed to settle delivery",
			slog.String("outcome", outcome),
			slog.String("err", err.Error()),
		)
		return
	}

	c.observer.ObserveDelivery(outcome)

	log.DebugContext(ctx, "delivery settled", slog.String("outcome", outcome))
}
