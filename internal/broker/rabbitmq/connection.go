package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kurochkinivan/document_uploader/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	maxRetries     = 5
	retryDelay     = 5 * time.Second
	heartbeat      = 10 * time.Second
	connectionName = "document_uploader"
)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.RabbitMQ) (*amqp.Connection, error) {
	amqpConfig := amqp.Config{
		Heartbeat: heartbeat,
		Locale:    "en_US",
		Properties: amqp.Table{
			"connection_name": connectionName,
		},
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), maxRetries), ctx)

	conn, err := backoff.RetryNotifyWithData(
		func() (*amqp.Connection, error) {
			return amqp.DialConfig(ConnectionURL(cfg), amqpConfig)
		},
		policy,
		func(err error, wait time.Duration) {
			log.DebugContext(ctx, "broker connection attempt failed, retrying",
				slog.Duration("wait", wait),
				slog.Int("max_retries", maxRetries),
				slog.String("err", err.Error()))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	return conn, nil
}

func ConnectionURL(cfg config.RabbitMQ) string {
	return (&url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   "/" + cfg.VHost,
	}).String()
}

// DeclareQueue declares the work queue as durable. Declaring an existing
// queue with the same arguments is a no-op.
func DeclareQueue(ch *amqp.Channel, name string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", name, err)
	}

	return nil
}
