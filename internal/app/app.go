package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/document_uploader/internal/broker/rabbitmq"
	"github.com/kurochkinivan/document_uploader/internal/config"
	v1 "github.com/kurochkinivan/document_uploader/internal/controller/http/v1"
	"github.com/kurochkinivan/document_uploader/internal/flexport"
	"github.com/kurochkinivan/document_uploader/internal/metrics"
	"github.com/kurochkinivan/document_uploader/internal/pipeline"
	"github.com/kurochkinivan/document_uploader/internal/repository/postgresql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const (
	consumerTagPrefix = "document-uploader-"
	shutdownTimeout   = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("queue", a.cfg.RabbitMQ.Queue),
		slog.Int("workers", a.cfg.App.Workers),
		slog.Uint64("max_retries", a.cfg.App.MaxRetries),
		slog.String("flexport_base_url", a.cfg.Flexport.BaseURL),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	a.log.InfoContext(ctx, "establishing rabbitmq connection",
		slog.String("rabbitmq_host", a.cfg.RabbitMQ.Host),
		slog.String("rabbitmq_port", a.cfg.RabbitMQ.Port),
		slog.String("rabbitmq_vhost", a.cfg.RabbitMQ.VHost),
	)

	conn, err := rabbitmq.NewConnection(ctx, a.log, a.cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to create broker connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			a.log.WarnContext(ctx, "failed to close broker connection", slog.String("err", err.Error()))
		}
	}()

	consumeChannel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open consumer channel: %w", err)
	}

	if err := rabbitmq.DeclareQueue(consumeChannel, a.cfg.RabbitMQ.Queue); err != nil {
		consumeChannel.Close()
		return err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		consumeChannel.Close()
		return fmt.Errorf("failed to open publisher channel: %w", err)
	}
	defer publishChannel.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	observer, err := metrics.New(registry)
	if err != nil {
		consumeChannel.Close()
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	uploadsRepository := postgresql.NewUploadsRepository(pool)
	attemptsRepository := postgresql.NewAttemptsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	uploader := pipeline.NewUploader(
		a.log,
		uploadsRepository,
		uploadsRepository,
		attemptsRepository,
		txManager,
		flexport.NewClient(a.cfg.Flexport),
		observer,
		pipeline.RetryPolicy{
			MaxRetries:      a.cfg.App.MaxRetries,
			InitialInterval: a.cfg.App.RetryInitialInterval,
			MaxInterval:     a.cfg.App.RetryMaxInterval,
		},
	)

	consumer := pipeline.NewConsumer(
		a.log,
		consumeChannel,
		a.cfg.RabbitMQ.Queue,
		consumerTagPrefix+uuid.NewString(),
		a.cfg.App.Workers,
		uploader,
		observer,
	)

	server := v1.NewServer(
		a.cfg.HTTP,
		uploadsRepository,
		attemptsRepository,
		rabbitmq.NewPublisher(publishChannel, a.cfg.RabbitMQ.Queue),
		registry,
	)

	return a.start(ctx, consumer, server)
}

func (a *App) start(ctx context.Context, consumer *pipeline.Consumer, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "consumer started")
		return consumer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
