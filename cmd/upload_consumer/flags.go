package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/document_uploader/internal/app"
	"github.com/kurochkinivan/document_uploader/internal/config"
	"github.com/kurochkinivan/document_uploader/internal/flexport"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "upload_consumer",
		Usage:   "Consume upload work items and push documents to Flexport",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.IntFlag{
			Name:      "workers",
			Aliases:   []string{"w"},
			Usage:     "Set number of concurrent upload workers",
			Value:     1,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.workers", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateWorkers,
		},
		&cli.IntFlag{
			Name:      "max-retries",
			Usage:     "Set retry budget for transient upload faults",
			Value:     2,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.max_retries", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateRetries,
		},
		&cli.DurationFlag{
			Name:    "retry-initial-interval",
			Usage:   "Set initial backoff between retries",
			Value:   time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.retry_initial_interval", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "retry-max-interval",
			Usage:   "Set maximum backoff between retries",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.retry_max_interval", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "document_uploader",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "rabbitmq-host",
			Usage:    "Set RabbitMQ host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("rabbitmq.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "rabbitmq-port",
			Usage:    "Set RabbitMQ port",
			Value:    "5672",
			Sources:  cli.NewValueSourceChain(yaml.YAML("rabbitmq.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "rabbitmq-username",
			Usage:    "Set RabbitMQ username",
			Value:    "guest",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("RABBITMQ_USERNAME"), yaml.YAML("rabbitmq.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "rabbitmq-password",
			Usage:    "Set RabbitMQ password",
			Value:    "guest",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("RABBITMQ_PASSWORD"), yaml.YAML("rabbitmq.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "rabbitmq-vhost",
			Usage:   "Set RabbitMQ virtual host",
			Value:   "/",
			Sources: cli.NewValueSourceChain(yaml.YAML("rabbitmq.vhost", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "rabbitmq-queue",
			Aliases:  []string{"q"},
			Usage:    "Set queue to consume upload work items from",
			Value:    "Flexport_File_Upload_queue",
			Sources:  cli.NewValueSourceChain(yaml.YAML("rabbitmq.queue", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:      "flexport-base-url",
			Usage:     "Set Flexport logistics API base URL",
			Value:     flexport.DefaultBaseURL,
			Sources:   cli.NewValueSourceChain(yaml.YAML("flexport.base_url", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateBaseURL,
		},
		&cli.StringFlag{
			Name:     "flexport-token",
			Usage:    "Set Flexport API bearer token",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("FLEXPORT_TOKEN"), yaml.YAML("flexport.token", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.DurationFlag{
			Name:    "flexport-timeout",
			Usage:   "Set Flexport API request timeout",
			Value:   flexport.DefaultTimeout,
			Sources: cli.NewValueSourceChain(yaml.YAML("flexport.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateWorkers(workers int) error {
	if workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}

	return nil
}

func validateRetries(retries int) error {
	if retries < 0 {
		return fmt.Errorf("max-retries must not be negative, got %d", retries)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", raw, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
