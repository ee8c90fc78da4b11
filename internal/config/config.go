package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	RabbitMQ
	Flexport
	HTTP
}

type App struct {
	Workers              int
	MaxRetries           uint64
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
	VHost    string
	Queue    string
}

type Flexport struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Workers:              cmd.Int("workers"),
			MaxRetries:           uint64(cmd.Int("max-retries")),
			RetryInitialInterval: cmd.Duration("retry-initial-interval"),
			RetryMaxInterval:     cmd.Duration("retry-max-interval"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		RabbitMQ: RabbitMQ{
			Host:     cmd.String("rabbitmq-host"),
			Port:     cmd.String("rabbitmq-port"),
			Username: cmd.String("rabbitmq-username"),
			Password: cmd.String("rabbitmq-password"),
			VHost:    cmd.String("rabbitmq-vhost"),
			Queue:    cmd.String("rabbitmq-queue"),
		},
		Flexport: Flexport{
			BaseURL:     cmd.String("flexport-base-url"),
			BearerToken: cmd.String("flexport-token"),
			Timeout:     cmd.Duration("flexport-timeout"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
