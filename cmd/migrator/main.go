package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/document_uploader/internal/config"
	"github.com/kurochkinivan/document_uploader/internal/repository/postgresql"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

var errInvalidInput = errors.New("invalid input")

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitCodeOK
	if err := command(log).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))

		exitCode = exitCodeInternalErr
		if errors.Is(err, errInvalidInput) {
			exitCode = exitCodeInputErr
		}
	}

	stop()
	os.Exit(exitCode)
}

func command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrator",
		Usage: "Apply upload_log schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "type",
				Usage:     "Set migration type: up/down",
				Value:     migrationTypeUp,
				Validator: validateMigrationType,
			},
			&cli.StringFlag{
				Name:  "pg-host",
				Usage: "Set PostgreSQL host",
				Value: "127.0.0.1",
			},
			&cli.StringFlag{
				Name:  "pg-port",
				Usage: "Set PostgreSQL port",
				Value: "5432",
			},
			&cli.StringFlag{
				Name:     "pg-username",
				Usage:    "Set PostgreSQL username",
				Sources:  cli.EnvVars("PG_USERNAME"),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "pg-password",
				Usage:    "Set PostgreSQL password",
				Sources:  cli.EnvVars("PG_PASSWORD"),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "pg-dbname",
				Usage: "Set PostgreSQL database name",
				Value: "document_uploader",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Run(ctx, log, cmd.String("type"), config.PostgreSQL{
				Host:     cmd.String("pg-host"),
				Port:     cmd.String("pg-port"),
				Username: cmd.String("pg-username"),
				Password: cmd.String("pg-password"),
				DBName:   cmd.String("pg-dbname"),
			})
		},
	}
}

func Run(ctx context.Context, log *slog.Logger, migrationType string, cfg config.PostgreSQL) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if err := applyMigration(migrator, migrationType); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return nil
		}

		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", migrationType))

	return nil
}

func applyMigration(migrator *migrate.Migrate, migrationType string) error {
	switch migrationType {
	case migrationTypeUp:
		return migrator.Up()
	case migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func validateMigrationType(migrationType string) error {
	if migrationType != migrationTypeUp && migrationType != migrationTypeDown {
		return fmt.Errorf("%w: type must be %q or %q, got %q",
			errInvalidInput, migrationTypeUp, migrationTypeDown, migrationType)
	}

	return nil
}
