// Package server initializes and runs the account state server.
// It configures the storage backend, applies schema migrations, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cryptiom/cryptiom-server/internal/logging"
	"github.com/cryptiom/cryptiom-server/internal/server/config"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/repomanager"
	"github.com/cryptiom/cryptiom-server/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	store  *store.Store
}

// openDB opens the database handle for the configured backend. The internal
// backend is a SQLite file with a busy timeout and WAL journaling; the
// external backend is PostgreSQL via the pgx stdlib driver.
func openDB(c *config.Config) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.UseInternalDB {
		dsn := c.DatabasePath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, nil, err
		}
		return db, repomanager.NewSQLiteRepositoryManager(), nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return db, repomanager.NewPostgresRepositoryManager(), nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, rm, err := openDB(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	st := store.New(db, rm, logger, c.StorageTimeout)

	return &App{config: c, logger: logger, db: db, store: st}, nil
}

// Store exposes the account state store to the transport layer.
func (app *App) Store() *store.Store {
	return app.store
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the context is cancelled or a termination signal
// arrives, then closes the database handle.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"interface", app.config.BindInterface,
		"port", app.config.BindPort,
		"internal_db", app.config.UseInternalDB,
	)

	app.initSignalHandler(cancelFunc)

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
