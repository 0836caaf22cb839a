// Package server wires the vault server together: database and migrations,
// the event publishers, the vault service and the gRPC transport. It also
// handles graceful shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/events"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/server/services"

	gs "github.com/dmitrijs2005/timevault/internal/server/grpc"
)

const (
	eventQueueSize  = 256
	shutdownTimeout = 5 * time.Second
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	publisher *events.Async
	vaults    *services.VaultService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sinks := events.Multi{events.NewLogPublisher(logger)}
	if c.ArchiveEnabled() {
		archive, err := events.NewS3Publisher(ctx, events.S3Config{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("event archive init error: %w", err)
		}
		sinks = append(sinks, archive)
		logger.Info(ctx, "Archiving events", "bucket", c.S3Bucket)
	}
	pub := events.NewAsync(sinks, logger, eventQueueSize)

	vs := services.NewVaultService(db, rm, c,
		services.WithLogger(logger),
		services.WithPublisher(pub),
	)

	return &App{config: c, logger: logger, db: db, publisher: pub, vaults: vs}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.vaults, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.publisher.Close(ctx); err != nil {
		app.logger.Warn(ctx, "event queue not drained", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}

// Run serves until a termination signal arrives or the gRPC server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.shutdown()
}
