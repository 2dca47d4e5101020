package main

import (
	"context"
	"expvar"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/todolist/app/todolist/api"
	"github.com/jrazmi/todolist/app/todolist/config"
	"github.com/jrazmi/todolist/bridge/scaffolding/mid"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/todolist/infrastructure/postgresdb"
	"github.com/jrazmi/todolist/infrastructure/web"
	"github.com/jrazmi/todolist/sdk/environment"
	"github.com/jrazmi/todolist/sdk/logger"
	"github.com/jrazmi/todolist/sdk/telemetry"
)

var build = "develop"
var appName = "TODOLIST"

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Println("loading .env:", err)
	}

	tel := telemetry.NewTelemetry()
	log, err := logger.NewFromEnv(appName, logger.WithTraceID(tel.GetTraceID))
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, log, tel); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var appCfg config.App
	if err := environment.ParseEnvTags(appName, &appCfg); err != nil {
		return fmt.Errorf("parsing app config: %w", err)
	}

	// :*: STORES :*:
	var (
		storer      tasksrepo.Storer
		statusCheck config.StatusCheckFunc
	)
	switch appCfg.Store {
	case config.StorePostgres:
		pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return fmt.Errorf("configuring postgres support: %w", err)
		}
		defer func() {
			log.InfoContext(ctx, "shutdown", "status", "closing database connection")
			pg.Close()
		}()
		log.InfoContext(ctx, "init", "service", "postgres")

		storer = taskspgxstore.NewStore(log, pg)
		statusCheck = func(ctx context.Context) error {
			return postgresdb.StatusCheck(ctx, pg)
		}

	case config.StoreMemory:
		log.InfoContext(ctx, "init", "service", "memory store")
		storer = tasksmemstore.NewStore()

	default:
		return fmt.Errorf("unknown store %q", appCfg.Store)
	}

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	siteCfg := config.Todolist{
		Build:  build,
		App:    appCfg,
		Logger: log,
		Repositories: config.Repositories{
			Task: tasksrepo.NewRepository(log, storer),
		},
		Telemetry:   tel,
		StatusCheck: statusCheck,
	}

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	if server.Config.EnableDebug {
		handler.HandleRaw("GET /debug/vars", expvar.Handler())
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
	if err := server.Serve(ctx); err != nil {
		return err
	}
	log.InfoContext(ctx, "shutdown", "status", "shutdown complete")

	return nil
}

func webHandler(cfg config.Todolist) (*web.WebHandler, error) {
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.CORS(cfg.App.CORSOrigins...), // CORS headers on every response
			mid.Logger(cfg.Logger),           // Request logging
			mid.Errors(cfg.Logger),           // Error handling
			mid.Metrics(),                    // Metrics collection
			mid.Panics(),                     // Panic recovery
		),
	)
	if err != nil {
		return nil, err
	}

	api.AddHandlers(wh, cfg)

	return wh, nil
}
