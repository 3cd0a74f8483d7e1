package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/envstruct"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/game"
	"github.com/Asantae/Cluify-sub000/internal/logging"
	"github.com/Asantae/Cluify-sub000/internal/pprofserver"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	cases          *repositories.CaseRepository
	reports        *repositories.ReportRepository
	suspects       *repositories.SuspectRepository
	registry       *repositories.RegistryRepository
	progress       *repositories.ProgressRepository
	adjudicator    *game.Adjudicator
}

type configuration struct {
	// Addr is the address the server listens on. Use port 0 to let the OS
	// allocate a free port.
	Addr      string `env:"CLUIFY_ADDR"       envDefault:"localhost:4000"`
	PprofPort string `env:"CLUIFY_PPROF_PORT" envDefault:":6060"`
	SqliteURL string `env:"CLUIFY_SQLITE_URL" envDefault:"./cluify.sqlite"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var config configuration
	if err := envstruct.Populate(&config, lookupEnv); err != nil {
		return errors.Wrap(err, "parse configuration")
	}

	// pprof listens on localhost so that it's not open to the world.
	pprofserver.Launch(config.PprofPort, logger)

	dbs, err := db.NewDatabase(ctx, config.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer func() {
		if closeErr := dbs.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()
	if err = dbs.Seed(ctx); err != nil {
		return errors.Wrap(err, "seed database")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database", slog.String("url", config.SqliteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	evidence := repositories.NewEvidenceRepository(dbs, logger)
	cases := repositories.NewCaseRepository(dbs, logger)
	reports := repositories.NewReportRepository(dbs, logger)
	registry := repositories.NewRegistryRepository(dbs, logger)
	progress := repositories.NewProgressRepository(dbs, logger)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		cases:          cases,
		reports:        reports,
		suspects:       repositories.NewSuspectRepository(dbs, logger),
		registry:       registry,
		progress:       progress,
		adjudicator: game.NewAdjudicator(cases, reports, registry, progress,
			game.NewAggregator(evidence, logger), logger),
	}

	return app.configureAndStartServer(ctx, config.Addr)
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A missing .env file is fine, the defaults and the environment cover it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.LogAttrs(context.Background(), slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}
