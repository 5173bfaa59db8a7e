package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/movie-api/internal/config"
	myHTTP "github.com/MKhiriev/movie-api/internal/handler/http"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/metrics"
	"github.com/MKhiriev/movie-api/internal/server"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const closeTimeout = 5 * time.Second

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("movie-api")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.LogLevel)

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("db_name", cfg.Storage.DB.Name).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Str("static_dir", cfg.Server.StaticDir).
		Bool("metrics_disabled", cfg.Server.MetricsDisabled).
		Msg("received configs")

	ctx := context.Background()

	// the listener is never started without a reachable database
	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the database")
	}

	if err = run(ctx, db, cfg, buildInfo, log); err != nil {
		closeDB(db, log)
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	closeDB(db, log)
}

func run(ctx context.Context, db *store.DB, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("error ensuring indexes: %w", err)
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)
	handler := myHTTP.NewHandler(services, metrics.New(buildInfo), cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func closeDB(db *store.DB, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := db.Close(ctx); err != nil {
		log.Err(err).Msg("error closing database connection")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
