package main

import (
	"log/slog"
	"net/http"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"godown-dashboard/internal/config"
	"godown-dashboard/internal/service/export"
	"godown-dashboard/internal/service/importer"
	"godown-dashboard/internal/service/production"
	"godown-dashboard/internal/service/salesreport"
	"godown-dashboard/internal/storage/mysql"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	fetcher := salesreport.NewHTTPFetcher()
	merger := salesreport.NewMerger(log, fetcher, cfg.ImportTimeout)

	salesService := salesreport.NewService(log, storage, merger)
	productionService := production.NewService(log, storage)
	importService := importer.NewService(log, storage, fetcher, cfg.ImportTimeout)
	exportService := export.NewService(productionService)

	log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, salesService, productionService, importService, exportService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupLogger fans every record out to stdout and errors additionally to a
// file, so failed imports stay visible after the terminal scrolls away.
func setupLogger(env string) *slog.Logger {
	var level slog.Level = slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("cannot open error log file", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(slogmulti.Fanout(coreHandler, errorHandler))
}
