package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-card-portfolio/internal/client"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	fileLog, closeLog := logger.NewClientLogger("card-portfolio", cfg.Log.File)
	defer closeLog()

	log, err := fileLog.AtLevel(cfg.Log.Level)
	if err != nil {
		log = fileLog
	}
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("driver", cfg.Storage.Driver).
		Msg("starting card portfolio")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "could not start: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		closeLog()
		os.Exit(1)
	}
}
