package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-card-portfolio/internal/admin"
	"github.com/MKhiriev/go-card-portfolio/internal/client"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
)

func main() {
	// config flags go before the subcommand name and are parsed into flag.CommandLine
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	log, err := logger.NewLogger("card-portfolio-admin").AtLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, "portfolio-admin")
	admin.Register(commander, &admin.Env{
		Config: cfg,
		Open:   client.OpenSpreadsheet,
		Logger: log,
		Out:    os.Stdout,
		Err:    os.Stderr,
		In:     os.Stdin,
	})

	os.Exit(int(commander.Execute(log.WithContext(context.Background()))))
}
