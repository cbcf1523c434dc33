package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title HealthConnect Wallet API
// @version 1.0
// @description Wallet ledger and payment distribution service for HealthConnect doctors and pharmacies.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "wallet-backend",
		Short: "HealthConnect wallet ledger service",
	}

	rootCmd.AddCommand(serveCmd(logger))
	rootCmd.AddCommand(migrateCmd(logger))
	rootCmd.AddCommand(seedDemoCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
