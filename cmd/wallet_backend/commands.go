package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/SscSPs/healthconnect_wallet/internal/core/services"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/config"
	"github.com/SscSPs/healthconnect_wallet/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run Postgres database migrations",
	}

	for _, direction := range []database.MigrateDirection{database.MigrateUp, database.MigrateDown} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Apply %s migrations", direction),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				if cfg.DatabaseURL == "" {
					return fmt.Errorf("PGSQL_URL is required for migrations")
				}
				return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
			},
		})
	}

	return cmd
}

// demoWallets are the owners the mobile demo expects to exist.
var demoWallets = []struct {
	ownerID   string
	ownerType domain.OwnerType
}{
	{"doctor_001", domain.OwnerDoctor},
	{"doctor_002", domain.OwnerDoctor},
	{"pharmacy_001", domain.OwnerPharmacy},
}

func seedDemoCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-demo",
		Short: "Create the demo doctor and pharmacy wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			infra, err := buildInfrastructure(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer infra.Close()

			svc := services.NewServiceContainer(cfg, infra.Repos, infra.Locker)
			for _, d := range demoWallets {
				w, err := svc.Wallet.GetOrCreateWallet(ctx, d.ownerID, d.ownerType)
				if err != nil {
					return fmt.Errorf("seed %s %s: %w", d.ownerType, d.ownerID, err)
				}
				logger.Info("Demo wallet ready",
					slog.String("wallet_id", w.WalletID),
					slog.String("owner_id", w.OwnerID),
					slog.String("owner_type", string(w.OwnerType)))
			}
			return nil
		},
	}
}
