package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/malakahq/ledger-engine/internal/infrastructure/config"
	"github.com/malakahq/ledger-engine/internal/observability"
	"github.com/malakahq/ledger-engine/internal/postgres"
)

// NewRootCommand creates the ledgerctl CLI with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Ledger aggregation and trial balance reporting",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newGeneralLedgerCommand())

	return rootCmd
}

// connect loads config, installs the logger and opens the database pool.
// Migrations that fail (for example a read-only connection) are logged and
// tolerated; report generation only needs an existing schema.
func connect(ctx context.Context) (config.Config, *pgxpool.Pool, error) {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := postgres.RunMigrations(cfg.MigrationsURL, cfg.DatabaseURL); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	return cfg, pool, nil
}
