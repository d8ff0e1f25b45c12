package cmd

import (
	"fmt"

	"metabuild-hub/core/config"
	"metabuild-hub/core/database"
	"metabuild-hub/core/logger"
	"metabuild-hub/feature/ledger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the ledger tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the ledger database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := ledger.NewStore(db, l).Migrate(); err != nil {
			return err
		}
		l.Info("Ledger tables migrated", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
