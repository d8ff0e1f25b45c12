package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"metabuild-hub/core/assets"
	"metabuild-hub/core/config"
	"metabuild-hub/core/database"
	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	reconcilePrincipal string
	reconcileJSON      bool
)

// reconcileCmd builds a user's dashboard items from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a user's collections into dashboard items",
	Long: `Loads the collections of a principal from the configured backend, lists
their NFTs and prints the deduplicated dashboard items.

Examples:
  # Summary only
  reconcile --principal aaaaa-aa

  # Full result as JSON on stdout
  reconcile --principal aaaaa-aa --json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcilePrincipal, "principal", "", "Principal whose collections are reconciled")
	reconcileCmd.Flags().BoolVar(&reconcileJSON, "json", false, "Print the full result as JSON")
	_ = reconcileCmd.MarkFlagRequired("principal")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	b, err := openBackend(cfg, db, l)
	if err != nil {
		return err
	}

	start := time.Now()
	res := reconcile.New(b, assets.NewResolver(cfg.Assets), cfg.Reconcile, l).Reconcile(cmd.Context(), reconcilePrincipal)
	if res.Err != nil {
		return fmt.Errorf("reconciliation failed: %w", res.Err)
	}

	l.Info("Reconciliation report",
		zap.String("principal", reconcilePrincipal),
		zap.Int("items", len(res.Items)),
		zap.Int("failures", len(res.Failures)),
		zap.Duration("execution_time", time.Since(start)),
	)
	for _, f := range res.Failures {
		l.Warn("Collection skipped", zap.String("collection", f.CollectionKey), zap.String("reason", f.Reason))
	}

	if reconcileJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return nil
}
