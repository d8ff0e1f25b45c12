package integrity

import (
	"context"

	"metabuild-hub/core/storage"
	"metabuild-hub/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. db may be nil when no ledger
// database is configured.
func NewService(client storage.Client, bucket, mediaPrefix string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		folders: checks.RequiredFolders(mediaPrefix),
		logger:  logger,
		db:      db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckLedger compares the ledger tables with the ledger models.
func (s *Service) CheckLedger() (*checks.SchemaReport, error) {
	return checks.CheckLedgerSchema(s.db)
}
