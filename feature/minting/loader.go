package minting

import (
	"metabuild-hub/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new minting feature.
func NewFeature(minter Minter, client storage.Client, bucket, mediaPrefix string, logger *zap.Logger) *Feature {
	svc := NewService(minter, client, bucket, mediaPrefix, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "minting"
}

// IsEnabled reports whether a minter is available. Only the ledger backend can mint.
func (f *Feature) IsEnabled() bool {
	return f.service.minter != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
