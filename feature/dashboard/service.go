package dashboard

import (
	"context"

	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Reconciler builds a user's dashboard items.
type Reconciler interface {
	Reconcile(ctx context.Context, principal string) reconcile.Result
}

// Service serves dashboard items. Concurrent requests for the same principal
// share one reconciliation pass.
type Service struct {
	reconciler Reconciler
	logger     *zap.Logger
	group      singleflight.Group
}

// NewService creates a new dashboard service.
func NewService(r Reconciler, l *zap.Logger) *Service {
	return &Service{reconciler: r, logger: logger.OrNop(l)}
}

// Items returns the reconciled items of principal. Callers that arrive while
// a pass for the same principal is running receive that pass's result.
func (s *Service) Items(ctx context.Context, principal string) reconcile.Result {
	v, _, shared := s.group.Do(principal, func() (any, error) {
		return s.reconciler.Reconcile(ctx, principal), nil
	})
	if shared {
		s.logger.Debug("Reconciliation shared", zap.String("principal", principal))
	}
	return v.(reconcile.Result)
}
