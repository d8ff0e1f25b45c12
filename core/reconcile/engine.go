package reconcile

import (
	"context"
	"fmt"
	"strings"

	"metabuild-hub/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls how collection listings are fetched.
type Config struct {
	// PageSize is the number of NFTs requested per collection.
	PageSize int `mapstructure:"page_size" default:"50"`
	// Workers bounds concurrent collection fetches; 1 or less fetches sequentially.
	Workers int `mapstructure:"workers" default:"1"`
}

// Reconciler builds the dashboard item list of a user from the collection backend.
// It holds no per-call state; concurrent calls are independent runs.
type Reconciler struct {
	backend Backend
	images  ImageResolver
	cfg     Config
	logger  *zap.Logger
}

// New creates a Reconciler.
func New(backend Backend, images ImageResolver, cfg Config, l *zap.Logger) *Reconciler {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Reconciler{
		backend: backend,
		images:  images,
		cfg:     cfg,
		logger:  logger.OrNop(l),
	}
}

// Reconcile returns the display items of every collection owned by principal.
//
// An empty principal returns an empty result without contacting the backend.
// If the collections fetch fails, the result is empty and Err is set. A failing
// collection listing is logged, recorded in Failures and skipped. Items are
// ordered by collection discovery order, then by backend order.
func (r *Reconciler) Reconcile(ctx context.Context, principal string) (res Result) {
	res = Result{Items: []DisplayItem{}, Failures: []Failure{}}

	principal = strings.TrimSpace(principal)
	if principal == "" {
		return res
	}

	l := r.logger.With(zap.String("principal", principal))

	defer func() {
		if p := recover(); p != nil {
			l.Error("Reconciliation aborted", zap.Any("panic", p))
			res = Result{Items: []DisplayItem{}, Failures: []Failure{}, Err: fmt.Errorf("reconciliation aborted: %v", p)}
		}
	}()

	if r.backend == nil {
		res.Err = fmt.Errorf("no collection backend configured")
		l.Error("Failed to load user collections", zap.Error(res.Err))
		return res
	}

	records, err := r.backend.GetUserCollections(ctx, principal)
	if err != nil {
		res.Err = fmt.Errorf("failed to load user collections: %w", err)
		l.Error("Failed to load user collections", zap.Error(err))
		return res
	}

	collections := ExtractCollections(records)
	l.Debug("Collections discovered",
		zap.Int("records", len(records)),
		zap.Int("collections", len(collections)),
	)

	pages := make([][]DisplayItem, len(collections))
	failures := make([]*Failure, len(collections))

	fetch := func(i int) {
		pages[i], failures[i] = r.collect(ctx, l, collections[i])
	}

	if r.cfg.Workers <= 1 {
		for i := range collections {
			fetch(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.cfg.Workers)
		for i := range collections {
			i := i // per-iteration copy (go < 1.22 loop semantics)
			g.Go(func() error {
				fetch(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	// Slots are indexed by discovery order, so concatenation restores it.
	for i := range collections {
		res.Items = append(res.Items, pages[i]...)
		if failures[i] != nil {
			res.Failures = append(res.Failures, *failures[i])
		}
	}

	l.Info("Reconciliation completed",
		zap.Int("collections", len(collections)),
		zap.Int("items", len(res.Items)),
		zap.Int("failures", len(res.Failures)),
	)
	return res
}

// collect fetches and normalizes one collection's listing.
func (r *Reconciler) collect(ctx context.Context, l *zap.Logger, d CollectionDescriptor) (items []DisplayItem, failure *Failure) {
	l = l.With(zap.String("collection", d.CanisterKey), zap.String("name", d.DisplayName))

	defer func() {
		if p := recover(); p != nil {
			l.Warn("Collection listing aborted", zap.Any("panic", p))
			items, failure = nil, &Failure{CollectionKey: d.CanisterKey, Reason: fmt.Sprintf("listing aborted: %v", p)}
		}
	}()

	raw, err := r.backend.GetCollectionItems(ctx, d.Ref, r.cfg.PageSize, 0)
	if err != nil {
		l.Warn("Failed to list collection NFTs", zap.Error(err))
		return nil, &Failure{CollectionKey: d.CanisterKey, Reason: err.Error()}
	}
	if len(raw) == 0 {
		l.Info("Collection has no NFTs")
		return nil, nil
	}

	items = make([]DisplayItem, 0, len(raw))
	for _, nft := range raw {
		items = append(items, NormalizeNFT(nft, d, r.images))
	}
	return items, nil
}
