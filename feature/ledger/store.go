package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MintRequest describes one NFT to mint.
type MintRequest struct {
	To          string
	Name        string
	Description string
	Asset       string
	Thumbnail   string
	Metadata    map[string]any
}

// MintedToken identifies a freshly minted NFT.
type MintedToken struct {
	TokenIndex      uint64 `json:"tokenIndex"`
	TokenIdentifier string `json:"tokenIdentifier"`
}

// Store is a database-backed collection ledger. It implements
// reconcile.Backend and emits records in the same positional shapes the
// collection canister returns.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a ledger store on db.
func NewStore(db *gorm.DB, l *zap.Logger) *Store {
	return &Store{db: db, logger: logger.OrNop(l), now: time.Now}
}

// Migrate creates or updates the ledger tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&User{}, &Collection{}, &NFT{}); err != nil {
		return fmt.Errorf("failed to migrate ledger: %w", err)
	}
	return nil
}

// CreateUser registers principal. Registering an existing principal is a no-op.
func (s *Store) CreateUser(ctx context.Context, principal, name string) error {
	if strings.TrimSpace(principal) == "" {
		return reconcile.ErrUnauthenticated
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&User{Principal: principal, Name: name, CreatedAt: s.now().UnixNano()}).Error
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateCollection creates a collection owned by creator and returns the
// (creator, canister) pair.
func (s *Store) CreateCollection(ctx context.Context, creator, name, symbol string, metadata map[string]any) (Principal, Principal, error) {
	if strings.TrimSpace(creator) == "" {
		return "", "", reconcile.ErrUnauthenticated
	}

	meta, err := encodeMetadata(metadata)
	if err != nil {
		return "", "", err
	}

	col := Collection{
		CanisterID: newCanisterID(),
		Creator:    creator,
		Name:       name,
		Symbol:     symbol,
		Metadata:   meta,
		CreatedAt:  s.now().UnixNano(),
	}
	if err := s.db.WithContext(ctx).Create(&col).Error; err != nil {
		return "", "", fmt.Errorf("failed to create collection: %w", err)
	}

	s.logger.Info("Collection created",
		zap.String("canister", col.CanisterID),
		zap.String("creator", creator),
		zap.String("name", name),
	)
	return Principal(creator), Principal(col.CanisterID), nil
}

// MintNFT mints req into the collection canister and returns the minted token.
func (s *Store) MintNFT(ctx context.Context, canister string, req MintRequest) ([]MintedToken, error) {
	if strings.TrimSpace(req.To) == "" {
		return nil, reconcile.ErrUnauthenticated
	}

	meta, err := encodeMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	var minted MintedToken
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var col Collection
		if err := tx.Where("canister_id = ?", canister).First(&col).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &reconcile.RejectedError{Reason: "collection not found: " + canister}
			}
			return err
		}

		var count int64
		if err := tx.Model(&NFT{}).Where("collection_id = ?", canister).Count(&count).Error; err != nil {
			return err
		}

		nft := NFT{
			CollectionID:    canister,
			TokenIndex:      uint64(count),
			TokenIdentifier: fmt.Sprintf("%s:%d", canister, count),
			Owner:           req.To,
			Name:            req.Name,
			Description:     req.Description,
			Asset:           req.Asset,
			Thumbnail:       req.Thumbnail,
			Metadata:        meta,
		}
		if err := tx.Create(&nft).Error; err != nil {
			return err
		}
		minted = MintedToken{TokenIndex: nft.TokenIndex, TokenIdentifier: nft.TokenIdentifier}
		return nil
	})
	if err != nil {
		var rejected *reconcile.RejectedError
		if errors.As(err, &rejected) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to mint nft: %w", err)
	}

	s.logger.Info("NFT minted",
		zap.String("canister", canister),
		zap.String("token", minted.TokenIdentifier),
		zap.String("owner", req.To),
	)
	return []MintedToken{minted}, nil
}

// GetUserCollections returns the collections principal created or holds
// tokens in, oldest first.
func (s *Store) GetUserCollections(ctx context.Context, principal string) ([]reconcile.RawCollectionRecord, error) {
	held := s.db.Model(&NFT{}).Select("collection_id").Where("owner = ?", principal)

	var cols []Collection
	err := s.db.WithContext(ctx).
		Where("creator = ?", principal).
		Or("canister_id IN (?)", held).
		Order("created_at ASC").
		Order("canister_id ASC").
		Find(&cols).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	records := make([]reconcile.RawCollectionRecord, 0, len(cols))
	for _, c := range cols {
		records = append(records, c.record())
	}
	return records, nil
}

// GetCollectionItems lists the NFTs of the collection ref in token order.
func (s *Store) GetCollectionItems(ctx context.Context, ref reconcile.CanisterReference, limit, offset int) ([]reconcile.RawNFTRecord, error) {
	canister := ref.Key()
	if limit <= 0 {
		limit = reconcile.DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&Collection{}).Where("canister_id = ?", canister).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up collection: %w", err)
	}
	if count == 0 {
		return nil, &reconcile.RejectedError{Reason: "collection not found: " + canister}
	}

	var nfts []NFT
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", canister).
		Order("token_index ASC").
		Limit(limit).
		Offset(offset).
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}

	out := make([]reconcile.RawNFTRecord, 0, len(nfts))
	for _, n := range nfts {
		out = append(out, n.record())
	}
	return out, nil
}

// record renders the collection as (timestamp, (creator, canister), name, symbol, metadata).
func (c Collection) record() reconcile.RawCollectionRecord {
	return reconcile.RawCollectionRecord{
		c.CreatedAt,
		[]any{Principal(c.Creator), Principal(c.CanisterID)},
		c.Name,
		c.Symbol,
		c.Metadata,
	}
}

// record renders the NFT as a (token, envelope) listing entry.
func (n NFT) record() reconcile.RawNFTRecord {
	metadata := []any{}
	if n.Metadata != "" {
		metadata = append(metadata, map[string]any{"json": n.Metadata})
	}
	return reconcile.RawNFTRecord{
		TokenIdentifier: n.TokenIdentifier,
		Envelope: map[string]any{
			"nonfungible": map[string]any{
				"name":        n.Name,
				"description": n.Description,
				"asset":       n.Asset,
				"thumbnail":   n.Thumbnail,
				"metadata":    metadata,
			},
		},
	}
}

func encodeMetadata(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(b), nil
}

// newCanisterID returns a random id in the five-group canister format.
func newCanisterID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.Join([]string{hex[0:5], hex[5:10], hex[10:15], hex[15:20], "cai"}, "-")
}
