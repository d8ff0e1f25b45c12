package minting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"
	"metabuild-hub/core/storage"
	"metabuild-hub/feature/ledger"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	// MaxMediaBytes is the largest accepted media upload.
	MaxMediaBytes = 10 << 20

	// CollectionSymbol is the symbol of every fair collection.
	CollectionSymbol = "FAIR"

	// NFTDescription is the description stored on minted fair NFTs.
	NFTDescription = "NFT creado desde metabuildcity"

	DefaultSector    = "Fintech"
	DefaultSubSector = "Digital banking"
)

var (
	ErrMissingName      = errors.New("fair name is required")
	ErrMissingMedia     = errors.New("media file is required")
	ErrMediaTooLarge    = fmt.Errorf("media exceeds %d MB", MaxMediaBytes>>20)
	ErrInvalidMediaType = errors.New("media must be an image or a video")
)

var whitespace = regexp.MustCompile(`\s+`)

// Minter is the collection capability the fair flow needs.
type Minter interface {
	CreateUser(ctx context.Context, principal, name string) error
	CreateCollection(ctx context.Context, creator, name, symbol string, metadata map[string]any) (ledger.Principal, ledger.Principal, error)
	MintNFT(ctx context.Context, canister string, req ledger.MintRequest) ([]ledger.MintedToken, error)
}

// FairRequest holds the fields of the fair creation form.
type FairRequest struct {
	Caller        string
	FairName      string
	OrganizerName string
	Sector        string
	SubSector     string
	Media         io.Reader
	MediaSize     int64
	ContentType   string
}

// FairResult describes the minted fair NFT.
type FairResult struct {
	TokenIdentifier string `json:"tokenIdentifier"`
	TokenIndex      uint64 `json:"tokenIndex"`
	Collection      string `json:"collection"`
	ImageID         string `json:"imageId"`
}

// Service creates virtual fairs: it stores the media, creates the fair's
// collection and mints its NFT.
type Service struct {
	minter      Minter
	client      storage.Client
	bucket      string
	mediaPrefix string
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new minting service.
func NewService(minter Minter, client storage.Client, bucket, mediaPrefix string, l *zap.Logger) *Service {
	return &Service{
		minter:      minter,
		client:      client,
		bucket:      bucket,
		mediaPrefix: mediaPrefix,
		logger:      logger.OrNop(l),
		now:         time.Now,
	}
}

// Validate checks req and fills the sector defaults.
func Validate(req *FairRequest) error {
	req.FairName = strings.TrimSpace(req.FairName)
	if req.FairName == "" {
		return ErrMissingName
	}
	if req.Media == nil {
		return ErrMissingMedia
	}
	if req.MediaSize > MaxMediaBytes {
		return ErrMediaTooLarge
	}
	if !strings.HasPrefix(req.ContentType, "image/") && !strings.HasPrefix(req.ContentType, "video/") {
		return ErrInvalidMediaType
	}
	if strings.TrimSpace(req.Sector) == "" {
		req.Sector = DefaultSector
	}
	if strings.TrimSpace(req.SubSector) == "" {
		req.SubSector = DefaultSubSector
	}
	return nil
}

// ImageID derives the media id of a fair: whitespace runs become underscores
// and the creation time in milliseconds is appended.
func ImageID(fairName string, at time.Time) string {
	return whitespace.ReplaceAllString(fairName, "_") + "_" + strconv.FormatInt(at.UnixMilli(), 10)
}

// CreateFair runs the fair creation flow for req.
func (s *Service) CreateFair(ctx context.Context, req FairRequest) (*FairResult, error) {
	if strings.TrimSpace(req.Caller) == "" {
		return nil, reconcile.ErrUnauthenticated
	}
	if err := Validate(&req); err != nil {
		return nil, err
	}

	now := s.now()
	imgID := ImageID(req.FairName, now)
	l := s.logger.With(zap.String("caller", req.Caller), zap.String("image_id", imgID))

	object := storage.ObjectPath(s.mediaPrefix, imgID)
	if _, err := s.client.PutObject(ctx, s.bucket, object, req.Media, req.MediaSize, minio.PutObjectOptions{ContentType: req.ContentType}); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}
	l.Info("Media uploaded", zap.String("object", object), zap.Int64("size", req.MediaSize))

	// Registration fails harmlessly when the user already exists.
	if err := s.minter.CreateUser(ctx, req.Caller, req.OrganizerName); err != nil {
		l.Debug("User registration skipped", zap.Error(err))
	}

	_, canister, err := s.minter.CreateCollection(ctx, req.Caller, reconcile.FairPrefix+req.FairName, CollectionSymbol, map[string]any{
		"description": "Colección para la feria virtual: " + req.FairName,
		"sector":      req.Sector,
		"subSector":   req.SubSector,
		"createdBy":   req.OrganizerName,
		"imageUrl":    imgID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	minted, err := s.minter.MintNFT(ctx, canister.Text(), ledger.MintRequest{
		To:          req.Caller,
		Name:        req.FairName,
		Description: NFTDescription,
		Asset:       imgID,
		Thumbnail:   imgID,
		Metadata: map[string]any{
			"fairName":      req.FairName,
			"organizerName": req.OrganizerName,
			"sector":        req.Sector,
			"subSector":     req.SubSector,
			"imageUrl":      imgID,
			"createdAt":     now.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mint fair nft: %w", err)
	}
	if len(minted) == 0 {
		return nil, fmt.Errorf("mint returned no tokens")
	}

	l.Info("Fair created",
		zap.String("collection", canister.Text()),
		zap.String("token", minted[0].TokenIdentifier),
	)
	return &FairResult{
		TokenIdentifier: minted[0].TokenIdentifier,
		TokenIndex:      minted[0].TokenIndex,
		Collection:      canister.Text(),
		ImageID:         imgID,
	}, nil
}
