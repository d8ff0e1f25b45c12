package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"go.uber.org/zap"
)

// CallerHeader carries the principal the gateway should act as.
const CallerHeader = "X-Caller-Principal"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 16 << 20

// Client talks to the collection gateway over HTTP.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a gateway client.
func NewClient(cfg Config, l *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout()},
		logger: logger.OrNop(l),
	}
}

// listing is the variant envelope of a collection listing.
type listing struct {
	Ok *struct {
		Data []any `json:"data"`
	} `json:"ok"`
	Err *string `json:"err"`
}

// GetUserCollections returns the raw collection records of principal.
// Entries that are not arrays are dropped.
func (c *Client) GetUserCollections(ctx context.Context, principal string) ([]reconcile.RawCollectionRecord, error) {
	endpoint := c.endpoint("users", principal, "collections")

	var entries []any
	if err := c.getJSON(ctx, endpoint, principal, &entries); err != nil {
		return nil, err
	}

	records := make([]reconcile.RawCollectionRecord, 0, len(entries))
	for _, e := range entries {
		fields, ok := e.([]any)
		if !ok {
			c.logger.Debug("Skipping non-tuple collection entry", zap.Any("entry", e))
			continue
		}
		records = append(records, reconcile.RawCollectionRecord(fields))
	}
	return records, nil
}

// GetCollectionItems lists up to limit NFTs of the collection ref, starting at offset.
// An err variant is returned as *reconcile.RejectedError.
func (c *Client) GetCollectionItems(ctx context.Context, ref reconcile.CanisterReference, limit, offset int) ([]reconcile.RawNFTRecord, error) {
	endpoint := c.endpoint("collections", ref.Key(), "nfts")
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	endpoint += "?" + q.Encode()

	var body listing
	if err := c.getJSON(ctx, endpoint, c.cfg.Caller, &body); err != nil {
		return nil, err
	}
	if body.Err != nil {
		return nil, &reconcile.RejectedError{Reason: *body.Err}
	}
	if body.Ok == nil {
		return nil, &reconcile.RejectedError{Reason: "response has neither ok nor err"}
	}

	out := make([]reconcile.RawNFTRecord, 0, len(body.Ok.Data))
	for _, e := range body.Ok.Data {
		rec, ok := reconcile.NFTRecordFromTuple(e)
		if !ok {
			c.logger.Debug("Skipping malformed NFT entry", zap.String("collection", ref.Key()))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Client) endpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + strings.Join(escaped, "/")
}

func (c *Client) getJSON(ctx context.Context, endpoint, caller string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	if caller != "" {
		req.Header.Set(CallerHeader, caller)
	}

	resp, err := DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return reconcile.ErrUnauthenticated
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
