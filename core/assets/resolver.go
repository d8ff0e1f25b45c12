package assets

import (
	"net/url"
	"strings"

	"metabuild-hub/core/storage"
	"metabuild-hub/core/utils"
)

// Resolver turns image references stored in collection and NFT metadata into
// URLs a browser can load. It is safe for concurrent use.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver, filling empty fields with their defaults.
func NewResolver(cfg Config) *Resolver {
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	if cfg.LocalHost == "" {
		cfg.LocalHost = "http://127.0.0.1:4943"
	}
	if cfg.HostedDomain == "" {
		cfg.HostedDomain = "raw.icp0.io"
	}
	return &Resolver{cfg: cfg}
}

// Fallback returns the placeholder path.
func (r *Resolver) Fallback() string {
	return r.cfg.Fallback
}

// ImageURL resolves ref for the configured environment.
// Empty or placeholder references, and unknown environments, yield the fallback path.
func (r *Resolver) ImageURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if utils.IsUnsetText(ref) {
		return r.cfg.Fallback
	}

	switch r.cfg.Environment {
	case EnvironmentLocal:
		if r.cfg.Canister == "" {
			return r.cfg.Fallback
		}
		q := url.Values{}
		q.Set("canisterId", r.cfg.Canister)
		q.Set("imgid", ref)
		return strings.TrimSuffix(r.cfg.LocalHost, "/") + "/?" + q.Encode()
	case EnvironmentHosted:
		if r.cfg.Canister == "" {
			return r.cfg.Fallback
		}
		return "https://" + r.cfg.Canister + "." + r.cfg.HostedDomain + "/?imgid=" + url.QueryEscape(ref)
	case EnvironmentStorage:
		base := strings.TrimSuffix(r.cfg.PublicBaseURL, "/")
		if base == "" || r.cfg.Bucket == "" {
			return r.cfg.Fallback
		}
		return base + "/" + storage.ObjectPath(r.cfg.Bucket, storage.ObjectPath(r.cfg.MediaPrefix, url.PathEscape(ref)))
	default:
		return r.cfg.Fallback
	}
}
