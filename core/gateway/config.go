package gateway

import "time"

// Config holds configuration for the remote collection gateway.
type Config struct {
	// BaseURL is the gateway origin, e.g. https://gateway.example.com/api.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8081"`
	// Token is sent as a bearer token when set.
	Token string `mapstructure:"token" default:""`
	// Caller is the principal sent in X-Caller-Principal on listing requests.
	Caller string `mapstructure:"caller" default:""`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxRetries bounds retries on HTTP 429.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
}

// Timeout returns the request timeout, defaulting to 15 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
