// Package rates fetches headline 30-year and 15-year fixed mortgage rates
// from a third-party API, with a static fallback pair so calculators always
// have numbers to prefill. The rest of the system only ever sees a Quote.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
)

const (
	defaultBaseURL = "https://api.ratefeed.dev/v1"
	series30Year   = "30-year-fixed"
	series15Year   = "15-year-fixed"

	apiKeyEnvVar = "RATES_API_KEY"

	requestTimeout  = 10 * time.Second
	defaultCacheTTL = time.Hour
	cacheKey        = "mortgage-rates:current"
)

// Quote is a pair of headline fixed-rate mortgage rates. Estimated marks
// quotes built from the static fallback rather than a live source.
type Quote struct {
	Rate30Year float64   `json:"rate30Year"`
	Rate15Year float64   `json:"rate15Year"`
	AsOf       time.Time `json:"asOf"`
	Estimated  bool      `json:"estimated"`
}

// Fallback returns the static rate pair used when no live source is
// reachable.
func Fallback() Quote {
	return Quote{
		Rate30Year: constants.FallbackRate30Year,
		Rate15Year: constants.FallbackRate15Year,
		AsOf:       time.Now().UTC(),
		Estimated:  true,
	}
}

// Client fetches rate quotes, optionally through a cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different rates API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithAPIKey overrides the key read from the environment.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithCache puts a cache in front of the live fetch.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient builds a rate client. The API key is read from RATES_API_KEY,
// loading a .env file first when one is present. A nil logger disables
// logging.
func NewClient(logger *zap.Logger, opts ...Option) *Client {
	_ = godotenv.Load()
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     os.Getenv(apiKeyEnvVar),
		cacheTTL:   defaultCacheTTL,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns a fresh cached quote when one exists, otherwise fetches
// and caches a live one. Fallback quotes are never cached.
func (c *Client) Current(ctx context.Context) Quote {
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey); ok {
			var quote Quote
			if err := json.Unmarshal([]byte(raw), &quote); err == nil {
				return quote
			}
			c.logger.Warn("discarding unreadable cached rate quote",
				zap.String("op", "rates.Client.Current"),
			)
		}
	}

	quote := c.Fetch(ctx)

	if c.cache != nil && !quote.Estimated {
		raw, err := json.Marshal(quote)
		if err == nil {
			err = c.cache.Set(ctx, cacheKey, string(raw), c.cacheTTL)
		}
		if err != nil {
			c.logger.Warn("failed to cache rate quote",
				zap.String("op", "rates.Client.Current"),
				zap.Error(err),
			)
		}
	}
	return quote
}

// Fetch gets both series concurrently. Any failure (missing key, transport
// error, bad status, malformed body) degrades to the static fallback pair.
func (c *Client) Fetch(ctx context.Context) Quote {
	if c.apiKey == "" {
		c.logger.Debug("no rates API key configured, using fallback rates",
			zap.String("op", "rates.Client.Fetch"),
		)
		return Fallback()
	}

	var rate30, rate15 float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rate30, err = c.fetchSeries(gctx, series30Year)
		return err
	})
	g.Go(func() error {
		var err error
		rate15, err = c.fetchSeries(gctx, series15Year)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("live rate fetch failed, using fallback rates",
			zap.String("op", "rates.Client.Fetch"),
			zap.Error(err),
		)
		return Fallback()
	}

	return Quote{
		Rate30Year: rate30,
		Rate15Year: rate15,
		AsOf:       time.Now().UTC(),
	}
}

type seriesResponse struct {
	Series      string  `json:"series"`
	RatePercent float64 `json:"ratePercent"`
}

func (c *Client) fetchSeries(ctx context.Context, series string) (float64, error) {
	u := fmt.Sprintf("%s/rates/%s?apikey=%s", c.baseURL, series, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("rates api: build request for %s: %w", series, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rates api: %s: %w", series, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rates api: unexpected status %d for %s", resp.StatusCode, series)
	}

	var payload seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("rates api: decode %s: %w", series, err)
	}
	if payload.RatePercent <= 0 {
		return 0, fmt.Errorf("rates api: non-positive rate %.2f for %s", payload.RatePercent, series)
	}
	return payload.RatePercent, nil
}
