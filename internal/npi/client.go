package npi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/totallife/clinical-api/pkg/metrics"
)

// ErrRegistryUnavailable marks lookups that could not reach a usable
// registry response. It is never a verification verdict.
var ErrRegistryUnavailable = errors.New("npi registry unavailable")

const (
	DefaultBaseURL = "https://npiregistry.cms.hhs.gov/api/"
	DefaultVersion = "2.1"
	DefaultTimeout = 10 * time.Second
)

// Lookup outcomes recorded in metrics
const (
	OutcomeVerified = "verified"
	OutcomeMismatch = "mismatch"
	OutcomeError    = "error"
)

// Query is the identity being checked against the registry
type Query struct {
	Number    string
	FirstName string
	LastName  string
	State     string
}

// Verifier checks a clinician identity against the registry
type Verifier interface {
	Verify(ctx context.Context, q Query) (bool, error)
}

type Config struct {
	BaseURL string
	Version string
	Timeout time.Duration
}

// Client queries the public NPI registry
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	metrics    *metrics.Metrics
}

type response struct {
	Results []result `json:"results"`
}

type result struct {
	Basic *struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"basic"`
	Addresses []struct {
		State string `json:"state"`
	} `json:"addresses"`
}

// NewClient creates a registry client. Zero config values fall back to
// the public registry defaults.
func NewClient(cfg Config, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		version: cfg.Version,
		metrics: m,
	}
}

// Verify reports whether the first registry result for the number carries
// the same first and last name and has an address in the given state.
func (c *Client) Verify(ctx context.Context, q Query) (bool, error) {
	startTime := time.Now()

	ok, err := c.verify(ctx, q)
	switch {
	case err != nil:
		c.metrics.ObserveRegistry(OutcomeError, startTime)
	case ok:
		c.metrics.ObserveRegistry(OutcomeVerified, startTime)
	default:
		c.metrics.ObserveRegistry(OutcomeMismatch, startTime)
	}
	return ok, err
}

func (c *Client) verify(ctx context.Context, q Query) (bool, error) {
	endpoint, err := c.lookupURL(q)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close registry response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("%w: registry returned status %d", ErrRegistryUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: failed to read response body: %v", ErrRegistryUnavailable, err)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Warn().Err(err).Str("npi_number", q.Number).Msg("Undecodable registry response")
		return false, nil
	}

	return parsed.matches(q), nil
}

func (c *Client) lookupURL(q Query) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("number", q.Number)
	params.Set("first_name", q.FirstName)
	params.Set("last_name", q.LastName)
	params.Set("state", q.State)
	params.Set("version", c.version)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (r response) matches(q Query) bool {
	if len(r.Results) == 0 {
		return false
	}
	first := r.Results[0]
	if first.Basic == nil {
		return false
	}
	if first.Basic.FirstName != q.FirstName || first.Basic.LastName != q.LastName {
		return false
	}
	for _, addr := range first.Addresses {
		if addr.State == q.State {
			return true
		}
	}
	return false
}
