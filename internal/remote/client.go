package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 10 << 20
	sourceName      = "grades source"
)

type Config struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	MaxBytes int64
}

// LoadConfigFromEnv returns nil when REMOTE_SOURCE_URL is unset: remote fetching is optional.
func LoadConfigFromEnv() (*Config, error) {
	baseURL := os.Getenv("REMOTE_SOURCE_URL")
	if baseURL == "" {
		return nil, nil
	}

	cfg := &Config{
		BaseURL:  baseURL,
		Token:    os.Getenv("REMOTE_SOURCE_TOKEN"),
		Timeout:  defaultTimeout,
		MaxBytes: defaultMaxBytes,
	}
	if v := os.Getenv("REMOTE_SOURCE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REMOTE_SOURCE_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("REMOTE_SOURCE_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid REMOTE_SOURCE_MAX_BYTES: %q", v)
		}
		cfg.MaxBytes = n
	}
	return cfg, nil
}

type ClientOption func(*Client)

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.http = httpClient
	}
}

// Client downloads grades files by name from a configured base location.
type Client struct {
	base     url.URL
	token    string
	maxBytes int64
	http     *http.Client
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported remote source scheme %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	c := &Client{
		base:     *base,
		token:    cfg.Token,
		maxBytes: maxBytes,
		http:     &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch returns the content of the named object. Names are relative to the base URL.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.NewValidation("source name is required")
	}
	if strings.Contains(name, "..") || strings.Contains(name, "://") {
		return nil, apperr.NewValidation("invalid source name: " + name)
	}

	reqURL := c.base.JoinPath(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, text/plain, application/octet-stream")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperr.UpstreamError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NewValidation("source not found: " + name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.UpstreamError{Source: sourceName, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, &apperr.UpstreamError{Source: sourceName, Err: err}
	}
	if int64(len(body)) > c.maxBytes {
		return nil, &apperr.UpstreamError{Source: sourceName, Err: errors.New("response exceeds size limit")}
	}
	return body, nil
}
