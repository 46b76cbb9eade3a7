// Package catalog reads paginated artwork records from the public artwork
// catalog REST API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public artwork catalog API root.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// maxErrorBody bounds how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Fetcher reads one page of artworks.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (Page, error)
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root; "/artworks" is appended.
	BaseURL string

	// UserAgent identifies this program to the catalog.
	UserAgent string

	// Timeout bounds a single request.
	Timeout time.Duration

	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// DefaultConfig returns the configuration used against the public catalog.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "artworks/dev",
		Timeout:   30 * time.Second,
	}
}

// Client is the catalog HTTP client.
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
	userAgent  string
	logger     zerolog.Logger
}

// New creates a catalog client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("base url is required")
	}
	endpoint, err := url.Parse(strings.TrimRight(base, "/") + "/artworks")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http(s), got %q", base)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		userAgent:  cfg.UserAgent,
		logger:     log.With().Str("component", "catalog").Logger(),
	}, nil
}

// FetchPage issues GET /artworks?page={page}&limit=10. It performs exactly one
// request; failures are returned as *APIError.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, ErrInvalidPage
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(PageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}

	logger := c.logger.With().Int("page", page).Str("request_id", requestID).Logger()
	start := time.Now()
	defer func() {
		FetchDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		FetchRequests.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return Page{}, c.fail(&APIError{Class: ErrorClassNetwork, Message: "request failed", Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		FetchRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Page{}, c.fail(statusError(resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var decoded artworksResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		FetchRequests.WithLabelValues(string(ErrorClassDecode)).Inc()
		return Page{}, c.fail(&APIError{StatusCode: resp.StatusCode, Class: ErrorClassDecode, Message: "decode artworks", Err: err})
	}

	records := make([]Artwork, 0, len(decoded.Data))
	for _, raw := range decoded.Data {
		a, err := raw.toArtwork()
		if err != nil {
			FetchRequests.WithLabelValues(string(ErrorClassDecode)).Inc()
			return Page{}, c.fail(&APIError{StatusCode: resp.StatusCode, Class: ErrorClassDecode, Message: "decode artworks", Err: err})
		}
		records = append(records, a)
	}
	FetchRequests.WithLabelValues("ok").Inc()

	logger.Debug().
		Int("records", len(records)).
		Int("total", decoded.Pagination.Total).
		Dur("duration", time.Since(start)).
		Msg("Fetched artworks page")

	return Page{Number: page, Records: records, TotalRecords: decoded.Pagination.Total}, nil
}

func (c *Client) fail(err *APIError) error {
	FetchErrors.WithLabelValues(string(err.Class)).Inc()
	if errors.Is(err.Err, context.Canceled) {
		c.logger.Debug().Err(err).Msg("Artworks request cancelled")
	}
	return err
}
