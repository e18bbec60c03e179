package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
)

// ErrUnexpectedStatus is wrapped when the data source answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client loads datasets over HTTP or from the local filesystem.
type Client struct {
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a dataset client. A zero timeout disables the client timeout.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Load fetches the document at location and transforms it. location is an
// http(s) URL, a file:// URL, or a plain filesystem path.
func (c *Client) Load(ctx context.Context, location string) (domain.Dataset, error) {
	start := time.Now()
	body, err := c.read(ctx, location)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.Fetches.WithLabelValues("error").Inc()
		return domain.Dataset{}, err
	}

	raw, err := domain.ParseDataset(body)
	if err != nil {
		c.metrics.Fetches.WithLabelValues("invalid").Inc()
		return domain.Dataset{}, err
	}
	c.metrics.Fetches.WithLabelValues("success").Inc()

	ds := domain.Transform(raw)
	c.metrics.ObservationsLoaded.Set(float64(ds.Len()))
	c.logger.Debug("dataset loaded", "location", location, "observations", ds.Len(), "bytes", len(body))
	return ds, nil
}

func (c *Client) read(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse source location: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return c.get(ctx, location)
	case "file":
		// file://data.json parses "data.json" as the host.
		return readFile(u.Host + u.Path)
	case "":
		return readFile(location)
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snip, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("fetch dataset: %w %d: %s", ErrUnexpectedStatus, resp.StatusCode, snip)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return body, nil
}
