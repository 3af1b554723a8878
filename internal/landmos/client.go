// Package landmos talks to the remote LandMOS station API and prepares
// its GNSS time-series payloads for analysis.
package landmos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dookda/cmu-landmos-ai/internal/metrics"
)

// Failure categories for status mapping: timeouts become 504 upstream,
// everything else 502.
var (
	ErrTimeout     = errors.New("LandMOS API request timed out")
	ErrUnreachable = errors.New("cannot connect to LandMOS API server")
)

// UpstreamError is a non-200 answer from the LandMOS API.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("LandMOS API error: %s", e.Detail)
}

type Query struct {
	StatCode  string
	StartDate string
	EndDate   string
}

type Client struct {
	logger  *log.Logger
	baseURL string
	httpc   *http.Client
}

func NewClient(logger *log.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves station records by station code and optional date
// range. One attempt, no retries.
func (c *Client) Fetch(ctx context.Context, q Query) (*Dataset, error) {
	values := url.Values{}
	values.Set("stat_code", q.StatCode)
	if q.StartDate != "" {
		values.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("end_date", q.EndDate)
	}

	u := fmt.Sprintf("%s/stations/data_by_stat_code?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Printf("error fetching station data for %s: %v\n", q.StatCode, err)
		metrics.ObserveStationFetch("error", time.Since(start))
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveStationFetch("error", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveStationFetch("upstream_error", time.Since(start))
		detail := strings.TrimSpace(string(raw))
		if detail == "" {
			detail = fmt.Sprintf("status %d", resp.StatusCode)
		} else if runes := []rune(detail); len(runes) > 300 {
			detail = string(runes[:300])
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Detail: detail}
	}

	metrics.ObserveStationFetch("ok", time.Since(start))
	return NewDataset(raw), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
