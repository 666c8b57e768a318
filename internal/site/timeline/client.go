package timeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/portfolio/portfolio-api/internal/pkg/validator"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20

	experiencesPath = "/api/experiences"
)

// ErrMalformedPayload is returned when the content API answers 2xx with a body
// that is not a valid experience array.
var ErrMalformedPayload = errors.New("malformed experiences payload")

// Client reads experiences from the content API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a content API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchExperiences issues a single GET /api/experiences and returns the
// records in server order.
func (c *Client) FetchExperiences(ctx context.Context) ([]Item, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("content api request error: client is nil")
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("content api config error: base_url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+experiencesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("content api request error: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("content api read error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("content api http error: status=%d body=%s", resp.StatusCode, truncate(string(body), 200))
	}

	return decodeItems(body)
}

func decodeItems(body []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformedPayload)
	}

	for i := range items {
		if fields := validator.Validate(&items[i]); fields != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedPayload, i, fields)
		}
	}
	return items, nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("content api timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("content api network error: %w", err)
	}
	return fmt.Errorf("content api request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "...<truncated>"
	}
	return s
}
