package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"globaljobhunter-engine/internal/timeutil"
)

// maxResponseBytes bounds how much of a provider response we will buffer.
const maxResponseBytes = 8 << 20

// Client is the pooled HTTP client adapters share per provider. GetJSON
// maps statuses to the outcome errors and retries a 5xx once with jitter.
type Client struct {
	hc     *http.Client
	jitter timeutil.Jitter
	agent  string
}

func NewClient(timeout time.Duration, jitter timeutil.Jitter) *Client {
	if jitter == nil {
		jitter = timeutil.NewJitter(0)
	}
	return &Client{
		hc:     &http.Client{Timeout: timeout},
		jitter: jitter,
		agent:  "GlobalJobHunter/1.0 (+engine)",
	}
}

// GetJSON fetches rawURL with the query params and decodes the body into
// target. Non-200 statuses become outcome errors; a transient 5xx gets one
// retry after a short jittered pause.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, target any) error {
	err := c.getOnce(ctx, rawURL, params, target)
	if err == nil || !errors.Is(err, ErrTransient) {
		return err
	}
	pause := 300*time.Millisecond + c.jitter.Duration(300*time.Millisecond)
	select {
	case <-ctx.Done():
		return fmt.Errorf("retry wait: %w", ErrTimeout)
	case <-time.After(pause):
	}
	return c.getOnce(ctx, rawURL, params, target)
}

func (c *Client) getOnce(ctx context.Context, rawURL string, params url.Values, target any) error {
	u := rawURL
	if len(params) > 0 {
		u = rawURL + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("get %s: %w", rawURL, ErrTimeout)
		}
		return fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if serr := StatusError(res.StatusCode); serr != nil {
		return serr
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("read body: %w", ErrTimeout)
		}
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode body: %w", ErrProtocol)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
