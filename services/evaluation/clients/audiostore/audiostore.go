// Package audiostore fetches recorded audio containers over HTTP.
package audiostore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/talkready/backend/pkg/httputil"
)

type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

func New(log *slog.Logger) *Client {
	return &Client{
		httpClient: httputil.SharedClient(),
		log:        log,
	}
}

// Fetch downloads the audio container at url. Anything but a 2xx response is
// a failure; the body is never partially consumed into a result.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	c.log.Debug("fetching audio", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build audio request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("audio fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("audio store returned error status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("url", url))
		return nil, fmt.Errorf("fetch audio: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio body: %w", err)
	}

	c.log.Info("audio downloaded", slog.Int("size", len(body)))
	return body, nil
}
