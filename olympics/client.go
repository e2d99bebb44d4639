// Package olympics fetches the daily schedule from the Olympics API.
package olympics

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"olysched/model"
)

// Client fetches day schedules. Zero-retry: the caller decides whether a
// failed fetch is fatal.
type Client struct {
	baseURL    string
	userAgent  string
	dumpPath   string // when set, raw responses are written here
	httpClient *http.Client
}

// NewClient builds a schedule client. dumpPath may be empty to disable
// response dumping.
func NewClient(baseURL, userAgent string, timeout time.Duration, dumpPath string) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		dumpPath:   dumpPath,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchDay retrieves and parses the schedule for a calendar date given as
// ISO "YYYY-MM-DD". A payload without units parses to an empty schedule;
// that is a valid "no data" day, not an error.
func (c *Client) FetchDay(ctx context.Context, date string) (model.Schedule, error) {
	url := fmt.Sprintf("%s/day/%s", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("building schedule request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("schedule fetch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.Schedule{}, fmt.Errorf("schedule fetch failed with status code %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to read schedule response body: %w", err)
	}

	if c.dumpPath != "" {
		if err := os.WriteFile(c.dumpPath, body, 0644); err != nil {
			log.Printf("Failed to dump schedule response to %s: %v", c.dumpPath, err)
		}
	}

	return model.ParseSchedule(body), nil
}
