package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultAPIURL = "https://www.googleapis.com/books/v1"

	// Google Books allows ~100 requests per 100 seconds per user
	rateLimit = 1
	rateBurst = 5

	// Retry configuration
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 16 * time.Second
)

var ErrVolumeNotFound = errors.New("volume not found")

// Client handles Google Books API requests with rate limiting
type Client struct {
	apiURL      string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new Google Books API client. The API key is optional,
// the public endpoints work without one at a lower quota.
func NewClient(apiURL, apiKey string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Search queries the volumes endpoint and returns normalized results.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	if maxResults <= 0 || maxResults > 40 {
		maxResults = 20
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("printType", "books")

	var resp volumesResponse
	if err := c.doRequest(ctx, "/volumes?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("failed to search volumes: %w", err)
	}

	volumes := make([]Volume, 0, len(resp.Items))
	for _, item := range resp.Items {
		volumes = append(volumes, normalizeVolume(item))
	}
	return volumes, nil
}

// VolumeByID fetches a single volume by its Google Books identifier.
func (c *Client) VolumeByID(ctx context.Context, id string) (*Volume, error) {
	var resp volumeResource
	if err := c.doRequest(ctx, "/volumes/"+url.PathEscape(id), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch volume %s: %w", id, err)
	}
	vol := normalizeVolume(resp)
	return &vol, nil
}

func (c *Client) doRequest(ctx context.Context, path string, result interface{}) error {
	fullURL := c.apiURL + path
	if c.apiKey != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		fullURL += sep + "key=" + url.QueryEscape(c.apiKey)
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Rate limit
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				log.Printf("[GoogleBooks] Request failed (attempt %d/%d): %v, retrying in %v...",
					attempt+1, maxRetries, err, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			return ErrVolumeNotFound
		}

		if resp.StatusCode != http.StatusOK {
			if shouldRetry(resp.StatusCode) && attempt < maxRetries {
				lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
				log.Printf("[GoogleBooks] HTTP %d (attempt %d/%d), retrying in %v...",
					resp.StatusCode, attempt+1, maxRetries, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
		}

		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// shouldRetry reports whether an HTTP status is worth retrying
func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// normalizeVolume flattens the API resource and upgrades image links to
// https. The API still hands out http:// thumbnails.
func normalizeVolume(res volumeResource) Volume {
	info := res.VolumeInfo

	cover := info.ImageLinks.Large
	if cover == "" {
		cover = info.ImageLinks.Medium
	}
	if cover == "" {
		cover = info.ImageLinks.Small
	}
	if cover == "" {
		cover = info.ImageLinks.Thumbnail
	}

	return Volume{
		GoogleBooksID: res.ID,
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		PageCount:     info.PageCount,
		Categories:    info.Categories,
		Thumbnail:     secureURL(info.ImageLinks.Thumbnail),
		CoverImage:    secureURL(cover),
		PublishedDate: info.PublishedDate,
		Publisher:     info.Publisher,
	}
}

func secureURL(raw string) string {
	return strings.Replace(raw, "http://", "https://", 1)
}
