// Package api is the typed client for the sentiment backend's JSON API.
// Every response is wrapped in a {success, data, error} envelope; an
// envelope with success=false is reported as an error just like a
// transport failure.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// The backend wraps its own 5xx responses in the envelope; only
		// report the status when the body wasn't one.
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
		}
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("fetching %s: backend error: %s", path, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding %s payload: %w", path, err)
	}
	return nil
}

// Summary fetches the current sentiment shares. platform filters to one
// platform when non-empty; hours bounds the lookback window.
func (c *Client) Summary(ctx context.Context, platform string, hours int) (Summary, error) {
	q := url.Values{}
	if platform != "" {
		q.Set("platform", platform)
	}
	if hours > 0 {
		q.Set("hours", strconv.Itoa(hours))
	}
	var s Summary
	err := c.get(ctx, "/api/sentiment/summary", q, &s)
	return s, err
}

// Trends fetches the raw per-hour classification counters for the last
// days days.
func (c *Client) Trends(ctx context.Context, days int) ([]RawSample, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var samples []RawSample
	err := c.get(ctx, "/api/sentiment/trends", q, &samples)
	return samples, err
}

// TopPosts fetches the highest-confidence posts for one category.
func (c *Client) TopPosts(ctx context.Context, sentiment Sentiment, limit int) ([]Post, error) {
	q := url.Values{}
	q.Set("sentiment", string(sentiment))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var posts []Post
	err := c.get(ctx, "/api/posts/top", q, &posts)
	return posts, err
}

// Overview fetches per-platform summaries for the last 24 hours.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	err := c.get(ctx, "/api/stats/overview", nil, &o)
	return o, err
}
