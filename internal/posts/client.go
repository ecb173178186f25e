// Package posts fetches the demo posts feed and joins posts to their
// authors.
package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultUserAgent = "baatchit/0.1"
	defaultTimeout   = 10 * time.Second
)

// Fetcher is implemented by *Client.
type Fetcher interface {
	FetchJoined(ctx context.Context) ([]Post, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the posts HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

// NewClient builds a Client for baseURL. A zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// GetPosts lists all posts.
func (c *Client) GetPosts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := c.do(ctx, "posts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUsers lists all users.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, "users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPostsWithUsers fetches posts and users in parallel and joins them.
// Any failure yields the fallback dataset; the result never carries an
// error.
func (c *Client) GetPostsWithUsers(ctx context.Context) Result {
	posts, err := c.FetchJoined(ctx)
	if err != nil {
		c.logger.Warn("posts fetch failed, serving fallback", zap.String("base_url", c.baseURL.String()), zap.Error(err))
		return Fallback()
	}
	return Result{Posts: posts, Source: SourceRemote}
}

// FetchJoined fetches posts and users in parallel and joins them.
func (c *Client) FetchJoined(ctx context.Context) ([]Post, error) {
	var (
		posts []Post
		users []User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = c.GetPosts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = c.GetUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Join(posts, users), nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api /%s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode /%s: %w", path, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty base url")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
