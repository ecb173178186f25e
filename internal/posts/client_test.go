package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL, 2*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestGetPostsWithUsersJoins(t *testing.T) {
	var gotUserAgent atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/posts":
			_ = json.NewEncoder(w).Encode([]Post{
				{ID: 1, UserID: 7, Title: "a"},
				{ID: 2, UserID: 9, Title: "orphan"},
			})
		case "/users":
			_ = json.NewEncoder(w).Encode([]User{{ID: 7, Name: "Kurtis Weissnat", Username: "Elwyn.Skiles"}})
		default:
			http.NotFound(w, r)
		}
	})

	res := c.GetPostsWithUsers(context.Background())
	if res.Source != SourceRemote {
		t.Fatalf("Source = %q, want remote", res.Source)
	}
	if len(res.Posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(res.Posts))
	}
	if u := res.Posts[0].User; u == nil || u.Username != "Elwyn.Skiles" {
		t.Errorf("post 1 user = %+v", u)
	}
	if res.Posts[1].User != nil {
		t.Errorf("orphan post joined to %+v", res.Posts[1].User)
	}
	if gotUserAgent.Load() != defaultUserAgent {
		t.Errorf("User-Agent = %v", gotUserAgent.Load())
	}
}

func TestGetPostsWithUsersFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/users" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte("[]"))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
		{"not found", http.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestClient(t, tt.handler).GetPostsWithUsers(context.Background())
			assertFallback(t, res)
		})
	}
}

func TestGetPostsWithUsersUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, time.Second, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	assertFallback(t, c.GetPostsWithUsers(context.Background()))
}

func assertFallback(t *testing.T, res Result) {
	t.Helper()
	if res.Source != SourceFallback {
		t.Fatalf("Source = %q, want fallback", res.Source)
	}
	if len(res.Posts) != 5 {
		t.Fatalf("posts = %d, want 5", len(res.Posts))
	}
	users := map[int]string{}
	for _, p := range res.Posts {
		if p.User == nil || p.User.ID != p.UserID {
			t.Fatalf("post %d not joined: %+v", p.ID, p.User)
		}
		users[p.User.ID] = p.User.Name
	}
	if len(users) != 2 || users[1] != "Leanne Graham" || users[2] != "Ervin Howell" {
		t.Errorf("fallback users = %v", users)
	}
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://jsonplaceholder.typicode.com", "https://jsonplaceholder.typicode.com", false},
		{"example.com/api?x=1#f", "https://example.com/api", false},
		{"  ", "", true},
	}
	for _, tt := range tests {
		u, err := parseBaseURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBaseURL(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && u.String() != tt.want {
			t.Errorf("parseBaseURL(%q) = %q, want %q", tt.in, u.String(), tt.want)
		}
	}
}

type countingFetcher struct {
	calls atomic.Int32
}

func (c *countingFetcher) FetchJoined(context.Context) ([]Post, error) {
	c.calls.Add(1)
	return Fallback().Posts, nil
}

func TestFeedCachesUntilStale(t *testing.T) {
	f := &countingFetcher{}
	b := bus.New()
	events, unsub := b.Subscribe("posts.", 8)
	defer unsub()

	feed := NewFeed(f, b, zap.NewNop())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	feed.now = func() time.Time { return now }

	feed.Get(context.Background(), false)
	feed.Get(context.Background(), false)
	if got := f.calls.Load(); got != 1 {
		t.Fatalf("fetches = %d, want 1 while fresh", got)
	}

	feed.Get(context.Background(), true)
	if got := f.calls.Load(); got != 2 {
		t.Fatalf("fetches = %d, want 2 after refresh", got)
	}

	now = now.Add(StaleAfter + time.Second)
	res := feed.Get(context.Background(), false)
	if got := f.calls.Load(); got != 3 {
		t.Fatalf("fetches = %d, want 3 after going stale", got)
	}
	if len(res.Posts) != 5 {
		t.Errorf("posts = %d", len(res.Posts))
	}

	if n := len(events); n != 3 {
		t.Errorf("posts.loaded events = %d, want 3", n)
	}
}

// flakyFetcher fails its first failures calls.
type flakyFetcher struct {
	failures int32
	calls    atomic.Int32
}

func (f *flakyFetcher) FetchJoined(context.Context) ([]Post, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("connection refused")
	}
	return []Post{{ID: 1, Title: "remote"}}, nil
}

func TestFeedRetriesBeforeFallback(t *testing.T) {
	f := &flakyFetcher{failures: 2}
	feed := NewFeed(f, nil, zap.NewNop())
	feed.retryDelay = time.Millisecond

	res := feed.Get(context.Background(), false)
	if res.Source != SourceRemote || f.calls.Load() != 3 {
		t.Errorf("source = %s after %d calls, want remote after 3", res.Source, f.calls.Load())
	}
}

func TestFeedDoesNotCacheFallback(t *testing.T) {
	f := &flakyFetcher{failures: 1 << 30}
	feed := NewFeed(f, nil, zap.NewNop())
	feed.retryDelay = time.Millisecond

	if res := feed.Get(context.Background(), false); res.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", res.Source)
	}
	if got := f.calls.Load(); got != Retries+1 {
		t.Errorf("calls = %d, want %d", got, Retries+1)
	}
	feed.Get(context.Background(), false)
	if got := f.calls.Load(); got != 2*(Retries+1) {
		t.Errorf("calls = %d, want a fresh fetch after a fallback", got)
	}
}

func TestFeedOutlivesShortCaller(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(50 * time.Millisecond)
		switch r.URL.Path {
		case "/posts":
			_ = json.NewEncoder(w).Encode([]Post{{ID: 1, UserID: 1, Title: "slow"}})
		case "/users":
			_ = json.NewEncoder(w).Encode([]User{{ID: 1, Name: "Leanne Graham"}})
		}
	})
	feed := NewFeed(c, nil, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if res := feed.Get(ctx, false); res.Source != SourceRemote {
		t.Errorf("first Get source = %s, want remote", res.Source)
	}
	if res := feed.Get(context.Background(), false); res.Source != SourceRemote || res.Posts[0].Title != "slow" {
		t.Errorf("second Get = %+v, want cached remote", res)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2", got)
	}
}
