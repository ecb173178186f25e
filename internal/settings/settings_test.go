package settings

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/kv"
	"github.com/matheus3301/baatchit/internal/store"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*kv.Store, *kv.Writer) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s := kv.New(db, zap.NewNop())
	w := kv.NewWriter(s, nil, zap.NewNop())
	w.Start(context.Background())
	t.Cleanup(w.Stop)
	return s, w
}

func ptr[T any](v T) *T { return &v }

func waitAck(t *testing.T, ack <-chan error) {
	t.Helper()
	select {
	case err := <-ack:
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("write never acknowledged")
	}
}

func TestLoadMissingYieldsDefaults(t *testing.T) {
	kvs, w := setup(t)
	s := New(w, nil, zap.NewNop())
	if got := s.Load(context.Background(), kvs); got != Defaults() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoadCorruptYieldsDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"wrong shape", []string{"a", "b"}},
		{"unknown font size", map[string]any{"fontSize": "huge", "language": "fr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kvs, w := setup(t)
			if err := kvs.SetItem(context.Background(), kv.KeyUserSettings, tt.value); err != nil {
				t.Fatal(err)
			}
			s := New(w, nil, zap.NewNop())
			if got := s.Load(context.Background(), kvs); got != Defaults() {
				t.Errorf("Load() = %+v, want defaults", got)
			}
		})
	}
}

func TestUpdatePersistsAndReloads(t *testing.T) {
	kvs, w := setup(t)
	b := bus.New()
	events, unsub := b.Subscribe("settings.", 4)
	defer unsub()

	s := New(w, b, zap.NewNop())
	got, err := s.Update(Patch{SoundEnabled: ptr(false), FontSize: ptr("large")})
	if err != nil {
		t.Fatal(err)
	}
	if got.SoundEnabled || got.FontSize != Large || !got.NotificationsEnabled || got.Language != "en" {
		t.Errorf("Update() = %+v", got)
	}
	waitAck(t, s.Save())

	select {
	case evt := <-events:
		if evt.Payload.(Settings).FontSize != Large {
			t.Errorf("event payload = %+v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no settings.changed event")
	}

	reloaded := New(nil, nil, zap.NewNop()).Load(context.Background(), kvs)
	if reloaded != got {
		t.Errorf("reloaded = %+v, want %+v", reloaded, got)
	}
}

func TestUpdateRejectsInvalidFontSize(t *testing.T) {
	s := New(nil, nil, zap.NewNop())
	_, err := s.Update(Patch{Language: ptr("de"), FontSize: ptr("tiny")})
	if !errors.Is(err, ErrInvalidFontSize) {
		t.Fatalf("err = %v, want ErrInvalidFontSize", err)
	}
	if s.Current().Language != "en" {
		t.Error("rejected patch was partially applied")
	}
}

func TestReset(t *testing.T) {
	kvs, w := setup(t)
	s := New(w, nil, zap.NewNop())
	if _, err := s.Update(Patch{Language: ptr("ur"), ChatBackgroundColor: ptr("#000000")}); err != nil {
		t.Fatal(err)
	}
	if got := s.Reset(); got != Defaults() {
		t.Errorf("Reset() = %+v", got)
	}
	waitAck(t, s.Save())

	if got := New(nil, nil, zap.NewNop()).Load(context.Background(), kvs); got != Defaults() {
		t.Errorf("persisted after reset = %+v", got)
	}
}

type gatedPersister struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu     sync.Mutex
	writes []Settings
}

func (g *gatedPersister) Put(_ string, value any) <-chan error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	g.mu.Lock()
	g.writes = append(g.writes, value.(Settings))
	g.mu.Unlock()
	ack := make(chan error, 1)
	ack <- nil
	return ack
}

func TestConcurrentUpdatesPersistInOrder(t *testing.T) {
	p := &gatedPersister{entered: make(chan struct{}), release: make(chan struct{})}
	s := New(p, nil, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _, _ = s.Update(Patch{Language: ptr("fr")}) }()
	<-p.entered
	go func() { defer wg.Done(); _, _ = s.Update(Patch{Language: ptr("de")}) }()
	time.Sleep(20 * time.Millisecond)
	close(p.release)
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(p.writes))
	}
	if got, want := p.writes[1], s.Current(); got != want {
		t.Errorf("last persisted %+v, in memory %+v", got, want)
	}
	if p.writes[1].Language != "de" {
		t.Errorf("last language = %q, want de", p.writes[1].Language)
	}
}
