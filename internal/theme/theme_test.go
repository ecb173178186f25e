package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// recordingPersister acknowledges every write immediately.
type recordingPersister struct {
	mu     sync.Mutex
	writes []any
	keys   []string
}

func (r *recordingPersister) Put(key string, value any) <-chan error {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.writes = append(r.writes, value)
	r.mu.Unlock()
	ack := make(chan error, 1)
	ack <- nil
	return ack
}

type staticSource struct {
	mode string
	ok   bool
}

func (s staticSource) ThemeMode(context.Context) (string, bool) { return s.mode, s.ok }

func TestInitialState(t *testing.T) {
	s := New(nil, nil, zap.NewNop())
	st := s.Current()
	if st.Mode != Light || !st.IsSystemDerived {
		t.Errorf("initial = %+v, want light system-derived", st)
	}
}

func TestToggleTwiceRestoresAndWritesEachTime(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, nil, zap.NewNop())

	first := s.Toggle()
	if first.Mode != Dark || first.IsSystemDerived {
		t.Errorf("after first toggle = %+v, want dark explicit", first)
	}
	second := s.Toggle()
	if second.Mode != Light {
		t.Errorf("after second toggle = %+v, want light", second)
	}

	if len(p.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(p.writes))
	}
	if p.writes[0] != "dark" || p.writes[1] != "light" {
		t.Errorf("writes = %v, want [dark light]", p.writes)
	}
	for _, k := range p.keys {
		if k != "@theme_mode" {
			t.Errorf("write key = %q, want @theme_mode", k)
		}
	}
}

func TestSet(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, nil, zap.NewNop())

	st, err := s.Set(Dark)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode != Dark || st.IsSystemDerived {
		t.Errorf("Set(dark) = %+v", st)
	}

	if _, err := s.Set("sepia"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Set(sepia) error = %v, want ErrInvalidMode", err)
	}
	if s.Current().Mode != Dark {
		t.Error("invalid Set changed the mode")
	}
	if len(p.writes) != 1 {
		t.Errorf("writes = %d, want 1", len(p.writes))
	}
}

func TestSetSystemDerivedDoesNotPersist(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, nil, zap.NewNop())
	s.Toggle()

	st := s.SetSystemDerived(true)
	if !st.IsSystemDerived || st.Mode != Dark {
		t.Errorf("state = %+v, want dark system-derived", st)
	}
	if len(p.writes) != 1 {
		t.Errorf("writes = %d, want 1", len(p.writes))
	}
}

func TestLoadOnStartup(t *testing.T) {
	tests := []struct {
		name       string
		src        staticSource
		wantMode   Mode
		wantSystem bool
	}{
		{"absent", staticSource{}, Light, true},
		{"dark", staticSource{mode: "dark", ok: true}, Dark, false},
		{"light", staticSource{mode: "light", ok: true}, Light, false},
		{"garbage", staticSource{mode: "purple", ok: true}, Light, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPersister{}
			s := New(p, nil, zap.NewNop())
			st := s.LoadOnStartup(context.Background(), tt.src)
			if st.Mode != tt.wantMode || st.IsSystemDerived != tt.wantSystem {
				t.Errorf("LoadOnStartup() = %+v, want {%s %v}", st, tt.wantMode, tt.wantSystem)
			}
			if len(p.writes) != 0 {
				t.Errorf("load issued %d writes, want 0", len(p.writes))
			}
		})
	}
}

// gatedPersister stalls the first Put until release is closed and records
// values in the order they reach it.
type gatedPersister struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu     sync.Mutex
	writes []any
}

func newGatedPersister() *gatedPersister {
	return &gatedPersister{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedPersister) Put(_ string, value any) <-chan error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	g.mu.Lock()
	g.writes = append(g.writes, value)
	g.mu.Unlock()
	ack := make(chan error, 1)
	ack <- nil
	return ack
}

func TestConcurrentTogglesPersistInOrder(t *testing.T) {
	p := newGatedPersister()
	s := New(p, nil, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); s.Toggle() }()
	<-p.entered
	go func() { defer wg.Done(); s.Toggle() }()
	time.Sleep(20 * time.Millisecond)
	close(p.release)
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.writes) != 2 {
		t.Fatalf("writes = %v, want 2", p.writes)
	}
	if last, mode := p.writes[1], string(s.Current().Mode); last != mode {
		t.Errorf("last persisted %q, in memory %q (writes %v)", last, mode, p.writes)
	}
	if p.writes[0] != "dark" || p.writes[1] != "light" {
		t.Errorf("writes = %v, want [dark light]", p.writes)
	}
}
