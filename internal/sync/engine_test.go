package sync

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/kv"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/store"
	"github.com/matheus3301/baatchit/internal/theme"
	"github.com/matheus3301/baatchit/internal/transcript"
	"go.uber.org/zap"
)

type recordingPrefs struct {
	mu             sync.Mutex
	enabled, sound bool
	calls          int
}

func (r *recordingPrefs) SetPreferences(enabled, sound bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled, r.sound = enabled, sound
	r.calls++
}

func (r *recordingPrefs) snapshot() (bool, bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled, r.sound, r.calls
}

func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", desc)
}

func startEngine(t *testing.T, b *bus.Bus, chats *chat.List, m *status.Machine, p Preferences) {
	t.Helper()
	e := NewEngine(chats, m, p, b, zap.NewNop())
	e.Start(context.Background())
	t.Cleanup(e.Stop)
}

func TestEngineIngestMessage(t *testing.T) {
	chats := chat.NewList(nil, nil, zap.NewNop())
	e := NewEngine(chats, nil, nil, bus.New(), zap.NewNop())

	tests := []struct {
		name       string
		event      transcript.MessageEvent
		wantUnread int
	}{
		{"outgoing", transcript.MessageEvent{ChatID: "5", Message: chat.Message{ID: "a", Text: "hi", FromMe: true}}, 0},
		{"incoming foreground", transcript.MessageEvent{ChatID: "5", Message: chat.Message{ID: "b", Text: "yo"}, Foreground: true}, 0},
		{"incoming background", transcript.MessageEvent{ChatID: "5", Message: chat.Message{ID: "c", Text: "hey"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = chats.MarkAsRead("5")
			if err := e.IngestMessage(tt.event); err != nil {
				t.Fatal(err)
			}
			c, _ := chats.Get("5")
			if c.LastMessage != tt.event.Message.Text || c.Timestamp != "now" {
				t.Errorf("preview = %q @ %q", c.LastMessage, c.Timestamp)
			}
			if c.UnreadCount != tt.wantUnread {
				t.Errorf("unread = %d, want %d", c.UnreadCount, tt.wantUnread)
			}
		})
	}

	if err := e.IngestMessage(transcript.MessageEvent{ChatID: "missing"}); err == nil {
		t.Error("expected error for unknown chat")
	}
}

func TestEngineMirrorsSimulator(t *testing.T) {
	b := bus.New()
	chats := chat.NewList(nil, b, zap.NewNop())
	startEngine(t, b, chats, nil, nil)

	sim := transcript.NewSimulator(transcript.Delays{
		SentAfter:      5 * time.Millisecond,
		DeliveredAfter: 10 * time.Millisecond,
		ReplyAfter:     30 * time.Millisecond,
		TypingLead:     10 * time.Millisecond,
	}, nil, b, zap.NewNop())
	defer sim.Stop()

	c := chats.SetActiveChat(chat.Summary{ID: "1"})
	sim.Open(c)
	if err := sim.Blur("1"); err != nil {
		t.Fatal(err)
	}
	sent, err := sim.Send("1", "hello")
	if err != nil {
		t.Fatal(err)
	}

	waitFor(t, "reply mirrored into chat list", func() bool {
		got, _ := chats.Get("1")
		return len(got.Messages) == 2
	})
	got, _ := chats.Get("1")
	if got.Messages[0].ID != sent.ID || got.Messages[0].Status != chat.Delivered {
		t.Errorf("sent message = %+v, want delivered", got.Messages[0])
	}
	if got.Messages[1].FromMe || got.Messages[1].Status != chat.Read {
		t.Errorf("reply = %+v", got.Messages[1])
	}
	if got.UnreadCount != 3 {
		t.Errorf("unread = %d, want seed 2 + 1 background reply", got.UnreadCount)
	}
}

func TestEngineForwardsSettings(t *testing.T) {
	b := bus.New()
	prefs := &recordingPrefs{}
	startEngine(t, b, chat.NewList(nil, nil, zap.NewNop()), nil, prefs)

	st := settings.Defaults()
	st.SoundEnabled = false
	b.Emit(bus.KindSettingsChanged, st)

	waitFor(t, "preferences applied", func() bool {
		_, _, calls := prefs.snapshot()
		return calls == 1
	})
	enabled, sound, _ := prefs.snapshot()
	if !enabled || sound {
		t.Errorf("prefs = enabled:%v sound:%v", enabled, sound)
	}
}

func TestEngineTracksPersistenceHealth(t *testing.T) {
	b := bus.New()
	m := status.NewMachine(b)
	for _, s := range []status.State{status.Restoring, status.Ready} {
		if err := m.Transition(s); err != nil {
			t.Fatal(err)
		}
	}
	startEngine(t, b, chat.NewList(nil, nil, zap.NewNop()), m, nil)

	b.Emit(bus.KindPersistFailed, kv.PersistResult{Key: kv.KeyFavorites, Err: "disk full"})
	waitFor(t, "degraded", func() bool { return m.Current() == status.Degraded })

	b.Emit(bus.KindPersistOK, kv.PersistResult{Key: kv.KeyFavorites})
	waitFor(t, "ready again", func() bool { return m.Current() == status.Ready })
}

func TestReconcilerRestore(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	kvs := kv.New(db, zap.NewNop())
	if err := kvs.SetItem(ctx, kv.KeyThemeMode, "dark"); err != nil {
		t.Fatal(err)
	}
	if err := kvs.SetItem(ctx, kv.KeyFavorites, []string{"1", "9"}); err != nil {
		t.Fatal(err)
	}
	if err := kvs.SetItem(ctx, kv.KeyUserSettings, map[string]any{"language": "ur", "fontSize": "small"}); err != nil {
		t.Fatal(err)
	}

	th := theme.New(nil, nil, zap.NewNop())
	chats := chat.NewList(nil, nil, zap.NewNop())
	st := settings.New(nil, nil, zap.NewNop())
	NewReconciler(kvs, th, chats, st, zap.NewNop()).Restore(ctx)

	if got := th.Current(); got.Mode != theme.Dark || got.IsSystemDerived {
		t.Errorf("theme = %+v", got)
	}
	if c, _ := chats.Get("1"); !c.IsFavorite {
		t.Error("chat 1 should be favorite")
	}
	if c, _ := chats.Get("2"); c.IsFavorite {
		t.Error("seed favorite 2 should be replaced")
	}
	if got := st.Current(); got.Language != "ur" || got.FontSize != settings.Small || !got.SoundEnabled {
		t.Errorf("settings = %+v", got)
	}
}

func TestReconcilerKeepsSeedFavoritesWhenAbsent(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	chats := chat.NewList(nil, nil, zap.NewNop())
	th := theme.New(nil, nil, zap.NewNop())
	NewReconciler(kv.New(db, zap.NewNop()), th, chats, settings.New(nil, nil, zap.NewNop()), zap.NewNop()).Restore(context.Background())

	if got := chats.Favorites(); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Errorf("favorites = %v, want seed", got)
	}
	if got := th.Current(); got.Mode != theme.Light || !got.IsSystemDerived {
		t.Errorf("theme = %+v", got)
	}
}
