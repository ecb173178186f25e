package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/store"
	"go.uber.org/zap"
)

func testStore(t *testing.T) (*Store, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db, zap.NewNop()), db
}

// failingBackend fails every write and returns raw for every read.
type failingBackend struct {
	raw string
}

func (f *failingBackend) GetValue(context.Context, string) (string, bool, error) {
	if f.raw == "" {
		return "", false, errors.New("disk on fire")
	}
	return f.raw, true, nil
}
func (f *failingBackend) SetValue(context.Context, string, string) error {
	return errors.New("disk full")
}
func (f *failingBackend) DeleteValue(context.Context, string) error { return nil }
func (f *failingBackend) ClearValues(context.Context) error         { return nil }

func TestSetGetItemRoundTrip(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	if err := s.SetItem(ctx, KeyFavorites, []string{"2", "4"}); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := db.GetValue(ctx, KeyFavorites)
	if raw != `["2","4"]` {
		t.Errorf("stored JSON = %s, want [\"2\",\"4\"]", raw)
	}

	var ids []string
	ok, err := s.GetItem(ctx, KeyFavorites, &ids)
	if err != nil || !ok {
		t.Fatalf("GetItem() = %v, %v", ok, err)
	}
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "4" {
		t.Errorf("ids = %v", ids)
	}
}

func TestFavoritesAbsentVsEmpty(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	ids, ok := s.Favorites(ctx)
	if ok {
		t.Error("Favorites() on empty store reported present")
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("Favorites() default = %v, want empty non-nil slice", ids)
	}

	if err := s.SetItem(ctx, KeyFavorites, []string{}); err != nil {
		t.Fatal(err)
	}
	ids, ok = s.Favorites(ctx)
	if !ok {
		t.Error("stored empty list reported absent")
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}

func TestThemeModeUnparseableIsAbsent(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	if err := db.SetValue(ctx, KeyThemeMode, "{not json"); err != nil {
		t.Fatal(err)
	}
	if mode, ok := s.ThemeMode(ctx); ok {
		t.Errorf("ThemeMode() = %q, true; want absent", mode)
	}

	if err := s.SetItem(ctx, KeyThemeMode, "dark"); err != nil {
		t.Fatal(err)
	}
	if mode, ok := s.ThemeMode(ctx); !ok || mode != "dark" {
		t.Errorf("ThemeMode() = %q, %v; want dark, true", mode, ok)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	_ = s.SetItem(ctx, KeyThemeMode, "dark")
	_ = s.SetItem(ctx, KeyFavorites, []string{"1"})

	if err := s.RemoveItem(ctx, KeyThemeMode); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.ThemeMode(ctx); ok {
		t.Error("theme mode still present after RemoveItem")
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Favorites(ctx); ok {
		t.Error("favorites still present after Clear")
	}
}

func TestReadErrorsAreSwallowed(t *testing.T) {
	s := New(&failingBackend{}, zap.NewNop())
	ctx := context.Background()

	if _, ok := s.ThemeMode(ctx); ok {
		t.Error("ThemeMode() reported present on read error")
	}
	var dst map[string]any
	if s.UserSettings(ctx, &dst) {
		t.Error("UserSettings() reported present on read error")
	}
}

func TestWriterAppliesInOrder(t *testing.T) {
	s, _ := testStore(t)
	b := bus.New()
	w := NewWriter(s, b, zap.NewNop())
	w.Start(context.Background())
	defer w.Stop()

	var last <-chan error
	for _, mode := range []string{"dark", "light", "dark"} {
		last = w.Put(KeyThemeMode, mode)
	}
	select {
	case err := <-last:
		if err != nil {
			t.Fatalf("ack error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for ack")
	}

	if mode, _ := s.ThemeMode(context.Background()); mode != "dark" {
		t.Errorf("final mode = %q, want dark", mode)
	}
}

func TestWriterReportsFailure(t *testing.T) {
	s := New(&failingBackend{}, zap.NewNop())
	b := bus.New()
	ch, unsub := b.Subscribe("persist.", 10)
	defer unsub()

	w := NewWriter(s, b, zap.NewNop())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case err := <-w.Put(KeyThemeMode, "dark"):
		if err == nil {
			t.Fatal("ack error = nil, want failure")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for ack")
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindPersistFailed {
			t.Errorf("event kind = %s, want %s", evt.Kind, bus.KindPersistFailed)
		}
		res := evt.Payload.(PersistResult)
		if res.Key != KeyThemeMode || res.Err == "" {
			t.Errorf("payload = %+v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for persist.failed")
	}
}

func TestWriterDrainsOnStopAndRejectsAfter(t *testing.T) {
	s, _ := testStore(t)
	w := NewWriter(s, nil, zap.NewNop())

	// Queued before Start; must still be applied by the drain.
	queued := w.Put(KeyFavorites, []string{"3"})
	w.Start(context.Background())
	w.Stop()

	if err := <-queued; err != nil {
		t.Errorf("queued write error = %v", err)
	}
	if ids, ok := s.Favorites(context.Background()); !ok || len(ids) != 1 || ids[0] != "3" {
		t.Errorf("favorites = %v, %v; want [3]", ids, ok)
	}

	if err := <-w.Put(KeyFavorites, []string{"4"}); !errors.Is(err, ErrWriterStopped) {
		t.Errorf("Put after Stop error = %v, want ErrWriterStopped", err)
	}
}
