package notify

import (
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
)

func newReady(t *testing.T, b *bus.Bus) *Dispatcher {
	t.Helper()
	d := New(true, b, zap.NewNop())
	d.SetupChannels()
	if !d.RequestPermission() {
		t.Fatal("permission should be granted when allowed")
	}
	t.Cleanup(d.Stop)
	return d
}

func TestSetupChannelsIdempotent(t *testing.T) {
	d := New(true, nil, zap.NewNop())
	d.SetupChannels()
	chs := d.SetupChannels()
	if len(chs) != 2 {
		t.Fatalf("channels = %d, want 2", len(chs))
	}
	if chs[0].ID != ChannelDefault || chs[0].Name != "Default Channel" {
		t.Errorf("channel[0] = %+v", chs[0])
	}
	if chs[1].ID != ChannelMessages || !chs[1].Vibration {
		t.Errorf("channel[1] = %+v", chs[1])
	}
}

func TestShowRequiresPermission(t *testing.T) {
	d := New(false, nil, zap.NewNop())
	if d.RequestPermission() {
		t.Fatal("permission granted while disallowed")
	}
	if _, ok := d.Show("t", "b", nil, ""); ok {
		t.Error("Show should be dropped without permission")
	}
	if len(d.History()) != 0 {
		t.Error("history should stay empty")
	}
}

func TestShowPublishes(t *testing.T) {
	b := bus.New()
	events, unsub := b.Subscribe("notify.displayed", 4)
	defer unsub()

	d := newReady(t, b)
	n, ok := d.Show("Hello", "World", map[string]string{"k": "v"}, "http://img")
	if !ok {
		t.Fatal("Show returned false")
	}
	if n.Channel != ChannelDefault || n.ID == "" || !n.Sound {
		t.Errorf("notification = %+v", n)
	}

	select {
	case evt := <-events:
		got := evt.Payload.(Notification)
		if got.Title != "Hello" || got.Data["k"] != "v" || got.ImageURL != "http://img" {
			t.Errorf("payload = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no notify.displayed event")
	}
}

func TestPreferencesSuppressAndMute(t *testing.T) {
	d := newReady(t, nil)

	d.SetPreferences(false, true)
	if _, ok := d.Show("a", "b", nil, ""); ok {
		t.Error("disabled notifications should be dropped")
	}

	d.SetPreferences(true, false)
	n, ok := d.Show("a", "b", nil, "")
	if !ok || n.Sound {
		t.Errorf("Show = %+v, %v; want shown without sound", n, ok)
	}
}

func TestShowMessageBumpsBadge(t *testing.T) {
	d := newReady(t, nil)
	d.ShowMessage("John Doe", "Of course! See you then.", "👨‍💼")
	d.ShowMessage("Mom", "Sure thing! Can't wait.", "👩‍🦳")

	if got := d.Badge(); got != 2 {
		t.Errorf("Badge() = %d, want 2", got)
	}
	h := d.History()
	if len(h) != 2 || h[0].Channel != ChannelMessages || h[0].Title != "John Doe" {
		t.Errorf("history = %+v", h)
	}
	if h[1].Data["avatar"] != "👩‍🦳" {
		t.Errorf("avatar data = %q", h[1].Data["avatar"])
	}
}

func TestBadgeFloor(t *testing.T) {
	tests := []struct {
		name string
		ops  func(d *Dispatcher) int
		want int
	}{
		{"decrement at zero", func(d *Dispatcher) int { return d.DecrementBadge() }, 0},
		{"set negative", func(d *Dispatcher) int { return d.SetBadge(-3) }, 0},
		{"set then decrement", func(d *Dispatcher) int { d.SetBadge(2); return d.DecrementBadge() }, 1},
		{"increment twice", func(d *Dispatcher) int { d.IncrementBadge(); return d.IncrementBadge() }, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(true, nil, zap.NewNop())
			if got := tt.ops(d); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
			if d.Badge() != tt.want {
				t.Errorf("Badge() = %d, want %d", d.Badge(), tt.want)
			}
		})
	}
}

func TestScheduleFires(t *testing.T) {
	b := bus.New()
	events, unsub := b.Subscribe("notify.displayed", 4)
	defer unsub()

	d := newReady(t, b)
	s := d.Schedule("Reminder", "Call grandma", time.Now().Add(20*time.Millisecond), nil)
	if len(d.Pending()) != 1 || d.Pending()[0].ID != s.ID {
		t.Fatalf("Pending() = %+v", d.Pending())
	}

	select {
	case evt := <-events:
		if evt.Payload.(Notification).Title != "Reminder" {
			t.Errorf("payload = %+v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("scheduled notification never fired")
	}
	if len(d.Pending()) != 0 {
		t.Error("fired notification still pending")
	}
}

func TestCancelAll(t *testing.T) {
	d := newReady(t, nil)
	d.Show("shown", "", nil, "")
	d.Schedule("later", "", time.Now().Add(30*time.Millisecond), nil)

	d.CancelAll()
	if len(d.Pending()) != 0 || len(d.History()) != 0 {
		t.Fatalf("pending=%d history=%d after CancelAll", len(d.Pending()), len(d.History()))
	}

	time.Sleep(60 * time.Millisecond)
	if len(d.History()) != 0 {
		t.Error("cancelled notification fired")
	}
}

func TestHistoryBounded(t *testing.T) {
	d := newReady(t, nil)
	for range historyLimit + 5 {
		d.Show("x", "", nil, "")
	}
	if got := len(d.History()); got != historyLimit {
		t.Errorf("history = %d, want %d", got, historyLimit)
	}
}
