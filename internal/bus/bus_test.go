package bus

import (
	"testing"
	"time"
)

func TestEmitStampsEvent(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("theme.", 10)
	defer unsub()

	b.Emit(KindThemeChanged, "dark")

	select {
	case evt := <-ch:
		if evt.Kind != KindThemeChanged {
			t.Errorf("got kind %q, want %q", evt.Kind, KindThemeChanged)
		}
		if evt.ID == "" {
			t.Error("emitted event has no ID")
		}
		if evt.Timestamp.IsZero() {
			t.Error("emitted event has no timestamp")
		}
		if evt.Payload != "dark" {
			t.Errorf("payload = %v, want dark", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("transcript.", 10)
	defer unsub()

	b.Emit(KindThemeChanged, nil)
	b.Emit(KindMessageAdded, nil)

	select {
	case evt := <-ch:
		if evt.Kind != KindMessageAdded {
			t.Errorf("got kind %q, want %q", evt.Kind, KindMessageAdded)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEmptyNamespaceReceivesAll(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("", 10)
	defer unsub()

	b.Emit(KindBadgeChanged, 1)
	b.Emit(KindChatUpdated, "1")

	for i := 0; i < 2; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	unsub()

	b.Emit(KindChatUpdated, nil)

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
}

func TestNilBusIsNoop(t *testing.T) {
	var b *Bus
	b.Emit(KindThemeChanged, nil)
	b.Publish(Event{Kind: KindThemeChanged})
}
