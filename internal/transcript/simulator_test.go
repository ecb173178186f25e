package transcript

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingNotifier) ShowMessage(sender, body, avatar string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, sender+"|"+body+"|"+avatar)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func fastDelays() Delays {
	return Delays{
		SentAfter:      10 * time.Millisecond,
		DeliveredAfter: 20 * time.Millisecond,
		ReplyAfter:     60 * time.Millisecond,
		TypingLead:     20 * time.Millisecond,
	}
}

var johnDoe = chat.Summary{ID: "1", Name: "John Doe", Avatar: "👨‍💼"}

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

func lastMessage(t *testing.T, s *Simulator, chatID string) chat.Message {
	t.Helper()
	v, ok := s.View(chatID)
	if !ok {
		t.Fatalf("chat %s not open", chatID)
	}
	return v.Messages[len(v.Messages)-1]
}

func TestOpenSeedsHistory(t *testing.T) {
	s := NewSimulator(fastDelays(), nil, nil, zap.NewNop())
	defer s.Stop()

	prior := chat.Message{ID: "old", Text: "earlier", Status: chat.Delivered, FromMe: true}
	c := johnDoe
	c.Messages = []chat.Message{prior}

	v := s.Open(c)
	if len(v.Messages) != 5 {
		t.Fatalf("messages = %d, want 4 seed + 1 prior", len(v.Messages))
	}
	if v.Messages[0].Text != "Hey there! How are you doing?" || v.Messages[0].FromMe {
		t.Errorf("first seed = %+v", v.Messages[0])
	}
	if v.Messages[3].Status != chat.Delivered || !v.Messages[3].FromMe {
		t.Errorf("fourth seed = %+v", v.Messages[3])
	}
	if v.Messages[4].ID != "old" {
		t.Errorf("prior message not appended: %+v", v.Messages[4])
	}
	if !v.Foreground {
		t.Error("opened transcript should be foreground")
	}
	if len(v.Chat.Messages) != 0 {
		t.Error("view chat should not carry messages")
	}
}

func TestOpenTwiceFocusesWithoutReseeding(t *testing.T) {
	s := NewSimulator(fastDelays(), nil, nil, zap.NewNop())
	defer s.Stop()

	s.Open(johnDoe)
	if _, err := s.Send("1", "hello"); err != nil {
		t.Fatal(err)
	}
	if err := s.Blur("1"); err != nil {
		t.Fatal(err)
	}
	v := s.Open(johnDoe)
	if len(v.Messages) != 5 || !v.Foreground {
		t.Errorf("reopen = %d messages foreground=%v, want 5 true", len(v.Messages), v.Foreground)
	}
}

func TestSendEmptyLeavesTranscriptUnchanged(t *testing.T) {
	s := NewSimulator(fastDelays(), nil, nil, zap.NewNop())
	defer s.Stop()
	s.Open(johnDoe)

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := s.Send("1", text); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Send(%q) error = %v, want ErrEmptyMessage", text, err)
		}
	}
	v, _ := s.View("1")
	if len(v.Messages) != 4 {
		t.Errorf("messages = %d, want 4", len(v.Messages))
	}
	if s.Pending("1") != 0 {
		t.Errorf("pending timers = %d, want 0", s.Pending("1"))
	}
}

func TestSendNotOpen(t *testing.T) {
	s := NewSimulator(fastDelays(), nil, nil, zap.NewNop())
	if _, err := s.Send("1", "hi"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("error = %v, want ErrNotOpen", err)
	}
}

func TestSendLifecycle(t *testing.T) {
	b := bus.New()
	events, unsub := b.Subscribe("transcript.", 64)
	defer unsub()

	n := &recordingNotifier{}
	s := NewSimulator(fastDelays(), n, b, zap.NewNop())
	defer s.Stop()
	s.Open(johnDoe)

	msg, err := s.Send("1", "  hello  ")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Text != "hello" || msg.Status != chat.Sending || !msg.FromMe {
		t.Errorf("sent = %+v", msg)
	}
	v, _ := s.View("1")
	if len(v.Messages) != 5 || v.Messages[4].ID != msg.ID {
		t.Fatalf("transcript did not grow by the sent message")
	}

	waitFor(t, "delivered", func() bool {
		v, _ := s.View("1")
		return v.Messages[4].Status == chat.Delivered
	})
	waitFor(t, "reply", func() bool {
		v, _ := s.View("1")
		return len(v.Messages) == 6
	})

	reply := lastMessage(t, s, "1")
	if reply.FromMe || reply.Status != chat.Read || !slices.Contains(CannedReplies, reply.Text) {
		t.Errorf("reply = %+v", reply)
	}
	v, _ = s.View("1")
	if v.Typing {
		t.Error("typing still set after reply")
	}
	if n.count() != 0 {
		t.Errorf("foreground reply raised %d notifications", n.count())
	}

	// Statuses must arrive in order: sent then delivered, typing on then off.
	var statuses []chat.Status
	var typing []bool
	timeout := time.After(time.Second)
	for len(statuses) < 2 || len(typing) < 2 {
		select {
		case evt := <-events:
			switch p := evt.Payload.(type) {
			case StatusEvent:
				if p.MessageID == msg.ID {
					statuses = append(statuses, p.Status)
				}
			case TypingEvent:
				typing = append(typing, p.Typing)
			}
		case <-timeout:
			t.Fatalf("events: statuses=%v typing=%v", statuses, typing)
		}
	}
	if !slices.Equal(statuses, []chat.Status{chat.Sent, chat.Delivered}) {
		t.Errorf("statuses = %v, want [sent delivered]", statuses)
	}
	if !slices.Equal(typing, []bool{true, false}) {
		t.Errorf("typing = %v, want [true false]", typing)
	}
}

func TestBackgroundReplyNotifies(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSimulator(fastDelays(), n, nil, zap.NewNop())
	defer s.Stop()
	s.pick = func(int) int { return 1 }

	s.Open(johnDoe)
	if _, err := s.Send("1", "ping"); err != nil {
		t.Fatal(err)
	}
	if err := s.Blur("1"); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "notification", func() bool { return n.count() == 1 })
	n.mu.Lock()
	got := n.calls[0]
	n.mu.Unlock()
	if got != "John Doe|Of course! See you then.|👨‍💼" {
		t.Errorf("notification = %q", got)
	}
}

func TestBackgroundReplyDefaultsUnknownContact(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSimulator(fastDelays(), n, nil, zap.NewNop())
	defer s.Stop()
	s.pick = func(int) int { return 0 }

	s.Open(chat.Summary{ID: "anon"})
	_, _ = s.Send("anon", "hi")
	_ = s.Blur("anon")

	waitFor(t, "notification", func() bool { return n.count() == 1 })
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.calls[0] != "Unknown Contact|Yes, absolutely! Looking forward to it.|👤" {
		t.Errorf("notification = %q", n.calls[0])
	}
}

func TestCloseCancelsPendingTimers(t *testing.T) {
	b := bus.New()
	events, unsub := b.Subscribe("transcript.", 64)
	defer unsub()

	n := &recordingNotifier{}
	s := NewSimulator(fastDelays(), n, b, zap.NewNop())
	s.Open(johnDoe)
	if _, err := s.Send("1", "bye"); err != nil {
		t.Fatal(err)
	}
	if s.Pending("1") != 4 {
		t.Errorf("pending = %d, want 4", s.Pending("1"))
	}
	if err := s.Close("1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.View("1"); ok {
		t.Error("transcript still open after Close")
	}

	time.Sleep(3 * fastDelays().ReplyAfter)
	for {
		select {
		case evt := <-events:
			if evt.Kind == bus.KindMessageStatus || evt.Kind == bus.KindTyping {
				t.Errorf("event %s fired after Close", evt.Kind)
			}
			if evt.Kind == bus.KindMessageAdded && !evt.Payload.(MessageEvent).Message.FromMe {
				t.Error("reply delivered after Close")
			}
		default:
			if n.count() != 0 {
				t.Errorf("notifications after Close = %d", n.count())
			}
			if err := s.Close("1"); !errors.Is(err, ErrNotOpen) {
				t.Errorf("second Close error = %v, want ErrNotOpen", err)
			}
			return
		}
	}
}

func TestStopClosesEverything(t *testing.T) {
	s := NewSimulator(fastDelays(), nil, nil, zap.NewNop())
	s.Open(johnDoe)
	s.Open(chat.Summary{ID: "2", Name: "Sarah Wilson"})
	_, _ = s.Send("1", "a")
	_, _ = s.Send("2", "b")

	s.Stop()
	if _, ok := s.View("1"); ok {
		t.Error("chat 1 still open after Stop")
	}
	if err := s.Focus("2"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Focus after Stop error = %v", err)
	}
}

func TestDeliveredFollowsSentWhateverTheDelays(t *testing.T) {
	s := NewSimulator(Delays{
		SentAfter:      40 * time.Millisecond,
		DeliveredAfter: 20 * time.Millisecond,
		ReplyAfter:     time.Hour,
		TypingLead:     0,
	}, nil, nil, zap.NewNop())
	defer s.Stop()
	s.Open(johnDoe)

	msg, err := s.Send("1", "hi")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if got := lastMessage(t, s, "1"); got.ID != msg.ID || got.Status != chat.Delivered {
		t.Errorf("status after 100ms = %s, want delivered", got.Status)
	}
}
