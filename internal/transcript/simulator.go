// Package transcript simulates the message exchange of opened chats.
package transcript

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"go.uber.org/zap"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrNotOpen      = errors.New("chat is not open")
)

// Delays controls the simulated exchange timing.
type Delays struct {
	SentAfter      time.Duration
	DeliveredAfter time.Duration
	ReplyAfter     time.Duration
	TypingLead     time.Duration
}

// DefaultDelays: sent at 1s, delivered at 2s, typing at 3s, reply at 5s.
func DefaultDelays() Delays {
	return Delays{
		SentAfter:      1 * time.Second,
		DeliveredAfter: 2 * time.Second,
		ReplyAfter:     5 * time.Second,
		TypingLead:     2 * time.Second,
	}
}

// Notifier surfaces replies that arrive while the chat is in the background.
type Notifier interface {
	ShowMessage(sender, body, avatar string)
}

// MessageEvent is the payload of transcript.message_added.
type MessageEvent struct {
	ChatID     string
	Message    chat.Message
	Foreground bool
}

// StatusEvent is the payload of transcript.status_changed.
type StatusEvent struct {
	ChatID    string
	MessageID string
	Status    chat.Status
}

// TypingEvent is the payload of transcript.typing.
type TypingEvent struct {
	ChatID string
	Typing bool
}

// View is a snapshot of one open transcript.
type View struct {
	Chat       chat.Summary   `json:"chat"`
	Messages   []chat.Message `json:"messages"`
	Typing     bool           `json:"typing"`
	Foreground bool           `json:"foreground"`
}

type transcript struct {
	chat       chat.Summary
	messages   []chat.Message
	typing     bool
	foreground bool
	timers     map[*time.Timer]struct{}
	closed     bool
}

// Simulator owns every open transcript and its pending timers.
type Simulator struct {
	mu       sync.Mutex
	open     map[string]*transcript
	delays   Delays
	notifier Notifier
	bus      *bus.Bus
	logger   *zap.Logger
	pick     func(n int) int
	now      func() time.Time
}

// NewSimulator creates a Simulator.
func NewSimulator(d Delays, n Notifier, b *bus.Bus, logger *zap.Logger) *Simulator {
	return &Simulator{
		open:     make(map[string]*transcript),
		delays:   d,
		notifier: n,
		bus:      b,
		logger:   logger,
		pick:     rand.IntN,
		now:      time.Now,
	}
}

// Open mounts the transcript for c in the foreground. A fresh transcript is
// the seed history followed by the messages c already carries. Opening a
// chat that is already mounted only focuses it.
func (s *Simulator) Open(c chat.Summary) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr, ok := s.open[c.ID]; ok {
		tr.foreground = true
		return tr.view()
	}

	history := append(seedHistory(s.now()), c.Messages...)
	c.Messages = nil
	tr := &transcript{
		chat:       c,
		messages:   history,
		foreground: true,
		timers:     make(map[*time.Timer]struct{}),
	}
	s.open[c.ID] = tr
	s.logger.Debug("transcript opened", zap.String("chat", c.ID))
	return tr.view()
}

// Send appends a local message and schedules its simulated lifecycle.
func (s *Simulator) Send(chatID, text string) (chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tr, ok := s.open[chatID]
	if !ok {
		return chat.Message{}, ErrNotOpen
	}

	msg := chat.Message{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
		FromMe:    true,
		Status:    chat.Sending,
	}
	tr.messages = append(tr.messages, msg)
	s.bus.Emit(bus.KindMessageAdded, MessageEvent{ChatID: chatID, Message: msg, Foreground: tr.foreground})

	// Delivered is chained off sent so it can never land first, whatever
	// the configured delays.
	s.after(tr, s.delays.SentAfter, func() func() {
		s.advance(tr, msg.ID, chat.Sent)
		s.after(tr, max(s.delays.DeliveredAfter-s.delays.SentAfter, 0), func() func() {
			s.advance(tr, msg.ID, chat.Delivered)
			return nil
		})
		return nil
	})
	s.after(tr, max(s.delays.ReplyAfter-s.delays.TypingLead, 0), func() func() {
		tr.typing = true
		s.bus.Emit(bus.KindTyping, TypingEvent{ChatID: chatID, Typing: true})
		return nil
	})
	s.after(tr, s.delays.ReplyAfter, func() func() {
		return s.reply(tr)
	})
	return msg, nil
}

// Focus marks the transcript as the foreground view.
func (s *Simulator) Focus(chatID string) error {
	return s.setForeground(chatID, true)
}

// Blur moves the transcript to the background. Its timers keep running.
func (s *Simulator) Blur(chatID string) error {
	return s.setForeground(chatID, false)
}

// Close unmounts the transcript and cancels its pending timers.
func (s *Simulator) Close(chatID string) error {
	s.mu.Lock()
	tr, ok := s.open[chatID]
	if !ok {
		s.mu.Unlock()
		return ErrNotOpen
	}
	cancelled := tr.teardown()
	delete(s.open, chatID)
	s.mu.Unlock()

	s.logger.Debug("transcript closed", zap.String("chat", chatID), zap.Int("cancelled_timers", cancelled))
	s.bus.Emit(bus.KindTranscriptEnd, chatID)
	return nil
}

// View returns a snapshot of an open transcript.
func (s *Simulator) View(chatID string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.open[chatID]
	if !ok {
		return View{}, false
	}
	return tr.view(), true
}

// Pending returns the number of timers still scheduled for chatID.
func (s *Simulator) Pending(chatID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.open[chatID]; ok {
		return len(tr.timers)
	}
	return 0
}

// Stop closes every transcript.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for id, tr := range s.open {
		total += tr.teardown()
		delete(s.open, id)
	}
	s.logger.Info("simulator stopped", zap.Int("cancelled_timers", total))
}

func (s *Simulator) setForeground(chatID string, fg bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.open[chatID]
	if !ok {
		return ErrNotOpen
	}
	tr.foreground = fg
	return nil
}

// after schedules fn on tr. It must be called with s.mu held. fn runs with
// s.mu held and may return a follow-up to run once the lock is released.
func (s *Simulator) after(tr *transcript, d time.Duration, fn func() func()) {
	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if tr.closed {
			s.mu.Unlock()
			return
		}
		delete(tr.timers, timer)
		followUp := fn()
		s.mu.Unlock()
		if followUp != nil {
			followUp()
		}
	})
	tr.timers[timer] = struct{}{}
}

func (s *Simulator) advance(tr *transcript, msgID string, to chat.Status) {
	i := slices.IndexFunc(tr.messages, func(m chat.Message) bool { return m.ID == msgID })
	if i < 0 {
		return
	}
	if err := chat.CheckTransition(tr.messages[i].Status, to); err != nil {
		s.logger.Warn("skipping status update", zap.String("msg", msgID), zap.Error(err))
		return
	}
	tr.messages[i].Status = to
	s.bus.Emit(bus.KindMessageStatus, StatusEvent{ChatID: tr.chat.ID, MessageID: msgID, Status: to})
}

func (s *Simulator) reply(tr *transcript) func() {
	tr.typing = false
	s.bus.Emit(bus.KindTyping, TypingEvent{ChatID: tr.chat.ID, Typing: false})

	msg := chat.Message{
		ID:        uuid.NewString(),
		Text:      CannedReplies[s.pick(len(CannedReplies))],
		CreatedAt: s.now(),
		Status:    chat.Read,
	}
	tr.messages = append(tr.messages, msg)
	s.bus.Emit(bus.KindMessageAdded, MessageEvent{ChatID: tr.chat.ID, Message: msg, Foreground: tr.foreground})

	if tr.foreground || s.notifier == nil {
		return nil
	}
	name, avatar := tr.chat.Name, tr.chat.Avatar
	if name == "" {
		name = "Unknown Contact"
	}
	if avatar == "" {
		avatar = "👤"
	}
	return func() { s.notifier.ShowMessage(name, msg.Text, avatar) }
}

// teardown must be called with the simulator lock held.
func (tr *transcript) teardown() int {
	tr.closed = true
	n := 0
	for t := range tr.timers {
		if t.Stop() {
			n++
		}
	}
	tr.timers = nil
	return n
}

func (tr *transcript) view() View {
	return View{
		Chat:       tr.chat,
		Messages:   slices.Clone(tr.messages),
		Typing:     tr.typing,
		Foreground: tr.foreground,
	}
}
