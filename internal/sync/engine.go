package sync

import (
	"context"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/transcript"
	"go.uber.org/zap"
)

// Preferences receives notification preference changes.
// *notify.Dispatcher implements it.
type Preferences interface {
	SetPreferences(enabled, sound bool)
}

// Engine mirrors transcript activity into the chat list and keeps the
// daemon status and notification preferences in step with their sources.
type Engine struct {
	chats   *chat.List
	machine *status.Machine
	prefs   Preferences
	bus     *bus.Bus
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewEngine creates a new sync engine.
func NewEngine(chats *chat.List, m *status.Machine, prefs Preferences, b *bus.Bus, logger *zap.Logger) *Engine {
	return &Engine{
		chats:   chats,
		machine: m,
		prefs:   prefs,
		bus:     b,
		logger:  logger,
	}
}

// Start subscribes to transcript, settings and persistence events.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	transcripts, unsubT := e.bus.Subscribe("transcript.", 256)
	settingsCh, unsubS := e.bus.Subscribe("settings.", 16)
	persist, unsubP := e.bus.Subscribe("persist.", 64)

	go func() {
		defer close(e.done)
		defer unsubT()
		defer unsubS()
		defer unsubP()
		for {
			select {
			case evt := <-transcripts:
				e.handleTranscript(evt)
			case evt := <-settingsCh:
				e.handleSettings(evt)
			case evt := <-persist:
				e.handlePersist(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine and waits for the event loop to exit.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
	}
}

func (e *Engine) handleTranscript(evt bus.Event) {
	switch evt.Kind {
	case bus.KindMessageAdded:
		me, ok := evt.Payload.(transcript.MessageEvent)
		if !ok {
			return
		}
		if err := e.IngestMessage(me); err != nil {
			e.logger.Error("failed to ingest message", zap.Error(err), zap.String("chat", me.ChatID), zap.String("msg_id", me.Message.ID))
		}
	case bus.KindMessageStatus:
		se, ok := evt.Payload.(transcript.StatusEvent)
		if !ok {
			return
		}
		if err := e.chats.UpdateMessageStatus(se.ChatID, se.MessageID, se.Status); err != nil {
			e.logger.Warn("status update not applied", zap.Error(err), zap.String("chat", se.ChatID), zap.String("msg_id", se.MessageID))
		}
	}
}

// IngestMessage appends a transcript message to its chat summary. Incoming
// messages that arrive while the chat is not in the foreground count as
// unread.
func (e *Engine) IngestMessage(me transcript.MessageEvent) error {
	if err := e.chats.AddMessage(me.ChatID, me.Message); err != nil {
		return err
	}
	if me.Message.FromMe || me.Foreground {
		return nil
	}
	return e.chats.IncrementUnread(me.ChatID)
}

func (e *Engine) handleSettings(evt bus.Event) {
	s, ok := evt.Payload.(settings.Settings)
	if !ok || e.prefs == nil {
		return
	}
	e.prefs.SetPreferences(s.NotificationsEnabled, s.SoundEnabled)
}

func (e *Engine) handlePersist(evt bus.Event) {
	if e.machine == nil {
		return
	}
	switch evt.Kind {
	case bus.KindPersistFailed:
		if e.machine.TransitionIf(status.Ready, status.Degraded) {
			e.logger.Warn("persistence failing, daemon degraded")
		}
	case bus.KindPersistOK:
		if e.machine.TransitionIf(status.Degraded, status.Ready) {
			e.logger.Info("persistence recovered")
		}
	}
}
