package api

import (
	"context"
	"os"
	"strings"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/notify"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/theme"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// AppService reports daemon status and streams bus events.
type AppService struct {
	baatchitv1.UnimplementedAppServiceServer

	sessionName string
	startedAt   time.Time
	machine     *status.Machine
	theme       *theme.Store
	chats       *chat.List
	notifier    *notify.Dispatcher
	bus         *bus.Bus
	logger      *zap.Logger
}

// NewAppService creates a new app service.
func NewAppService(sessionName string, m *status.Machine, t *theme.Store, c *chat.List, n *notify.Dispatcher, b *bus.Bus, logger *zap.Logger) *AppService {
	return &AppService{
		sessionName: sessionName,
		startedAt:   time.Now(),
		machine:     m,
		theme:       t,
		chats:       c,
		notifier:    n,
		bus:         b,
		logger:      logger,
	}
}

func (s *AppService) GetStatus(_ context.Context, _ *baatchitv1.GetStatusRequest) (*baatchitv1.GetStatusResponse, error) {
	chats := s.chats.Chats()
	unread := 0
	for _, c := range chats {
		unread += c.UnreadCount
	}
	return &baatchitv1.GetStatusResponse{
		Session:     s.sessionName,
		Status:      string(s.machine.Current()),
		Pid:         int32(os.Getpid()),
		UptimeMs:    time.Since(s.startedAt).Milliseconds(),
		Theme:       string(s.theme.Current().Mode),
		ChatCount:   int32(len(chats)),
		UnreadCount: int32(unread),
		Badge:       int32(s.notifier.Badge()),
		Favorites:   s.chats.Favorites(),
	}, nil
}

func (s *AppService) WatchEvents(req *baatchitv1.WatchEventsRequest, stream baatchitv1.AppService_WatchEventsServer) error {
	ch, unsub := s.bus.Subscribe("", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if !matchesAny(evt.Kind, req.GetPrefixes()) {
				continue
			}
			env, err := s.envelope(evt)
			if err != nil {
				s.logger.Warn("dropping unencodable event", zap.String("kind", evt.Kind), zap.Error(err))
				continue
			}
			if err := stream.Send(env); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func (s *AppService) envelope(evt bus.Event) (*baatchitv1.EventEnvelope, error) {
	env := &baatchitv1.EventEnvelope{
		EventId:          evt.ID,
		Session:          s.sessionName,
		Kind:             evt.Kind,
		OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
		PayloadVersion:   1,
	}
	if msg := eventPayload(evt); msg != nil {
		payload, err := proto.Marshal(msg)
		if err != nil {
			return nil, err
		}
		env.Payload = payload
	}
	return env, nil
}

func matchesAny(kind string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(kind, p) {
			return true
		}
	}
	return false
}
