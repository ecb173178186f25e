package api

import (
	"context"
	"sync"
	"testing"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/notify"
	"github.com/matheus3301/baatchit/internal/profile"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/theme"
	"github.com/matheus3301/baatchit/internal/transcript"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newChatService(t *testing.T) (*ChatService, *chat.List) {
	t.Helper()
	chats := chat.NewList(nil, nil, zap.NewNop())
	sim := transcript.NewSimulator(transcript.DefaultDelays(), nil, nil, zap.NewNop())
	t.Cleanup(sim.Stop)
	return NewChatService(chats, sim, zap.NewNop()), chats
}

func TestChatServiceErrorCodes(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	if _, err := svc.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: "1"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"toggle unknown", func() error { _, err := svc.ToggleFavorite(ctx, &baatchitv1.ToggleFavoriteRequest{ChatId: "404"}); return err }, codes.NotFound},
		{"open unknown without name", func() error { _, err := svc.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: "404"}); return err }, codes.NotFound},
		{"open without id", func() error { _, err := svc.OpenChat(ctx, &baatchitv1.OpenChatRequest{}); return err }, codes.InvalidArgument},
		{"send blank", func() error { _, err := svc.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: "1", Text: "   "}); return err }, codes.InvalidArgument},
		{"send to closed chat", func() error { _, err := svc.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: "2", Text: "hi"}); return err }, codes.FailedPrecondition},
		{"transcript of closed chat", func() error { _, err := svc.GetTranscript(ctx, &baatchitv1.GetTranscriptRequest{ChatId: "3"}); return err }, codes.FailedPrecondition},
		{"mark unknown read", func() error { _, err := svc.MarkAsRead(ctx, &baatchitv1.MarkAsReadRequest{ChatId: "404"}); return err }, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if got := grpcstatus.Code(err); got != tt.want {
				t.Errorf("code = %v (%v), want %v", got, err, tt.want)
			}
		})
	}
}

func TestChatServiceOpenInsertsAndMarksRead(t *testing.T) {
	svc, chats := newChatService(t)
	ctx := context.Background()

	tr, err := svc.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Messages) != 4 || !tr.Foreground {
		t.Errorf("transcript = %d messages, foreground %v", len(tr.Messages), tr.Foreground)
	}
	if c, _ := chats.Get("1"); c.UnreadCount != 0 {
		t.Errorf("unread after open = %d", c.UnreadCount)
	}

	if _, err := svc.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: "user-3", Name: "Clementine Bauch", Avatar: "C"}); err != nil {
		t.Fatal(err)
	}
	list, _ := svc.ListChats(ctx, &baatchitv1.ListChatsRequest{})
	if len(list.Chats) != 6 || list.Chats[5].Name != "Clementine Bauch" {
		t.Errorf("chats after insert = %+v", list.Chats)
	}

	if _, err := svc.CloseChat(ctx, &baatchitv1.CloseChatRequest{ChatId: "user-3"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := chats.Active(); ok {
		t.Error("active chat should be cleared on close")
	}
}

func TestChatServiceFavoritesOnly(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	resp, err := svc.ToggleFavorite(ctx, &baatchitv1.ToggleFavoriteRequest{ChatId: "5"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsFavorite || len(resp.Favorites) != 3 {
		t.Errorf("toggle = %+v", resp)
	}
	list, _ := svc.ListChats(ctx, &baatchitv1.ListChatsRequest{FavoritesOnly: true})
	if len(list.Chats) != 3 {
		t.Errorf("favorites = %d, want 3", len(list.Chats))
	}
}

func TestThemeServiceRejectsInvalidMode(t *testing.T) {
	svc := NewThemeService(theme.New(nil, nil, zap.NewNop()))
	if _, err := svc.SetTheme(context.Background(), &baatchitv1.SetThemeRequest{Mode: "sepia"}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("Set(sepia) err = %v", err)
	}
	st, err := svc.ToggleTheme(context.Background(), &baatchitv1.ToggleThemeRequest{})
	if err != nil || st.Mode != "dark" || st.IsSystemDerived {
		t.Errorf("Toggle() = %+v, %v", st, err)
	}
}

func TestProfileServiceFieldErrors(t *testing.T) {
	svc := NewProfileService(profile.New(nil, zap.NewNop()))
	resp, err := svc.UpdateProfile(context.Background(), &baatchitv1.UpdateProfileRequest{
		Profile: &baatchitv1.Profile{Name: "A", Email: "nope", Phone: "1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.FieldErrors["email"] != "Please enter a valid email" {
		t.Errorf("field errors = %v", resp.FieldErrors)
	}
	if resp.GetProfile().GetName() != "Afaq Ul Islam" {
		t.Errorf("profile = %+v, want prior profile", resp.Profile)
	}
}

// fakeEventStream records what WatchEvents sends. The embedded ServerStream
// is nil; only Send and Context are called.
type fakeEventStream struct {
	grpc.ServerStream
	ctx    context.Context
	mu     sync.Mutex
	events []*baatchitv1.EventEnvelope
}

func (f *fakeEventStream) Send(e *baatchitv1.EventEnvelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventStream) Context() context.Context { return f.ctx }

func (f *fakeEventStream) kinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Kind)
	}
	return out
}

func TestWatchEventsFiltersAndEncodes(t *testing.T) {
	b := bus.New()
	th := theme.New(nil, b, zap.NewNop())
	svc := NewAppService("main", status.NewMachine(b), th,
		chat.NewList(nil, b, zap.NewNop()), notify.New(true, b, zap.NewNop()), b, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeEventStream{ctx: ctx}
	done := make(chan error, 1)
	go func() { done <- svc.WatchEvents(&baatchitv1.WatchEventsRequest{Prefixes: []string{"theme."}}, stream) }()

	// Wait for the subscription before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for len(stream.kinds()) == 0 && time.Now().Before(deadline) {
		b.Emit(bus.KindBadgeChanged, 1)
		th.Toggle()
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("WatchEvents returned %v", err)
	}

	stream.mu.Lock()
	defer stream.mu.Unlock()
	if len(stream.events) == 0 {
		t.Fatal("no events streamed")
	}
	for _, e := range stream.events {
		if e.Kind != bus.KindThemeChanged || e.Session != "main" {
			t.Errorf("unexpected event %+v", e)
		}
		var st baatchitv1.ThemeState
		if err := proto.Unmarshal(e.Payload, &st); err != nil || st.Mode == "" {
			t.Errorf("payload %x: %v", e.Payload, err)
		}
		if e.PayloadVersion != 1 || e.OccurredAtUnixMs == 0 {
			t.Errorf("envelope = %v", e)
		}
	}
}

func TestGetStatus(t *testing.T) {
	b := bus.New()
	d := notify.New(true, b, zap.NewNop())
	d.SetBadge(4)
	svc := NewAppService("work", status.NewMachine(b), theme.New(nil, b, zap.NewNop()),
		chat.NewList(nil, b, zap.NewNop()), d, b, zap.NewNop())

	st, err := svc.GetStatus(context.Background(), &baatchitv1.GetStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if st.Session != "work" || st.Status != "BOOTING" || st.Theme != "light" {
		t.Errorf("status = %+v", st)
	}
	if st.ChatCount != 5 || st.UnreadCount != 8 || st.Badge != 4 {
		t.Errorf("counts = chats %d unread %d badge %d", st.ChatCount, st.UnreadCount, st.Badge)
	}
}

func TestSettingsServiceAppliesOnlySetWrappers(t *testing.T) {
	svc := NewSettingsService(settings.New(nil, nil, zap.NewNop()))
	ctx := context.Background()

	st, err := svc.UpdateSettings(ctx, &baatchitv1.UpdateSettingsRequest{
		SoundEnabled: wrapperspb.Bool(false),
		FontSize:     wrapperspb.String("large"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.SoundEnabled || st.FontSize != "large" || !st.NotificationsEnabled || st.Language != "en" {
		t.Errorf("settings = %v", st)
	}

	_, err = svc.UpdateSettings(ctx, &baatchitv1.UpdateSettingsRequest{FontSize: wrapperspb.String("huge")})
	if grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("UpdateSettings(huge) err = %v", err)
	}
}

func TestScheduleNotificationValidatesTime(t *testing.T) {
	d := notify.New(true, bus.New(), zap.NewNop())
	t.Cleanup(d.CancelAll)
	svc := NewNotificationService(d)
	ctx := context.Background()

	if _, err := svc.ScheduleNotification(ctx, &baatchitv1.ScheduleNotificationRequest{Title: "x"}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("missing time err = %v", err)
	}
	at := time.Now().Add(time.Hour).Truncate(time.Second)
	sn, err := svc.ScheduleNotification(ctx, &baatchitv1.ScheduleNotificationRequest{Title: "x", At: timestamppb.New(at)})
	if err != nil {
		t.Fatal(err)
	}
	if !sn.GetAt().AsTime().Equal(at) || sn.GetId() == "" {
		t.Errorf("scheduled = %v", sn)
	}
}
