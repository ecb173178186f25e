package daemon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/config"
	"github.com/matheus3301/baatchit/internal/lock"
	"github.com/matheus3301/baatchit/internal/session"
	"github.com/matheus3301/baatchit/internal/tui/client"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// startDaemon runs the full fx module against a temporary home directory.
func startDaemon(t *testing.T, apiURL string) (*grpc.ClientConn, string) {
	t.Helper()
	// Use a short path to avoid the 104-char Unix socket limit on macOS.
	home, err := os.MkdirTemp("/tmp", "bct-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(home) })
	t.Setenv("BAATCHIT_HOME", home)

	cfg := config.Default()
	cfg.API.BaseURL = apiURL
	cfg.API.Timeout = config.Duration{Duration: time.Second}
	cfg.Log.Level = "error"
	cfg.Simulation = config.Simulation{
		SentAfter:      config.Duration{Duration: 10 * time.Millisecond},
		DeliveredAfter: config.Duration{Duration: 20 * time.Millisecond},
		ReplyAfter:     config.Duration{Duration: 80 * time.Millisecond},
		TypingLead:     config.Duration{Duration: 30 * time.Millisecond},
	}

	app := fx.New(Module(Params{SessionName: "test", Config: cfg}), fx.NopLogger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		t.Fatalf("app.Start() error = %v", err)
	}
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			t.Errorf("app.Stop() error = %v", err)
		}
	})

	conn, err := client.Dial(session.SocketPath("test"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn, home
}

func waitReady(t *testing.T, app baatchitv1.AppServiceClient) *baatchitv1.GetStatusResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		st, err := app.GetStatus(ctx, &baatchitv1.GetStatusRequest{})
		cancel()
		if err == nil {
			return st
		}
		if time.Now().After(deadline) {
			t.Fatalf("daemon not reachable: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestDaemonLifecycle(t *testing.T) {
	conn, home := startDaemon(t, "http://127.0.0.1:1")
	st := waitReady(t, baatchitv1.NewAppServiceClient(conn))

	if st.Session != "test" || st.Status != "READY" {
		t.Errorf("status = %+v, want test/READY", st)
	}
	if st.ChatCount != 5 || len(st.Favorites) != 2 {
		t.Errorf("chats = %d favorites = %v", st.ChatCount, st.Favorites)
	}

	if _, err := os.Stat(filepath.Join(home, "sessions", "test", "baatchit.db")); err != nil {
		t.Errorf("database not created: %v", err)
	}
	info, err := os.Stat(session.SocketPath("test"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("socket permission = %o, want 0600", perm)
	}

	// A second daemon for the same session must not start.
	_, err = lock.Acquire(session.Dir("test"))
	var held *lock.HeldError
	if !errors.As(err, &held) || held.PID != os.Getpid() {
		t.Errorf("second Acquire error = %v, want HeldError for our pid", err)
	}
}

func TestSendStreamsLifecycleEvents(t *testing.T) {
	conn, _ := startDaemon(t, "http://127.0.0.1:1")
	waitReady(t, baatchitv1.NewAppServiceClient(conn))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := baatchitv1.NewAppServiceClient(conn).WatchEvents(ctx, &baatchitv1.WatchEventsRequest{Prefixes: []string{"transcript."}})
	if err != nil {
		t.Fatal(err)
	}

	chats := baatchitv1.NewChatServiceClient(conn)
	tr, err := chats.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Chat.Name != "John Doe" || len(tr.Messages) != 4 {
		t.Fatalf("open = %s with %d messages", tr.Chat.Name, len(tr.Messages))
	}

	// The stream may still be subscribing; give it a moment before sending.
	time.Sleep(50 * time.Millisecond)
	sent, err := chats.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: "1", Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if sent.Message.Status != "sending" {
		t.Errorf("sent status = %q, want sending", sent.Message.Status)
	}

	var statuses []string
	gotReply := false
	for !gotReply {
		evt, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv() error = %v (statuses so far %v)", err, statuses)
		}
		switch evt.Kind {
		case "transcript.status_changed":
			var ms baatchitv1.MessageStatusChanged
			if err := proto.Unmarshal(evt.Payload, &ms); err != nil {
				t.Fatal(err)
			}
			if ms.MessageId == sent.Message.Id {
				statuses = append(statuses, ms.Status)
			}
		case "transcript.message_added":
			var ma baatchitv1.MessageAdded
			if err := proto.Unmarshal(evt.Payload, &ma); err != nil {
				t.Fatal(err)
			}
			if !ma.Message.FromMe {
				gotReply = true
			}
		}
	}
	if len(statuses) != 2 || statuses[0] != "sent" || statuses[1] != "delivered" {
		t.Errorf("statuses = %v, want [sent delivered]", statuses)
	}

	full, err := chats.GetTranscript(ctx, &baatchitv1.GetTranscriptRequest{ChatId: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(full.Messages); n != 6 {
		t.Errorf("transcript = %d messages, want 4 seed + sent + reply", n)
	}

	if _, err := chats.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: "1", Text: "  "}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("blank send err = %v, want InvalidArgument", err)
	}
}

func TestThemeFavoritesAndSettingsPersist(t *testing.T) {
	conn, _ := startDaemon(t, "http://127.0.0.1:1")
	waitReady(t, baatchitv1.NewAppServiceClient(conn))
	ctx := context.Background()

	th, err := baatchitv1.NewThemeServiceClient(conn).ToggleTheme(ctx, &baatchitv1.ToggleThemeRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if th.Mode != "dark" {
		t.Errorf("theme = %+v", th)
	}

	fav, err := baatchitv1.NewChatServiceClient(conn).ToggleFavorite(ctx, &baatchitv1.ToggleFavoriteRequest{ChatId: "2"})
	if err != nil {
		t.Fatal(err)
	}
	if fav.IsFavorite || len(fav.Favorites) != 1 {
		t.Errorf("favorite = %+v", fav)
	}

	settingsClient := baatchitv1.NewSettingsServiceClient(conn)
	st, err := settingsClient.UpdateSettings(ctx, &baatchitv1.UpdateSettingsRequest{FontSize: wrapperspb.String("large")})
	if err != nil {
		t.Fatal(err)
	}
	if st.FontSize != "large" || !st.SoundEnabled {
		t.Errorf("settings = %+v", st)
	}
	if _, err := settingsClient.UpdateSettings(ctx, &baatchitv1.UpdateSettingsRequest{FontSize: wrapperspb.String("huge")}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("bad font size err = %v", err)
	}
}

func TestPostsFallbackAndRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts":
			_, _ = w.Write([]byte(`[{"id":1,"userId":1,"title":"t","body":"b"}]`))
		case "/users":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Leanne Graham","username":"Bret"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	conn, _ := startDaemon(t, server.URL)
	waitReady(t, baatchitv1.NewAppServiceClient(conn))

	resp, err := baatchitv1.NewPostsServiceClient(conn).ListPosts(context.Background(), &baatchitv1.ListPostsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Source != "remote" || len(resp.Posts) != 1 || resp.Posts[0].User == nil || resp.Posts[0].User.Username != "Bret" {
		t.Errorf("posts = %+v", resp)
	}
}

func TestProfileAndNotifications(t *testing.T) {
	conn, _ := startDaemon(t, "http://127.0.0.1:1")
	waitReady(t, baatchitv1.NewAppServiceClient(conn))
	ctx := context.Background()

	resp, err := baatchitv1.NewProfileServiceClient(conn).UpdateProfile(ctx, &baatchitv1.UpdateProfileRequest{
		Profile: &baatchitv1.Profile{Name: "", Email: "x@y.z", Phone: "1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.FieldErrors["name"] != "Name is required" {
		t.Errorf("field errors = %v", resp.FieldErrors)
	}

	notes := baatchitv1.NewNotificationServiceClient(conn)
	shown, err := notes.ShowNotification(ctx, &baatchitv1.ShowNotificationRequest{Title: "Test", Body: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if !shown.Shown {
		t.Error("notification not shown with permission granted")
	}
	b, err := notes.SetBadge(ctx, &baatchitv1.SetBadgeRequest{Count: -2})
	if err != nil || b.Count != 0 {
		t.Errorf("SetBadge(-2) = %+v, %v", b, err)
	}
	list, err := notes.ListNotifications(ctx, &baatchitv1.ListNotificationsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if !list.HasPermission || len(list.Channels) != 2 || len(list.Notifications) != 1 {
		t.Errorf("list = %+v", list)
	}
}

// TestNewServerUsesSocketOverride guards against the server falling back to
// the session default when a test socket path is given.
func TestNewServerUsesSocketOverride(t *testing.T) {
	tmpDir, err := os.MkdirTemp("/tmp", "bct-srv-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	socketPath := filepath.Join(tmpDir, "d.sock")
	srv, err := NewServer(Params{SessionName: "fxtest", SocketPath: socketPath}, zap.NewNop(), Services{})
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	if srv.SocketPath() != socketPath {
		t.Errorf("SocketPath() = %q", srv.SocketPath())
	}
	if _, statErr := os.Stat(socketPath); statErr != nil {
		t.Fatalf("socket not created at %s: %v", socketPath, statErr)
	}
	srv.Stop(context.Background())
	if _, statErr := os.Stat(socketPath); !os.IsNotExist(statErr) {
		t.Errorf("socket not removed on stop: %v", statErr)
	}
}

func TestShutdownStopsServerFirst(t *testing.T) {
	var names []string
	for _, step := range shutdownSteps(lifecycleDeps{}) {
		names = append(names, step.name)
	}
	want := []string{"server", "simulator", "notifier", "sync", "writer", "store", "lock"}
	if len(names) != len(want) {
		t.Fatalf("steps = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("steps = %v, want %v", names, want)
			break
		}
	}
}
