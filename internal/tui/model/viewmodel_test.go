package model

import (
	"testing"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"google.golang.org/protobuf/proto"
)

func event(t *testing.T, kind string, payload proto.Message) *baatchitv1.EventEnvelope {
	t.Helper()
	raw, err := proto.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return &baatchitv1.EventEnvelope{Kind: kind, PayloadVersion: 1, Payload: raw}
}

func seeded() *ViewModel {
	vm := NewViewModel(nil)
	vm.chats = []*baatchitv1.Chat{
		{Id: "1", Name: "John Doe", LastMessage: "See you tomorrow!", UnreadCount: 2, IsFavorite: true},
		{Id: "2", Name: "Jane Smith", LastMessage: "Thanks for the help"},
		{Id: "3", Name: "Team Group", LastMessage: "Meeting at 3 PM", UnreadCount: 5},
	}
	vm.transcript = &baatchitv1.Transcript{
		Chat:     &baatchitv1.Chat{Id: "1", Name: "John Doe"},
		Messages: []*baatchitv1.Message{{Id: "m1", Text: "Hey", Status: "read"}},
	}
	return vm
}

func TestApplyTranscriptEvents(t *testing.T) {
	vm := seeded()

	steps := []struct {
		name    string
		evt     *baatchitv1.EventEnvelope
		changed bool
	}{
		{"own message", event(t, "transcript.message_added", &baatchitv1.MessageAdded{ChatId: "1", Message: &baatchitv1.Message{Id: "m2", Text: "hello", FromMe: true, Status: "sending"}}), true},
		{"duplicate", event(t, "transcript.message_added", &baatchitv1.MessageAdded{ChatId: "1", Message: &baatchitv1.Message{Id: "m2", Text: "hello"}}), false},
		{"other chat", event(t, "transcript.message_added", &baatchitv1.MessageAdded{ChatId: "2", Message: &baatchitv1.Message{Id: "x"}}), false},
		{"sent", event(t, "transcript.status_changed", &baatchitv1.MessageStatusChanged{ChatId: "1", MessageId: "m2", Status: "sent"}), true},
		{"delivered", event(t, "transcript.status_changed", &baatchitv1.MessageStatusChanged{ChatId: "1", MessageId: "m2", Status: "delivered"}), true},
		{"typing", event(t, "transcript.typing", &baatchitv1.TypingChanged{ChatId: "1", Typing: true}), true},
	}
	for _, s := range steps {
		u, err := vm.Apply(s.evt)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if got := u.Changed.Has(ChangeTranscript); got != s.changed {
			t.Errorf("%s: transcript changed = %v, want %v", s.name, got, s.changed)
		}
	}

	tr, ok := vm.Transcript()
	if !ok {
		t.Fatal("transcript should be open")
	}
	if len(tr.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(tr.Messages))
	}
	if last := tr.Messages[1]; last.Status != "delivered" || !last.FromMe {
		t.Errorf("last message = %v", last)
	}
	if !tr.Typing {
		t.Error("typing indicator should be on")
	}

	if _, err := vm.Apply(event(t, "transcript.closed", &baatchitv1.ChatRef{ChatId: "1"})); err != nil {
		t.Fatal(err)
	}
	if vm.ActiveChatID() != "" {
		t.Error("closed transcript should be dropped")
	}
}

func TestApplyStateEvents(t *testing.T) {
	vm := seeded()

	u, err := vm.Apply(event(t, "chat.favorite_toggled", &baatchitv1.FavoriteChanged{ChatId: "3", IsFavorite: true, Favorites: []string{"3"}}))
	if err != nil {
		t.Fatal(err)
	}
	if !u.Changed.Has(ChangeChats) {
		t.Error("favorite toggle should change chats")
	}
	favs := vm.Chats("", true)
	if len(favs) != 1 || favs[0].GetId() != "3" {
		t.Errorf("favorites = %v, want only chat 3", favs)
	}

	u, _ = vm.Apply(event(t, "chat.updated", &baatchitv1.ChatRef{ChatId: "2"}))
	if !u.Changed.Has(ChangeChatsStale) {
		t.Error("chat.updated should mark the list stale")
	}

	vm.Apply(event(t, "theme.changed", &baatchitv1.ThemeState{Mode: "dark"}))
	vm.Apply(event(t, "notify.badge", &baatchitv1.Badge{Count: 4}))
	vm.Apply(event(t, "app.status_changed", &baatchitv1.StatusChanged{From: "READY", To: "DEGRADED"}))
	vm.Apply(event(t, "settings.changed", &baatchitv1.Settings{SoundEnabled: true, FontSize: "large"}))
	vm.Apply(event(t, "profile.changed", &baatchitv1.Profile{Name: "Sam"}))

	if vm.Theme().Mode != "dark" {
		t.Errorf("theme = %q", vm.Theme().Mode)
	}
	if vm.Badge() != 4 {
		t.Errorf("badge = %d", vm.Badge())
	}
	if vm.Status().Status != "DEGRADED" {
		t.Errorf("status = %q", vm.Status().Status)
	}
	if s := vm.Settings(); !s.SoundEnabled || s.FontSize != "large" {
		t.Errorf("settings = %v", s)
	}
	if vm.Profile().Name != "Sam" {
		t.Errorf("profile = %v", vm.Profile())
	}
}

func TestApplyNotices(t *testing.T) {
	vm := seeded()

	u, err := vm.Apply(event(t, "notify.displayed", &baatchitv1.Notification{Title: "Jane Smith", Body: "Sounds good!", Sound: true}))
	if err != nil {
		t.Fatal(err)
	}
	if u.Notice == nil || u.Notice.Title != "Jane Smith" || !u.Notice.Sound {
		t.Errorf("notice = %v", u.Notice)
	}

	u, _ = vm.Apply(event(t, "persist.failed", &baatchitv1.PersistResult{Key: "@theme_mode", Error: "disk full"}))
	if u.Warning != "Could not save @theme_mode: disk full" {
		t.Errorf("warning = %q", u.Warning)
	}

	if _, err := vm.Apply(&baatchitv1.EventEnvelope{Kind: "theme.changed", Payload: []byte{0xff}}); err == nil {
		t.Error("unversioned payload should fail to decode")
	}
	if u, err := vm.Apply(&baatchitv1.EventEnvelope{Kind: "something.else", PayloadVersion: 1}); err != nil || u.Changed != 0 {
		t.Errorf("unknown kind: %+v, %v", u, err)
	}
}

func TestChatsFilter(t *testing.T) {
	vm := seeded()

	tests := []struct {
		filter string
		favs   bool
		want   []string
	}{
		{"", false, []string{"1", "2", "3"}},
		{"", true, []string{"1"}},
		{"jane", false, []string{"2"}},
		{"MEETING", false, []string{"3"}},
		{"  ", false, []string{"1", "2", "3"}},
		{"jane", true, nil},
	}
	for _, tt := range tests {
		got := vm.Chats(tt.filter, tt.favs)
		if len(got) != len(tt.want) {
			t.Errorf("Chats(%q, %v) = %d chats, want %d", tt.filter, tt.favs, len(got), len(tt.want))
			continue
		}
		for i, c := range got {
			if c.GetId() != tt.want[i] {
				t.Errorf("Chats(%q, %v)[%d] = %s, want %s", tt.filter, tt.favs, i, c.GetId(), tt.want[i])
			}
		}
	}

	if vm.Unread() != 7 {
		t.Errorf("Unread() = %d, want 7", vm.Unread())
	}
	if c, ok := vm.FindChat("team"); !ok || c.GetId() != "3" {
		t.Errorf("FindChat(team) = %v, %v", c, ok)
	}
	if _, ok := vm.FindChat("nobody"); ok {
		t.Error("FindChat should miss")
	}
}

func TestTranscriptSnapshotIsIsolated(t *testing.T) {
	vm := seeded()
	tr, _ := vm.Transcript()
	tr.Messages[0].Status = "edited"

	if _, err := vm.Apply(event(t, "transcript.status_changed", &baatchitv1.MessageStatusChanged{ChatId: "1", MessageId: "m1", Status: "read"})); err != nil {
		t.Fatal(err)
	}
	again, _ := vm.Transcript()
	if again.Messages[0].GetStatus() != "read" || tr.Messages[0].GetStatus() != "edited" {
		t.Errorf("snapshot shares state with the cache: %v / %v", again.Messages[0], tr.Messages[0])
	}
}
