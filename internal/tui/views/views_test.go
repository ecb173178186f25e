package views

import (
	"strings"
	"testing"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func strip(s string) string {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetText(s)
	return tv.GetText(true)
}

func TestRenderTranscript(t *testing.T) {
	now := timestamppb.New(time.Now())
	tr := &baatchitv1.Transcript{
		Chat: &baatchitv1.Chat{Id: "1", Name: "John Doe"},
		Messages: []*baatchitv1.Message{
			{Id: "a", Text: "Hey! How are you?", CreatedAt: now, Status: "read"},
			{Id: "b", Text: "hello [world]", CreatedAt: now, FromMe: true, Status: "sending"},
		},
		Typing: true,
	}

	out := strip(renderTranscript(ui.Light(), tr, "medium"))
	for _, want := range []string{"John Doe", "Hey! How are you?", "You", "hello [world]", "…", "John Doe is typing..."} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}

	small := strip(renderTranscript(ui.Light(), tr, "small"))
	if strings.Count(small, "\n") >= strings.Count(out, "\n") {
		t.Error("small font should render fewer lines")
	}
}

func TestStatusTick(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"sending", "…"},
		{"sent", "✓"},
		{"delivered", "✓✓"},
		{"read", "✓✓"},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := strip(statusTick(ui.Dark(), tt.status)); got != tt.want {
			t.Errorf("statusTick(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestChatListSelection(t *testing.T) {
	cl := NewChatList(ui.Light())
	cl.Update([]*baatchitv1.Chat{
		{Id: "1", Name: "John Doe", UnreadCount: 2, IsFavorite: true},
		{Id: "2", Name: "Jane Smith"},
	}, "", true)

	if got := cl.SelectedChat(); got != "1" {
		t.Errorf("SelectedChat() = %q, want first row", got)
	}
	cl.Select(2, 0)
	if got := cl.SelectedChat(); got != "2" {
		t.Errorf("SelectedChat() = %q, want 2", got)
	}
	if title := cl.GetTitle(); title != " Favorites (2) " {
		t.Errorf("title = %q", title)
	}
	if cell := cl.GetCell(1, 0); !strings.Contains(cell.Text, "★") {
		t.Errorf("favorite star missing: %q", cell.Text)
	}
	if cell := cl.GetCell(1, 1); !strings.Contains(cell.Text, "(2)") {
		t.Errorf("unread count missing: %q", cell.Text)
	}

	cl.Update(nil, "zzz", false)
	if cl.SelectedChat() != "" {
		t.Error("empty list should have no selection")
	}
}

func TestEditProfileErrors(t *testing.T) {
	ep := NewEditProfile(ui.Light())
	ep.Load(&baatchitv1.Profile{Name: "Afaq Ul Islam", Email: "afaq@example.com", Phone: "+92 300 1234567"})

	if v := ep.Value(); v.Name != "Afaq Ul Islam" || v.Phone != "+92 300 1234567" {
		t.Errorf("Value() = %v", v)
	}

	var saved *baatchitv1.Profile
	ep.SetOnSave(func(p *baatchitv1.Profile) { saved = p })
	ep.onSave(ep.Value())
	if saved == nil || saved.Email != "afaq@example.com" {
		t.Fatalf("onSave got %v", saved)
	}

	ep.SetErrors(map[string]string{
		"phone": "Phone number is required",
		"email": "Please enter a valid email",
	})
	text := ep.ErrorText()
	if !strings.HasPrefix(text, "Please enter a valid email\nPhone number is required") {
		t.Errorf("errors not in form order: %q", text)
	}
	if ep.inputs["email"].GetLabel() != "* Email" || ep.inputs["name"].GetLabel() != "Name" {
		t.Error("only invalid fields should be marked")
	}

	ep.Load(&baatchitv1.Profile{})
	if ep.ErrorText() != "" {
		t.Error("Load should clear errors")
	}
}

func TestShareCardAndQR(t *testing.T) {
	card := ShareCard(&baatchitv1.Profile{Name: "Afaq", Email: "a@b.co", Status: "Available"})
	for _, want := range []string{"BEGIN:VCARD", "FN:Afaq", "EMAIL:a@b.co", "NOTE:Available", "END:VCARD"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if strings.Contains(card, "TEL:") {
		t.Error("empty phone should be omitted")
	}

	qr := renderQR(card)
	if !strings.ContainsAny(qr, "█▀▄") || strings.Count(qr, "\n") < 10 {
		t.Errorf("unexpected QR output:\n%s", qr)
	}
}

func TestPostsViewStates(t *testing.T) {
	pv := NewPostsView(ui.Dark())
	if !strings.Contains(pv.GetText(true), "Loading posts") {
		t.Error("new view should be loading")
	}

	pv.Update(nil, "remote")
	if !strings.Contains(pv.GetText(true), "No Posts Available") {
		t.Error("empty feed should show the empty state")
	}

	pv.Update([]*baatchitv1.Post{{Id: 1, Title: "sunt aut facere", Body: "quia et suscipit", User: &baatchitv1.User{Name: "Leanne Graham", Username: "Bret"}}}, "fallback")
	text := pv.GetText(true)
	for _, want := range []string{"Leanne Graham", "@Bret", "sunt aut facere", "quia et suscipit"} {
		if !strings.Contains(text, want) {
			t.Errorf("posts missing %q", want)
		}
	}
	if pv.GetTitle() != " Posts (offline) " {
		t.Errorf("title = %q", pv.GetTitle())
	}
}

func TestSanitizeForTerminal(t *testing.T) {
	if got := sanitizeForTerminal("👍\U0001F3FB ok\u200D"); got != "👍 ok" {
		t.Errorf("sanitizeForTerminal() = %q", got)
	}
}
