package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventPrefersView(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'f', Handler: func() { got = append(got, "global") }})
	r.AddView("chats", &Action{Key: tcell.KeyRune, Rune: 'f', Handler: func() { got = append(got, "chats") }})

	if !r.HandleEvent("chats", runeKey('f')) {
		t.Fatal("expected chats binding to handle f")
	}
	if !r.HandleEvent("posts", runeKey('f')) {
		t.Fatal("expected global binding to handle f")
	}
	if r.HandleEvent("posts", runeKey('x')) {
		t.Error("unbound key reported as handled")
	}
	if len(got) != 2 || got[0] != "chats" || got[1] != "global" {
		t.Errorf("handlers ran %v", got)
	}
}

func TestMatchesSpecialKeys(t *testing.T) {
	a := &Action{Key: tcell.KeyEnter}
	if !a.Matches(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("Enter should match")
	}
	if a.Matches(runeKey('e')) {
		t.Error("rune should not match Enter binding")
	}
}

func TestHintsOrder(t *testing.T) {
	r := NewRegistry()
	noop := func() {}
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true, Handler: noop})
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: '1', Description: "Chats", Visible: true, Handler: noop})
	r.AddView("chats", &Action{Key: tcell.KeyEnter, Label: "Enter", Description: "Open", Visible: true, Handler: noop})
	r.AddView("chats", &Action{Key: tcell.KeyRune, Rune: 'j', Description: "Down", Handler: noop})

	hints := r.Hints("chats")
	if len(hints) != 3 {
		t.Fatalf("got %d hints, want 3", len(hints))
	}
	want := []string{"Enter", "q", "1"}
	for i, h := range hints {
		if h.Key != want[i] {
			t.Errorf("hint[%d] = %q, want %q", i, h.Key, want[i])
		}
	}
	if !hints[2].Numeric || hints[1].Numeric {
		t.Error("only digit shortcuts are numeric")
	}
}
