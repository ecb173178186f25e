package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/rivo/tview"
)

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, name := range []string{PageSplash, PageMain, PageChat, PageHelp} {
		p.AddPage(name, tview.NewBox(), true, false)
	}

	var changes [][]string
	p.SetOnChange(func(stack []string) { changes = append(changes, stack) })

	p.Reset(PageSplash)
	p.Reset(PageMain)
	p.Push(PageChat)
	p.Push(PageHelp)

	if got := p.Stack(); !slices.Equal(got, []string{PageMain, PageChat, PageHelp}) {
		t.Fatalf("stack = %v", got)
	}
	if front, _ := p.GetFrontPage(); front != PageHelp {
		t.Errorf("front page = %q, want help", front)
	}

	if top := p.Pop(); top != PageHelp {
		t.Errorf("Pop() = %q, want help", top)
	}
	if p.Current() != PageChat {
		t.Errorf("Current() = %q, want chat", p.Current())
	}
	p.Pop()
	if top := p.Pop(); top != "" {
		t.Errorf("popping the last page returned %q", top)
	}
	if p.Current() != PageMain {
		t.Errorf("Current() = %q, want main", p.Current())
	}
	if len(changes) != 6 {
		t.Errorf("onChange fired %d times, want 6", len(changes))
	}
}

func TestForMode(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"", "light"},
		{"sepia", "light"},
	}
	for _, tt := range tests {
		if got := ForMode(tt.mode).Mode; got != tt.want {
			t.Errorf("ForMode(%q).Mode = %q, want %q", tt.mode, got, tt.want)
		}
	}
	if Light().BgColor == Dark().BgColor {
		t.Error("light and dark backgrounds should differ")
	}
}

func TestTag(t *testing.T) {
	if got := Tag(Light().TitleColor); got != "#2196f3" {
		t.Errorf("Tag() = %q, want #2196f3", got)
	}
}

func TestFlashExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFlashModel()
	f.now = func() time.Time { return now }

	if f.Current() != nil {
		t.Fatal("fresh model should have no message")
	}
	f.Warn("disk full")
	msg := f.Current()
	if msg == nil || msg.Text != "disk full" || msg.Level != FlashWarn {
		t.Fatalf("Current() = %+v", msg)
	}

	now = now.Add(9 * time.Second)
	if f.Current() != nil {
		t.Error("warn message should expire after 8s")
	}

	f.Err(errors.New("boom"))
	if msg := f.Current(); msg == nil || msg.Level != FlashErr {
		t.Errorf("Current() = %+v, want error level", msg)
	}
}

func TestTabsRender(t *testing.T) {
	tabs := NewTabs(Light())
	tabs.SetUnread(3)
	tabs.SetActive(TabPosts)

	text := tabs.GetText(true)
	for _, want := range []string{"1 Chats (3)", "2 Posts", "3 Profile"} {
		if !strings.Contains(text, want) {
			t.Errorf("tabs %q missing %q", text, want)
		}
	}
	if tabs.Active() != TabPosts {
		t.Errorf("Active() = %q", tabs.Active())
	}

	tabs.SetUnread(0)
	if strings.Contains(tabs.GetText(true), "(") {
		t.Error("zero unread should not be shown")
	}
}

func TestHeaderSurvivesThemeSwitch(t *testing.T) {
	h := NewHeader(Light())
	h.Update(HeaderData{Session: "main", Status: "READY", Theme: "light", Chats: 4, Unread: 2, Uptime: 90 * time.Minute})
	h.ApplyTheme(Dark())

	text := h.GetText(true)
	for _, want := range []string{"main", "READY", "4 (2 unread)", "1h30m"} {
		if !strings.Contains(text, want) {
			t.Errorf("header %q missing %q", text, want)
		}
	}
}
