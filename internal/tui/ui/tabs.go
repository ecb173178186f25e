package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// Tab names in display order.
const (
	TabChats   = "chats"
	TabPosts   = "posts"
	TabProfile = "profile"
)

var tabLabels = map[string]string{
	TabChats:   "Chats",
	TabPosts:   "Posts",
	TabProfile: "Profile",
}

// Tabs lists the main tabs with the active one highlighted.
type Tabs struct {
	*tview.TextView
	theme  *Theme
	active string
	unread int
}

// NewTabs creates a tab bar with the chats tab active.
func NewTabs(theme *Theme) *Tabs {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	t := &Tabs{TextView: tv, active: TabChats}
	t.ApplyTheme(theme)
	return t
}

// TabOrder returns the tab names in display order.
func TabOrder() []string {
	return []string{TabChats, TabPosts, TabProfile}
}

// SetActive highlights name.
func (t *Tabs) SetActive(name string) {
	t.active = name
	t.render()
}

// Active returns the highlighted tab.
func (t *Tabs) Active() string {
	return t.active
}

// SetUnread shows n next to the chats tab when positive.
func (t *Tabs) SetUnread(n int) {
	t.unread = n
	t.render()
}

// ApplyTheme implements Component.
func (t *Tabs) ApplyTheme(theme *Theme) {
	t.theme = theme
	t.SetBackgroundColor(theme.BgColor)
	t.render()
}

func (t *Tabs) render() {
	t.Clear()
	parts := make([]string, 0, 3)
	for i, name := range TabOrder() {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[name])
		if name == TabChats && t.unread > 0 {
			label += fmt.Sprintf(" (%d)", t.unread)
		}
		if name == t.active {
			parts = append(parts, fmt.Sprintf("[%s:%s:b] %s [-:-:-]",
				Tag(t.theme.TabActiveFg), Tag(t.theme.TabActiveBg), label))
		} else {
			parts = append(parts, fmt.Sprintf("[%s:%s:] %s [-:-:-]",
				Tag(t.theme.TabInactiveFg), Tag(t.theme.TabInactiveBg), label))
		}
	}
	_, _ = fmt.Fprint(t, strings.Join(parts, " "))
}
