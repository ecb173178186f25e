package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatList is the chats tab table.
type ChatList struct {
	*tview.Table
	theme         *ui.Theme
	chats         []*baatchitv1.Chat
	filter        string
	favoritesOnly bool
}

// NewChatList creates a new chat list table.
func NewChatList(theme *ui.Theme) *ChatList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)

	cl := &ChatList{Table: table}
	cl.ApplyTheme(theme)
	return cl
}

// Name implements ui.Component.
func (cl *ChatList) Name() string { return "Chats" }

// Hints implements ui.Component.
func (cl *ChatList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "f", Description: "Favorite"},
		{Key: "F", Description: "Favorites only"},
		{Key: "/", Description: "Filter"},
	}
}

// ApplyTheme implements ui.Component.
func (cl *ChatList) ApplyTheme(theme *ui.Theme) {
	cl.theme = theme
	cl.SetBorderColor(theme.BorderColor)
	cl.SetBackgroundColor(theme.BgColor)
	cl.SetTitleColor(theme.TitleColor)
	cl.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	cl.render()
}

// Update shows chats, already narrowed by the caller's filter.
func (cl *ChatList) Update(chats []*baatchitv1.Chat, filter string, favoritesOnly bool) {
	cl.chats = chats
	cl.filter = filter
	cl.favoritesOnly = favoritesOnly
	cl.render()
}

func (cl *ChatList) render() {
	row, _ := cl.GetSelection()
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{"  ", 0},
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
	}
	for col, h := range headers {
		cl.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	for i, c := range cl.chats {
		star := " "
		if c.GetIsFavorite() {
			star = "★"
		}
		name := c.GetName()
		if c.GetAvatar() != "" {
			name = c.GetAvatar() + " " + name
		}
		nameCell := tview.NewTableCell(" " + tview.Escape(sanitizeForTerminal(name))).
			SetExpansion(1).
			SetTextColor(cl.theme.FgColor)
		if c.GetUnreadCount() > 0 {
			nameCell.SetText(fmt.Sprintf(" %s (%d)", tview.Escape(sanitizeForTerminal(name)), c.GetUnreadCount())).
				SetAttributes(tcell.AttrBold)
		}

		cl.SetCell(i+1, 0, tview.NewTableCell(" "+star).SetTextColor(cl.theme.AccentColor))
		cl.SetCell(i+1, 1, nameCell)
		cl.SetCell(i+1, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(c.GetLastMessage()))).
			SetExpansion(2).
			SetMaxWidth(48).
			SetTextColor(cl.theme.MutedColor))
		cl.SetCell(i+1, 3, tview.NewTableCell(c.GetTimestamp()+" ").
			SetAlign(tview.AlignRight).
			SetTextColor(cl.theme.MutedColor))
	}

	title := fmt.Sprintf(" Chats (%d) ", len(cl.chats))
	switch {
	case cl.favoritesOnly && cl.filter != "":
		title = fmt.Sprintf(" Favorites (%d) filter: %s ", len(cl.chats), cl.filter)
	case cl.favoritesOnly:
		title = fmt.Sprintf(" Favorites (%d) ", len(cl.chats))
	case cl.filter != "":
		title = fmt.Sprintf(" Chats (%d) filter: %s ", len(cl.chats), cl.filter)
	}
	cl.SetTitle(title)

	if row < 1 {
		row = 1
	}
	if row > len(cl.chats) {
		row = len(cl.chats)
	}
	if row >= 1 {
		cl.Select(row, 0)
	}
}

// SelectedChat returns the ID of the highlighted chat.
func (cl *ChatList) SelectedChat() string {
	row, _ := cl.GetSelection()
	if idx := row - 1; idx >= 0 && idx < len(cl.chats) {
		return cl.chats[idx].GetId()
	}
	return ""
}
