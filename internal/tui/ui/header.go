package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// HeaderData is what the header shows about the daemon.
type HeaderData struct {
	Session string
	Status  string
	Theme   string
	Chats   int
	Unread  int
	Badge   int
	Uptime  time.Duration
}

// Header displays session metadata next to the logo.
type Header struct {
	*tview.TextView
	theme *Theme
	data  HeaderData
}

// NewHeader creates a new header panel.
func NewHeader(theme *Theme) *Header {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorderPadding(0, 0, 1, 1)
	h := &Header{TextView: tv}
	h.ApplyTheme(theme)
	return h
}

// ApplyTheme implements Component.
func (h *Header) ApplyTheme(theme *Theme) {
	h.theme = theme
	h.SetBackgroundColor(theme.BgColor)
	h.render()
}

// Update renders data.
func (h *Header) Update(data HeaderData) {
	h.data = data
	h.render()
}

func (h *Header) render() {
	h.Clear()
	fg := Tag(h.theme.FgColor)
	val := Tag(h.theme.CounterColor)
	statusColor := val
	switch h.data.Status {
	case "DEGRADED":
		statusColor = Tag(h.theme.FlashWarnColor)
	case "ERROR":
		statusColor = Tag(h.theme.FlashErrColor)
	}

	_, _ = fmt.Fprintf(h,
		"[%s::b]Session:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]Status:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Theme:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Chats:[-:-:-]   [%s]%d (%d unread)[-]\n"+
			"[%s::b]Badge:[-:-:-]   [%s]%d[-]\n"+
			"[%s::b]Uptime:[-:-:-]  [%s]%s[-]",
		fg, val, orDash(h.data.Session),
		fg, statusColor, orDash(h.data.Status),
		fg, val, orDash(h.data.Theme),
		fg, val, h.data.Chats, h.data.Unread,
		fg, val, h.data.Badge,
		fg, val, formatDuration(h.data.Uptime),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
