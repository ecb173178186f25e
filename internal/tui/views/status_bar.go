package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar displays the session, daemon status and page path.
type StatusBar struct {
	*tview.TextView
	theme   *ui.Theme
	session string
	status  string
	path    string
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	sb := &StatusBar{
		TextView: tview.NewTextView().SetDynamicColors(true),
		now:      time.Now,
	}
	sb.ApplyTheme(theme)
	return sb
}

// ApplyTheme implements ui.Component.
func (sb *StatusBar) ApplyTheme(theme *ui.Theme) {
	sb.theme = theme
	sb.SetBackgroundColor(theme.SurfaceColor)
	sb.render()
}

// SetSession updates the session name display.
func (sb *StatusBar) SetSession(name string) {
	sb.session = name
	sb.render()
}

// SetStatus updates the daemon status display.
func (sb *StatusBar) SetStatus(status string) {
	sb.status = status
	sb.render()
}

// SetPath shows the navigation stack, e.g. "main > chat".
func (sb *StatusBar) SetPath(path string) {
	sb.path = path
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	statusColor := ui.Tag(sb.theme.FlashInfoColor)
	switch sb.status {
	case "DEGRADED":
		statusColor = ui.Tag(sb.theme.FlashWarnColor)
	case "ERROR", "OFFLINE":
		statusColor = ui.Tag(sb.theme.FlashErrColor)
	}
	_, _ = fmt.Fprintf(sb, " [%s::b]%s[-:-:-] | [%s]%s[-] | [%s]%s[-] | %s",
		ui.Tag(sb.theme.FgColor), sb.session,
		statusColor, sb.status,
		ui.Tag(sb.theme.MutedColor), sb.path,
		sb.now().Format("15:04"))
}
