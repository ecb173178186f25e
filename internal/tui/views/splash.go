package views

import (
	"fmt"

	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// Splash is shown while the first state load is in flight.
type Splash struct {
	*tview.TextView
	message string
}

// NewSplash creates the splash page.
func NewSplash(theme *ui.Theme) *Splash {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	s := &Splash{TextView: tv, message: "Connecting..."}
	s.ApplyTheme(theme)
	return s
}

// Name implements ui.Component.
func (s *Splash) Name() string { return "Splash" }

// Hints implements ui.Component.
func (s *Splash) Hints() []ui.MenuHint { return nil }

// ApplyTheme implements ui.Component.
func (s *Splash) ApplyTheme(theme *ui.Theme) {
	s.SetBackgroundColor(theme.BgColor)
	s.SetTextColor(theme.FgColor)
	s.Clear()
	_, _ = fmt.Fprintf(s, "\n\n\n[%s::b]%s[-:-:-]\n\n[%s]%s[-]",
		ui.Tag(theme.TitleColor), ui.Art(), ui.Tag(theme.MutedColor), tview.Escape(s.message))
}

// SetMessage replaces the line under the logo.
func (s *Splash) SetMessage(theme *ui.Theme, msg string) {
	s.message = msg
	s.ApplyTheme(theme)
}
