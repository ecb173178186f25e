package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Version is shown under the logo and on the profile tab.
const Version = "v1.0.0"

const logoArt = "" +
	" ╔╗ ╔═╗╔═╗╔╦╗╔═╗╦ ╦╦╔╦╗\n" +
	" ╠╩╗╠═╣╠═╣ ║ ║  ╠═╣║ ║ \n" +
	" ╚═╝╩ ╩╩ ╩ ╩ ╚═╝╩ ╩╩ ╩ "

// Logo displays the compact ASCII logo.
type Logo struct {
	*tview.TextView
	theme *Theme
}

// NewLogo creates a new logo component.
func NewLogo(theme *Theme) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBorderPadding(0, 0, 1, 0)

	l := &Logo{TextView: tv}
	l.ApplyTheme(theme)
	return l
}

// ApplyTheme implements Component.
func (l *Logo) ApplyTheme(theme *Theme) {
	l.theme = theme
	l.SetBackgroundColor(theme.BgColor)
	l.Clear()
	_, _ = fmt.Fprintf(l, "[%s::b]%s[-:-:-]\n[%s]Terminal chat %s[-:-:-]",
		Tag(theme.TitleColor), logoArt, Tag(theme.MutedColor), Version)
}

// Art returns the uncolored logo text.
func Art() string {
	return logoArt
}
