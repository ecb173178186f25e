package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Menu displays keyboard shortcut hints in a vertical list.
type Menu struct {
	*tview.TextView
	theme *Theme
	hints []MenuHint
}

// NewMenu creates a new menu hint bar.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBorderPadding(0, 0, 2, 0)

	m := &Menu{TextView: tv}
	m.ApplyTheme(theme)
	return m
}

// ApplyTheme implements Component.
func (m *Menu) ApplyTheme(theme *Theme) {
	m.theme = theme
	m.SetBackgroundColor(theme.BgColor)
	m.Update(m.hints)
}

// Update renders hints one per line.
func (m *Menu) Update(hints []MenuHint) {
	m.hints = hints
	m.Clear()

	keyColor := Tag(m.theme.MenuKeyColor)
	numColor := Tag(m.theme.NumericKeyColor)
	fg := Tag(m.theme.FgColor)

	for _, h := range hints {
		kc := keyColor
		if h.Numeric {
			kc = numColor
		}
		_, _ = fmt.Fprintf(m, "[%s::b]<%s>[-:-:-] [%s]%s[-]\n", kc, h.Key, fg, h.Description)
	}
}
