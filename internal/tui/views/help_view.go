package views

import (
	"fmt"

	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetTitle(" Help ")

	hv := &HelpView{TextView: tv}
	hv.ApplyTheme(theme)
	return hv
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements ui.Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (hv *HelpView) ApplyTheme(theme *ui.Theme) {
	hv.SetBorderColor(theme.BorderColor)
	hv.SetBackgroundColor(theme.BgColor)
	hv.SetTextColor(theme.FgColor)
	hv.SetTitleColor(theme.TitleColor)
	hv.Clear()
	_, _ = fmt.Fprint(hv, helpText(ui.Tag(theme.MenuKeyColor)))
}

func helpText(kc string) string {
	return fmt.Sprintf(`
  [::b]Global Keys[-:-:-]

  [%[1]s]1 2 3[-:-:-]   Chats / Posts / Profile tab
  [%[1]s]:[-:-:-]       Command mode           [%[1]s]?[-:-:-]      Help
  [%[1]s]t[-:-:-]       Toggle dark mode       [%[1]s]q[-:-:-]      Quit
  [%[1]s]Esc[-:-:-]     Cancel / Go back       [%[1]s]Ctrl-C[-:-:-] Quit immediately

  [::b]Chats[-:-:-]

  [%[1]s]Enter[-:-:-]   Open chat              [%[1]s]f[-:-:-]      Toggle favorite
  [%[1]s]F[-:-:-]       Favorites only         [%[1]s]/[-:-:-]      Filter by name

  [::b]Chat[-:-:-]

  [%[1]s]i[-:-:-]       Focus composer         [%[1]s]Enter[-:-:-]  Send (in composer)
  [%[1]s]Esc[-:-:-]     Back, replies keep coming in the background
  [%[1]s]x[-:-:-]       Close chat and cancel pending replies

  [::b]Posts[-:-:-]     [%[1]s]r[-:-:-] Refresh

  [::b]Profile[-:-:-]   [%[1]s]e[-:-:-] Edit   [%[1]s]n[-:-:-] Notifications   [%[1]s]s[-:-:-] Sound   [%[1]s]c[-:-:-] Share code

  [::b]Commands (: mode)[-:-:-]

  [%[1]s]:chat <name>[-:-:-]          Open a chat by name
  [%[1]s]:theme [light|dark][-:-:-]   Switch or toggle the theme
  [%[1]s]:fav[-:-:-]                  Favorites only on/off
  [%[1]s]:posts [refresh][-:-:-]      Show the posts tab
  [%[1]s]:profile[-:-:-] / [%[1]s]:edit[-:-:-]     Profile tab / edit form
  [%[1]s]:font <small|medium|large>[-:-:-]
  [%[1]s]:badge clear[-:-:-]          Reset the notification badge
  [%[1]s]:help[-:-:-] / [%[1]s]:h[-:-:-]  [%[1]s]:quit[-:-:-] / [%[1]s]:q[-:-:-]
`, kc)
}
