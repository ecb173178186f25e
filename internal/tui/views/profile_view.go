package views

import (
	"fmt"
	"strings"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rivo/tview"
)

var profileOptions = []struct{ title, subtitle string }{
	{"Account", "Privacy, security, change number"},
	{"Chats", "Theme, wallpapers, chat history"},
	{"Notifications", "Message, group & call tones"},
	{"Storage and data", "Network usage, auto-download"},
	{"Help", "Help center, contact us, privacy policy"},
}

// ProfileView is the profile tab: the user's card, a share QR code and the
// appearance and notification switches.
type ProfileView struct {
	*tview.TextView
	theme    *ui.Theme
	profile  *baatchitv1.Profile
	settings *baatchitv1.Settings
	showQR   bool
}

// NewProfileView creates the profile tab.
func NewProfileView(theme *ui.Theme) *ProfileView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetTitle(" Profile ")
	pv := &ProfileView{TextView: tv}
	pv.ApplyTheme(theme)
	return pv
}

// Name implements ui.Component.
func (pv *ProfileView) Name() string { return "Profile" }

// Hints implements ui.Component.
func (pv *ProfileView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "e", Description: "Edit profile"},
		{Key: "t", Description: "Dark mode"},
		{Key: "n", Description: "Notifications"},
		{Key: "s", Description: "Sound"},
		{Key: "c", Description: "Share code"},
	}
}

// ApplyTheme implements ui.Component.
func (pv *ProfileView) ApplyTheme(theme *ui.Theme) {
	pv.theme = theme
	pv.SetBorderColor(theme.BorderColor)
	pv.SetBackgroundColor(theme.BgColor)
	pv.SetTextColor(theme.FgColor)
	pv.SetTitleColor(theme.TitleColor)
	pv.render()
}

// Update renders p and s.
func (pv *ProfileView) Update(p *baatchitv1.Profile, s *baatchitv1.Settings) {
	pv.profile = p
	pv.settings = s
	pv.render()
}

// ToggleQR shows or hides the share code.
func (pv *ProfileView) ToggleQR() {
	pv.showQR = !pv.showQR
	pv.render()
}

func (pv *ProfileView) render() {
	pv.Clear()
	fg := ui.Tag(pv.theme.FgColor)
	muted := ui.Tag(pv.theme.MutedColor)
	key := ui.Tag(pv.theme.MenuKeyColor)
	p := pv.profile

	_, _ = fmt.Fprintf(pv, "\n  👤 [%s::b]%s[-:-:-]\n  [%s]%s[-]\n\n", fg, tview.Escape(p.GetName()), muted, tview.Escape(p.GetStatus()))
	for _, row := range [][2]string{{"Email", p.GetEmail()}, {"Phone", p.GetPhone()}, {"About", p.GetBio()}} {
		if row[1] == "" {
			continue
		}
		_, _ = fmt.Fprintf(pv, "  [%s::b]%-6s[-:-:-] %s\n", fg, row[0], tview.Escape(row[1]))
	}
	_, _ = fmt.Fprintf(pv, "\n  [%s]<e>[-] [%s]Edit Profile[-]\n\n", key, ui.Tag(pv.theme.TitleColor))

	dark := "Off"
	if pv.theme.Mode == "dark" {
		dark = "On"
	}
	_, _ = fmt.Fprintf(pv, "  [%s]<t>[-] [%s::b]Dark Mode[-:-:-]      [%s]%s[-]\n", key, fg, muted, dark)
	_, _ = fmt.Fprintf(pv, "  [%s]<n>[-] [%s::b]Notifications[-:-:-]  [%s]%s[-]\n", key, fg, muted, onOff(pv.settings.GetNotificationsEnabled()))
	_, _ = fmt.Fprintf(pv, "  [%s]<s>[-] [%s::b]Sound[-:-:-]          [%s]%s[-]\n\n", key, fg, muted, onOff(pv.settings.GetSoundEnabled()))

	for _, o := range profileOptions {
		_, _ = fmt.Fprintf(pv, "  [%s::b]%s[-:-:-]\n  [%s]%s[-]\n", fg, o.title, muted, o.subtitle)
	}

	if pv.showQR {
		_, _ = fmt.Fprintf(pv, "\n  [%s]Scan to save this contact:[-]\n\n%s", muted, renderQR(ShareCard(p)))
	}
	_, _ = fmt.Fprintf(pv, "\n  [%s]Baatchit %s[-]\n", muted, ui.Version)
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// ShareCard encodes p as a vCard for the share code.
func ShareCard(p *baatchitv1.Profile) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	fmt.Fprintf(&b, "FN:%s\n", p.GetName())
	if p.GetEmail() != "" {
		fmt.Fprintf(&b, "EMAIL:%s\n", p.GetEmail())
	}
	if p.GetPhone() != "" {
		fmt.Fprintf(&b, "TEL:%s\n", p.GetPhone())
	}
	if p.GetStatus() != "" {
		fmt.Fprintf(&b, "NOTE:%s\n", p.GetStatus())
	}
	b.WriteString("END:VCARD")
	return b.String()
}

// renderQR draws content as a QR code, two modules per character cell
// using half blocks.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "  (share code unavailable: " + err.Error() + ")\n"
	}

	bitmap := qr.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		sb.WriteString("  ")
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bot := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
