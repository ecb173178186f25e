package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatView shows one transcript with a composer underneath.
type ChatView struct {
	*tview.Flex
	theme    *ui.Theme
	header   *tview.TextView
	messages *tview.TextView
	composer *tview.InputField
	onSend   func(text string)

	transcript *baatchitv1.Transcript
	fontSize   string
	background string
}

// NewChatView creates the chat detail page.
func NewChatView(theme *ui.Theme) *ChatView {
	header := tview.NewTextView().SetDynamicColors(true)
	header.SetBorderPadding(0, 0, 1, 1)

	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetPlaceholder("Type a message...").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetTitle(" Compose (i to focus) ")

	cv := &ChatView{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(header, 2, 0, false).
			AddItem(messages, 0, 1, true).
			AddItem(composer, 3, 0, false),
		header:   header,
		messages: messages,
		composer: composer,
		fontSize: "medium",
	}

	composer.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter || cv.onSend == nil {
			return
		}
		text := composer.GetText()
		if strings.TrimSpace(text) == "" {
			return
		}
		composer.SetText("")
		cv.onSend(text)
	})

	cv.ApplyTheme(theme)
	return cv
}

// Name implements ui.Component.
func (cv *ChatView) Name() string {
	if name := cv.transcript.GetChat().GetName(); name != "" {
		return name
	}
	return "Chat"
}

// Hints implements ui.Component.
func (cv *ChatView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "f", Description: "Favorite"},
		{Key: "Esc", Description: "Back"},
		{Key: "x", Description: "Close chat"},
	}
}

// ApplyTheme implements ui.Component.
func (cv *ChatView) ApplyTheme(theme *ui.Theme) {
	cv.theme = theme
	cv.SetBackgroundColor(theme.BgColor)
	cv.header.SetBackgroundColor(theme.SurfaceColor)
	cv.messages.SetBorderColor(theme.BorderColor)
	cv.messages.SetTextColor(theme.FgColor)
	cv.messages.SetTitleColor(theme.TitleColor)
	cv.composer.SetBorderColor(theme.BorderColor)
	cv.composer.SetBackgroundColor(theme.BgColor)
	cv.composer.SetFieldBackgroundColor(theme.BgColor)
	cv.composer.SetFieldTextColor(theme.FgColor)
	cv.composer.SetLabelColor(theme.MenuKeyColor)
	cv.composer.SetPlaceholderTextColor(theme.MutedColor)
	cv.composer.SetTitleColor(theme.TitleColor)
	cv.render()
}

// SetAppearance applies the user's font size and chat background. The
// background only takes effect in light mode so text stays readable.
func (cv *ChatView) SetAppearance(fontSize, background string) {
	cv.fontSize = fontSize
	cv.background = background
	cv.render()
}

// SetOnSend sets the callback for a non-blank composer submission.
func (cv *ChatView) SetOnSend(fn func(text string)) {
	cv.onSend = fn
}

// Update renders tr.
func (cv *ChatView) Update(tr *baatchitv1.Transcript) {
	cv.transcript = tr
	cv.render()
}

// Composer returns the composer input field (for focus management).
func (cv *ChatView) Composer() *tview.InputField {
	return cv.composer
}

// Messages returns the transcript text view (for focus management).
func (cv *ChatView) Messages() *tview.TextView {
	return cv.messages
}

func (cv *ChatView) render() {
	bg := cv.theme.BgColor
	if cv.theme.Mode == "light" && cv.background != "" {
		if c := tcell.GetColor(cv.background); c != tcell.ColorDefault {
			bg = c
		}
	}
	cv.messages.SetBackgroundColor(bg)

	c := cv.transcript.GetChat()
	presence := fmt.Sprintf("[%s]Online[-]", ui.Tag(cv.theme.FlashInfoColor))
	if cv.transcript.GetTyping() {
		presence = fmt.Sprintf("[%s::i]typing...[-:-:-]", ui.Tag(cv.theme.MutedColor))
	}
	star := ""
	if c.GetIsFavorite() {
		star = fmt.Sprintf(" [%s]★[-]", ui.Tag(cv.theme.AccentColor))
	}
	cv.header.Clear()
	_, _ = fmt.Fprintf(cv.header, "[%s::b]%s %s[-:-:-]%s\n%s",
		ui.Tag(cv.theme.FgColor), c.GetAvatar(), tview.Escape(sanitizeForTerminal(c.GetName())), star, presence)

	cv.messages.SetTitle(fmt.Sprintf(" %s ", tview.Escape(cv.Name())))
	cv.messages.Clear()
	_, _ = fmt.Fprint(cv.messages, renderTranscript(cv.theme, cv.transcript, cv.fontSize))
	cv.messages.ScrollToEnd()
}

func renderTranscript(theme *ui.Theme, tr *baatchitv1.Transcript, fontSize string) string {
	var b strings.Builder
	sep := "\n"
	attr := ""
	switch fontSize {
	case "small":
		sep = ""
	case "large":
		attr = "b"
	}

	for _, m := range tr.GetMessages() {
		sender := tr.GetChat().GetName()
		color := theme.OtherColor
		tick := ""
		if m.GetFromMe() {
			sender = "You"
			color = theme.MineColor
			tick = " " + statusTick(theme, m.GetStatus())
		}
		fmt.Fprintf(&b, "[%s::b]%s[-:-:-] [%s]%s[-]%s\n[%s::%s]%s[-:-:-]\n%s",
			ui.Tag(color), tview.Escape(sanitizeForTerminal(sender)),
			ui.Tag(theme.MutedColor), m.GetCreatedAt().AsTime().Local().Format("15:04"), tick,
			ui.Tag(theme.FgColor), attr, tview.Escape(sanitizeForTerminal(m.GetText())),
			sep)
	}
	if tr.GetTyping() {
		fmt.Fprintf(&b, "[%s::i]%s is typing...[-:-:-]\n", ui.Tag(theme.MutedColor), tview.Escape(tr.GetChat().GetName()))
	}
	return b.String()
}

// statusTick renders the delivery state of an outgoing message.
func statusTick(theme *ui.Theme, status string) string {
	muted := ui.Tag(theme.MutedColor)
	switch status {
	case "sending":
		return fmt.Sprintf("[%s]…[-]", muted)
	case "sent":
		return fmt.Sprintf("[%s]✓[-]", muted)
	case "delivered":
		return fmt.Sprintf("[%s]✓✓[-]", muted)
	case "read":
		return fmt.Sprintf("[%s]✓✓[-]", ui.Tag(theme.ReadColor))
	}
	return ""
}
