package views

import (
	"fmt"
	"strings"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

// PostsView lists the remote feed.
type PostsView struct {
	*tview.TextView
	theme   *ui.Theme
	posts   []*baatchitv1.Post
	source  string
	loading bool
}

// NewPostsView creates the posts tab.
func NewPostsView(theme *ui.Theme) *PostsView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true)
	pv := &PostsView{TextView: tv, loading: true}
	pv.ApplyTheme(theme)
	return pv
}

// Name implements ui.Component.
func (pv *PostsView) Name() string { return "Posts" }

// Hints implements ui.Component.
func (pv *PostsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "r", Description: "Refresh"},
		{Key: "j/k", Description: "Scroll"},
	}
}

// ApplyTheme implements ui.Component.
func (pv *PostsView) ApplyTheme(theme *ui.Theme) {
	pv.theme = theme
	pv.SetBorderColor(theme.BorderColor)
	pv.SetBackgroundColor(theme.BgColor)
	pv.SetTextColor(theme.FgColor)
	pv.SetTitleColor(theme.TitleColor)
	pv.render()
}

// SetLoading shows the loading state until the next Update.
func (pv *PostsView) SetLoading() {
	pv.loading = true
	pv.render()
}

// Update renders posts fetched from source ("remote" or "fallback").
func (pv *PostsView) Update(posts []*baatchitv1.Post, source string) {
	pv.posts = posts
	pv.source = source
	pv.loading = false
	pv.render()
}

func (pv *PostsView) render() {
	pv.Clear()
	title := " Posts "
	if pv.source == "fallback" {
		title = " Posts (offline) "
	}
	pv.SetTitle(title)

	muted := ui.Tag(pv.theme.MutedColor)
	switch {
	case pv.loading:
		_, _ = fmt.Fprintf(pv, "\n  [%s]Loading posts...[-]", muted)
		return
	case len(pv.posts) == 0:
		_, _ = fmt.Fprintf(pv, "\n  [::b]No Posts Available[-:-:-]\n  [%s]Press r to try again.[-]", muted)
		return
	}
	_, _ = fmt.Fprint(pv, renderPosts(pv.theme, pv.posts))
	pv.ScrollToBeginning()
}

func renderPosts(theme *ui.Theme, posts []*baatchitv1.Post) string {
	var b strings.Builder
	for _, p := range posts {
		name, handle := "Unknown User", ""
		if u := p.GetUser(); u != nil {
			name = u.GetName()
			handle = "@" + u.GetUsername()
		}
		fmt.Fprintf(&b, "\n [%s::b]%s[-:-:-] [%s]%s[-]\n [%s::b]%s[-:-:-]\n [%s]%s[-]\n",
			ui.Tag(theme.TitleColor), tview.Escape(name),
			ui.Tag(theme.MutedColor), tview.Escape(handle),
			ui.Tag(theme.FgColor), tview.Escape(p.GetTitle()),
			ui.Tag(theme.MutedColor), tview.Escape(strings.ReplaceAll(p.GetBody(), "\n", "\n ")))
	}
	return b.String()
}
