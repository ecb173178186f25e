package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/client"
	"github.com/matheus3301/baatchit/internal/tui/keys"
	"github.com/matheus3301/baatchit/internal/tui/model"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/matheus3301/baatchit/internal/tui/views"
	"github.com/rivo/tview"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// SplashDuration is the minimum time the splash page stays up.
const SplashDuration = 2 * time.Second

const (
	rpcTimeout     = 5 * time.Second
	refreshEvery   = 5 * time.Second
	reconnectAfter = 2 * time.Second
	promptHeight   = 3
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	screen   tcell.Screen
	root     *tview.Flex
	body     *tview.Flex
	pages    *ui.Pages
	tabPages *tview.Pages
	theme    *ui.Theme
	vm       *model.ViewModel
	client   *client.Client
	registry *keys.Registry
	session  string

	logo      *ui.Logo
	header    *ui.Header
	menu      *ui.Menu
	tabs      *ui.Tabs
	prompt    *ui.Prompt
	flash     *ui.FlashModel
	flashBar  *ui.FlashBar
	statusBar *views.StatusBar

	splash      *views.Splash
	chatList    *views.ChatList
	postsView   *views.PostsView
	profileView *views.ProfileView
	chatView    *views.ChatView
	editProfile *views.EditProfile
	help        *views.HelpView

	filter        string
	favoritesOnly bool
	postsLoaded   bool
	promptActive  bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.Light()

	a := &App{
		app:         tview.NewApplication(),
		pages:       ui.NewPages(),
		tabPages:    tview.NewPages(),
		theme:       theme,
		vm:          model.NewViewModel(c),
		client:      c,
		registry:    keys.NewRegistry(),
		session:     sessionName,
		logo:        ui.NewLogo(theme),
		header:      ui.NewHeader(theme),
		menu:        ui.NewMenu(theme),
		tabs:        ui.NewTabs(theme),
		prompt:      ui.NewPrompt(theme),
		flash:       ui.NewFlashModel(),
		flashBar:    ui.NewFlashBar(theme),
		statusBar:   views.NewStatusBar(theme),
		splash:      views.NewSplash(theme),
		chatList:    views.NewChatList(theme),
		postsView:   views.NewPostsView(theme),
		profileView: views.NewProfileView(theme),
		chatView:    views.NewChatView(theme),
		editProfile: views.NewEditProfile(theme),
		help:        views.NewHelpView(theme),
		ctx:         ctx,
		cancel:      cancel,
	}

	a.statusBar.SetSession(sessionName)
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func (a *App) setupBindings() {
	bind := func(view string, r rune, desc string, visible bool, fn func()) {
		act := &keys.Action{Key: tcell.KeyRune, Rune: r, Description: desc, Visible: visible, Handler: fn}
		if view == "" {
			a.registry.AddGlobal(act)
		} else {
			a.registry.AddView(view, act)
		}
	}

	bind("", ':', "Command", true, func() { a.showPrompt(ui.PromptCommand) })
	bind("", '?', "Help", true, func() { a.pushPage(ui.PageHelp) })
	bind("", 'q', "Quit", true, a.quitOrBack)
	bind("", 't', "Theme", false, a.toggleTheme)
	for i, tab := range ui.TabOrder() {
		bind("", rune('1'+i), tab, false, func() { a.showTab(tab) })
	}

	bind(ui.TabChats, 'f', "Favorite", false, func() { a.toggleFavorite(a.chatList.SelectedChat()) })
	bind(ui.TabChats, 'F', "Favorites only", false, func() {
		a.favoritesOnly = !a.favoritesOnly
		a.renderChats()
	})
	bind(ui.TabChats, '/', "Filter", false, func() { a.showPrompt(ui.PromptFilter) })

	bind(ui.TabPosts, 'r', "Refresh", false, func() { a.loadPosts(true) })

	bind(ui.TabProfile, 'e', "Edit", false, a.showEditProfile)
	bind(ui.TabProfile, 'c', "Share code", false, a.profileView.ToggleQR)
	bind(ui.TabProfile, 'n', "Notifications", false, func() {
		on := !a.vm.Settings().GetNotificationsEnabled()
		a.updateSettings(&baatchitv1.UpdateSettingsRequest{NotificationsEnabled: wrapperspb.Bool(on)})
	})
	bind(ui.TabProfile, 's', "Sound", false, func() {
		on := !a.vm.Settings().GetSoundEnabled()
		a.updateSettings(&baatchitv1.UpdateSettingsRequest{SoundEnabled: wrapperspb.Bool(on)})
	})

	bind(ui.PageChat, 'i', "Compose", false, func() { a.app.SetFocus(a.chatView.Composer()) })
	bind(ui.PageChat, 'f', "Favorite", false, func() { a.toggleFavorite(a.vm.ActiveChatID()) })
	bind(ui.PageChat, 'x', "Close", false, func() { a.leaveChat(true) })
}

func (a *App) setupCallbacks() {
	a.chatList.SetSelectedFunc(func(row, col int) {
		if id := a.chatList.SelectedChat(); id != "" {
			a.openChat(id)
		}
	})

	a.chatView.SetOnSend(func(text string) {
		go func() {
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			defer cancel()
			if err := a.vm.Send(ctx, text); err != nil {
				a.flash.Err(fmt.Errorf("send failed: %w", err))
				a.app.QueueUpdateDraw(a.drawFlash)
			}
		}()
	})

	a.editProfile.SetOnSave(a.saveProfile)
	a.editProfile.SetOnCancel(a.back)

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		if mode == ui.PromptFilter {
			a.filter = text
			a.renderChats()
			return
		}
		a.runCommand(ParseCommand(text))
	})
	a.prompt.SetOnCancel(a.hidePrompt)

	a.pages.SetOnChange(func(stack []string) {
		a.statusBar.SetPath(strings.Join(stack, " > "))
		a.refreshMenu()
	})
}

func (a *App) setupLayout() {
	for _, tab := range ui.TabOrder() {
		var p tview.Primitive
		switch tab {
		case ui.TabChats:
			p = a.chatList
		case ui.TabPosts:
			p = a.postsView
		case ui.TabProfile:
			p = a.profileView
		}
		a.tabPages.AddPage(tab, p, true, tab == ui.TabChats)
	}
	mainPage := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.tabs, 1, 0, false).
		AddItem(a.tabPages, 0, 1, true)

	a.pages.AddPage(ui.PageSplash, a.splash, true, false)
	a.pages.AddPage(ui.PageMain, mainPage, true, false)
	a.pages.AddPage(ui.PageChat, a.chatView, true, false)
	a.pages.AddPage(ui.PageEditProfile, a.editProfile, true, false)
	a.pages.AddPage(ui.PageHelp, a.help, true, false)

	top := tview.NewFlex().
		AddItem(a.logo, 26, 0, false).
		AddItem(a.header, 0, 1, false).
		AddItem(a.menu, 0, 1, false)

	a.body = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 7, 0, false).
		AddItem(a.body, 0, 1, true).
		AddItem(a.flashBar, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.pages.Reset(ui.PageSplash)
	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if a.promptActive {
		return event
	}
	page := a.pages.Current()

	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		if page == ui.PageChat && event.Key() == tcell.KeyEscape {
			a.app.SetFocus(a.chatView.Messages())
			return nil
		}
		return event
	}

	switch page {
	case ui.PageSplash, ui.PageEditProfile:
		return event
	case ui.PageChat, ui.PageHelp:
		if event.Key() == tcell.KeyEscape {
			a.back()
			return nil
		}
	}

	if a.registry.HandleEvent(a.scope(), event) {
		return nil
	}
	return event
}

// scope names the binding set for the visible page.
func (a *App) scope() string {
	if page := a.pages.Current(); page != ui.PageMain {
		return page
	}
	return a.tabs.Active()
}

func (a *App) refreshMenu() {
	var hints []ui.MenuHint
	switch a.pages.Current() {
	case ui.PageMain:
		switch a.tabs.Active() {
		case ui.TabChats:
			hints = a.chatList.Hints()
		case ui.TabPosts:
			hints = a.postsView.Hints()
		case ui.TabProfile:
			hints = a.profileView.Hints()
		}
	case ui.PageChat:
		hints = a.chatView.Hints()
	case ui.PageEditProfile:
		hints = a.editProfile.Hints()
	case ui.PageHelp:
		hints = a.help.Hints()
	}
	a.menu.Update(append(hints, a.registry.Hints("")...))
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	a.screen = screen
	a.app.SetScreen(screen)

	go a.boot()
	defer a.cancel()
	return a.app.Run()
}

// boot loads the initial state behind the splash page, then starts the
// event stream and the refresh loop.
func (a *App) boot() {
	shown := time.Now()
	for {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		err := a.vm.LoadAll(ctx)
		cancel()
		if err == nil {
			break
		}
		if a.ctx.Err() != nil {
			return
		}
		a.app.QueueUpdateDraw(func() {
			a.splash.SetMessage(a.theme, "Cannot reach daemon: "+err.Error())
		})
		select {
		case <-time.After(reconnectAfter):
		case <-a.ctx.Done():
			return
		}
	}

	if wait := SplashDuration - time.Since(shown); wait > 0 {
		select {
		case <-time.After(wait):
		case <-a.ctx.Done():
			return
		}
	}

	a.app.QueueUpdateDraw(func() {
		a.applyTheme()
		a.renderAll()
		a.pages.Reset(ui.PageMain)
		a.showTab(ui.TabChats)
	})

	go a.watchEvents()
	a.refreshLoop()
}

// watchEvents follows the daemon event stream, reconnecting when it drops.
func (a *App) watchEvents() {
	for a.ctx.Err() == nil {
		err := a.streamOnce()
		if a.ctx.Err() != nil {
			return
		}
		a.flash.Err(fmt.Errorf("event stream lost: %w", err))
		a.app.QueueUpdateDraw(func() {
			a.statusBar.SetStatus("OFFLINE")
			a.drawFlash()
		})
		select {
		case <-time.After(reconnectAfter):
		case <-a.ctx.Done():
			return
		}
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		if err := a.vm.LoadAll(ctx); err == nil {
			a.app.QueueUpdateDraw(a.renderAll)
		}
		cancel()
	}
}

func (a *App) streamOnce() error {
	stream, err := a.client.App.WatchEvents(a.ctx, &baatchitv1.WatchEventsRequest{})
	if err != nil {
		return err
	}
	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return errors.New("daemon closed the stream")
		}
		if err != nil {
			return err
		}
		u, err := a.vm.Apply(evt)
		if err != nil {
			continue
		}
		a.app.QueueUpdateDraw(func() { a.applyUpdate(u) })
	}
}

func (a *App) applyUpdate(u model.Update) {
	if u.Changed.Has(model.ChangeTheme) {
		a.applyTheme()
	}
	if u.Changed.Has(model.ChangeChatsStale) {
		go a.reloadChats()
	}
	if u.Changed.Has(model.ChangeChats) {
		a.renderChats()
	}
	if u.Changed.Has(model.ChangeTranscript) {
		if tr, ok := a.vm.Transcript(); ok {
			a.chatView.Update(tr)
		} else if a.pages.Current() == ui.PageChat {
			a.pages.Pop()
			a.focusCurrent()
		}
	}
	if u.Changed.Has(model.ChangeSettings) || u.Changed.Has(model.ChangeProfile) {
		a.renderProfile()
	}
	if u.Changed.Has(model.ChangePosts) && a.tabs.Active() == ui.TabPosts && !a.postsLoaded {
		a.loadPosts(false)
	}
	if u.Changed&(model.ChangeStatus|model.ChangeBadge) != 0 {
		a.renderHeader()
	}
	if n := u.Notice; n != nil {
		a.flash.Info(fmt.Sprintf("%s: %s", n.GetTitle(), n.GetBody()))
		if n.GetSound() && a.screen != nil {
			_ = a.screen.Beep()
		}
	}
	if u.Warning != "" {
		a.flash.Warn(u.Warning)
	}
	a.drawFlash()
}

func (a *App) refreshLoop() {
	ticker := time.NewTicker(refreshEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			err := a.vm.LoadStatus(ctx)
			cancel()
			a.app.QueueUpdateDraw(func() {
				if err == nil {
					a.renderHeader()
				}
				a.drawFlash()
			})
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) reloadChats() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	if err := a.vm.LoadChats(ctx); err != nil {
		return
	}
	a.app.QueueUpdateDraw(func() {
		a.renderChats()
		a.renderHeader()
	})
}

func (a *App) applyTheme() {
	a.theme = ui.ForMode(a.vm.Theme().GetMode())
	for _, c := range []interface{ ApplyTheme(*ui.Theme) }{
		a.logo, a.header, a.menu, a.tabs, a.prompt, a.flashBar, a.statusBar,
		a.splash, a.chatList, a.postsView, a.profileView, a.chatView, a.editProfile, a.help,
	} {
		c.ApplyTheme(a.theme)
	}
	a.root.SetBackgroundColor(a.theme.BgColor)
	a.renderHeader()
}

func (a *App) renderAll() {
	a.renderChats()
	a.renderProfile()
	a.renderHeader()
	if a.postsLoaded {
		posts, source := a.vm.Posts()
		a.postsView.Update(posts, source)
	}
}

func (a *App) renderChats() {
	a.chatList.Update(a.vm.Chats(a.filter, a.favoritesOnly), a.filter, a.favoritesOnly)
	a.tabs.SetUnread(a.vm.Unread())
}

func (a *App) renderProfile() {
	s := a.vm.Settings()
	a.profileView.Update(a.vm.Profile(), s)
	a.chatView.SetAppearance(s.GetFontSize(), s.GetChatBackgroundColor())
}

func (a *App) renderHeader() {
	st := a.vm.Status()
	a.header.Update(ui.HeaderData{
		Session: a.session,
		Status:  st.GetStatus(),
		Theme:   a.vm.Theme().GetMode(),
		Chats:   a.vm.ChatCount(),
		Unread:  a.vm.Unread(),
		Badge:   a.vm.Badge(),
		Uptime:  time.Duration(st.GetUptimeMs()) * time.Millisecond,
	})
	a.statusBar.SetStatus(st.GetStatus())
}

func (a *App) drawFlash() {
	a.flashBar.Update(a.flash.Current())
}

func (a *App) showTab(tab string) {
	if a.pages.Current() == ui.PageSplash {
		return
	}
	if a.pages.Current() != ui.PageMain {
		a.leaveToMain()
	}
	a.tabs.SetActive(tab)
	a.tabPages.SwitchToPage(tab)
	switch tab {
	case ui.TabChats:
		a.app.SetFocus(a.chatList)
	case ui.TabPosts:
		a.app.SetFocus(a.postsView)
		if !a.postsLoaded {
			a.loadPosts(false)
		}
	case ui.TabProfile:
		a.app.SetFocus(a.profileView)
	}
	a.refreshMenu()
}

// leaveToMain unwinds the page stack, backgrounding an open chat.
func (a *App) leaveToMain() {
	if a.pages.Current() == ui.PageChat {
		a.leaveChat(false)
	}
	a.pages.Reset(ui.PageMain)
}

func (a *App) pushPage(name string) {
	if a.pages.Current() == name || a.pages.Current() == ui.PageSplash {
		return
	}
	a.pages.Push(name)
	switch name {
	case ui.PageHelp:
		a.app.SetFocus(a.help)
	case ui.PageEditProfile:
		a.app.SetFocus(a.editProfile)
	case ui.PageChat:
		a.app.SetFocus(a.chatView.Messages())
	}
}

func (a *App) back() {
	switch a.pages.Current() {
	case ui.PageChat:
		a.leaveChat(false)
		return
	case ui.PageMain, ui.PageSplash:
		return
	}
	a.pages.Pop()
	a.focusCurrent()
}

func (a *App) focusCurrent() {
	switch a.pages.Current() {
	case ui.PageChat:
		a.app.SetFocus(a.chatView.Messages())
	case ui.PageHelp:
		a.app.SetFocus(a.help)
	case ui.PageEditProfile:
		a.app.SetFocus(a.editProfile)
	case ui.PageMain:
		a.showTab(a.tabs.Active())
	}
}

func (a *App) quitOrBack() {
	if a.pages.Current() == ui.PageMain {
		a.Stop()
		return
	}
	a.back()
}

func (a *App) showPrompt(mode ui.PromptMode) {
	a.prompt.Activate(mode)
	if mode == ui.PromptFilter {
		a.prompt.SetText(a.filter)
	}
	a.promptActive = true
	a.body.ResizeItem(a.prompt, promptHeight, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.promptActive = false
	a.body.ResizeItem(a.prompt, 0, 0)
	a.focusCurrent()
}

func (a *App) openChat(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		var err error
		switch prev := a.vm.ActiveChatID(); prev {
		case id:
			err = a.vm.FocusChat(ctx)
		case "":
			err = a.vm.OpenChat(ctx, id)
		default:
			_ = a.vm.BlurChat(ctx)
			err = a.vm.OpenChat(ctx, id)
		}
		if err != nil {
			a.flash.Err(fmt.Errorf("open chat: %w", err))
			a.app.QueueUpdateDraw(a.drawFlash)
			return
		}
		tr, _ := a.vm.Transcript()
		a.app.QueueUpdateDraw(func() {
			a.chatView.Update(tr)
			if a.pages.Current() != ui.PageChat {
				a.pages.Reset(ui.PageMain)
				a.pushPage(ui.PageChat)
			}
		})
	}()
}

// leaveChat returns to the list. Closing cancels pending replies, leaving
// only backgrounds the chat so they still arrive.
func (a *App) leaveChat(closeChat bool) {
	a.pages.Pop()
	a.focusCurrent()
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		var err error
		if closeChat {
			err = a.vm.CloseChat(ctx)
		} else {
			err = a.vm.BlurChat(ctx)
		}
		if err != nil {
			a.flash.Err(err)
			a.app.QueueUpdateDraw(a.drawFlash)
		}
	}()
}

func (a *App) toggleFavorite(id string) {
	if id == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		fav, err := a.vm.ToggleFavorite(ctx, id)
		if err != nil {
			a.flash.Err(err)
		} else if fav {
			a.flash.Info("Added to favorites")
		} else {
			a.flash.Info("Removed from favorites")
		}
		a.app.QueueUpdateDraw(func() {
			a.renderChats()
			if tr, ok := a.vm.Transcript(); ok && tr.GetChat().GetId() == id {
				tr.Chat.IsFavorite = fav
				a.chatView.Update(tr)
			}
			a.drawFlash()
		})
	}()
}

func (a *App) toggleTheme() {
	a.setTheme("")
}

// setTheme switches to mode, or toggles when mode is empty.
func (a *App) setTheme(mode string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		var err error
		if mode == "" {
			err = a.vm.ToggleTheme(ctx)
		} else {
			err = a.vm.SetTheme(ctx, mode)
		}
		if err != nil {
			a.flash.Err(err)
			a.app.QueueUpdateDraw(a.drawFlash)
			return
		}
		a.app.QueueUpdateDraw(func() {
			a.applyTheme()
			a.renderProfile()
		})
	}()
}

func (a *App) loadPosts(refresh bool) {
	a.postsView.SetLoading()
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, 2*rpcTimeout)
		defer cancel()
		err := a.vm.LoadPosts(ctx, refresh)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.flash.Err(fmt.Errorf("load posts: %w", err))
				a.postsView.Update(nil, "")
				a.drawFlash()
				return
			}
			a.postsLoaded = true
			posts, source := a.vm.Posts()
			a.postsView.Update(posts, source)
			if source == "fallback" {
				a.flash.Warn("Posts are offline, showing saved samples")
				a.drawFlash()
			}
		})
	}()
}

func (a *App) updateSettings(req *baatchitv1.UpdateSettingsRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := a.vm.UpdateSettings(ctx, req); err != nil {
			a.flash.Err(err)
		} else {
			a.flash.Info("Settings saved")
		}
		a.app.QueueUpdateDraw(func() {
			a.renderProfile()
			a.drawFlash()
		})
	}()
}

func (a *App) showEditProfile() {
	a.editProfile.Load(a.vm.Profile())
	a.pushPage(ui.PageEditProfile)
}

func (a *App) saveProfile(p *baatchitv1.Profile) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		fieldErrors, err := a.vm.SaveProfile(ctx, p)
		a.app.QueueUpdateDraw(func() {
			switch {
			case err != nil:
				a.flash.Err(err)
			case len(fieldErrors) > 0:
				a.editProfile.SetErrors(fieldErrors)
			default:
				a.flash.Info("Profile updated")
				a.renderProfile()
				if a.pages.Current() == ui.PageEditProfile {
					a.back()
				}
			}
			a.drawFlash()
		})
	}()
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "quit":
		a.Stop()
	case "help":
		a.pushPage(ui.PageHelp)
	case "chat":
		c, ok := a.vm.FindChat(cmd.Args)
		if cmd.Args == "" || !ok {
			a.flash.Warn("No chat matching " + cmd.Args)
			break
		}
		a.openChat(c.GetId())
	case "theme":
		switch arg := cmd.Arg(); arg {
		case "", "toggle":
			a.setTheme("")
		case "light", "dark":
			a.setTheme(arg)
		default:
			a.flash.Warn("Theme must be light or dark")
		}
	case "fav":
		a.favoritesOnly = !a.favoritesOnly
		a.showTab(ui.TabChats)
		a.renderChats()
	case "posts":
		a.showTab(ui.TabPosts)
		if cmd.Arg() == "refresh" {
			a.loadPosts(true)
		}
	case "profile":
		a.showTab(ui.TabProfile)
	case "edit":
		a.showTab(ui.TabProfile)
		a.showEditProfile()
	case "font":
		a.updateSettings(&baatchitv1.UpdateSettingsRequest{FontSize: wrapperspb.String(cmd.Arg())})
	case "badge":
		if cmd.Arg() != "clear" {
			a.flash.Info(fmt.Sprintf("Badge: %d", a.vm.Badge()))
			break
		}
		go func() {
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			defer cancel()
			if err := a.vm.ClearBadge(ctx); err != nil {
				a.flash.Err(err)
			}
			a.app.QueueUpdateDraw(func() {
				a.renderHeader()
				a.drawFlash()
			})
		}()
	default:
		a.flash.Warn("Unknown command: " + cmd.Name)
	}
	a.drawFlash()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
