package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/tui/client"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"
)

// Change reports which parts of the cached state an update touched.
type Change uint16

const (
	ChangeStatus Change = 1 << iota
	ChangeTheme
	ChangeChats
	ChangeTranscript
	ChangePosts
	ChangeSettings
	ChangeProfile
	ChangeBadge
	// ChangeChatsStale means the chat list must be fetched again.
	ChangeChatsStale
)

// Has reports whether every bit of o is set in c.
func (c Change) Has(o Change) bool { return c&o == o }

// Update is the outcome of applying one daemon event.
type Update struct {
	Changed Change
	Notice  *baatchitv1.Notification
	Warning string
}

// ViewModel caches daemon state for the views. Loads go through the client,
// streamed events are folded in by Apply.
type ViewModel struct {
	mu sync.RWMutex

	client      *client.Client
	status      *baatchitv1.GetStatusResponse
	theme       *baatchitv1.ThemeState
	chats       []*baatchitv1.Chat
	transcript  *baatchitv1.Transcript
	posts       []*baatchitv1.Post
	postsSource string
	settings    *baatchitv1.Settings
	profile     *baatchitv1.Profile
	badge       int
}

// NewViewModel creates a new view model connected to the daemon client.
func NewViewModel(c *client.Client) *ViewModel {
	return &ViewModel{
		client:   c,
		status:   &baatchitv1.GetStatusResponse{},
		theme:    &baatchitv1.ThemeState{Mode: "light"},
		settings: &baatchitv1.Settings{},
		profile:  &baatchitv1.Profile{},
	}
}

// LoadAll fetches everything the main tabs show, in parallel.
func (vm *ViewModel) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return vm.LoadStatus(ctx) })
	g.Go(func() error { return vm.LoadTheme(ctx) })
	g.Go(func() error { return vm.LoadChats(ctx) })
	g.Go(func() error { return vm.LoadSettings(ctx) })
	g.Go(func() error { return vm.LoadProfile(ctx) })
	return g.Wait()
}

// LoadStatus fetches daemon status. The badge is carried along.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	resp, err := vm.client.App.GetStatus(ctx, &baatchitv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.status = resp
	vm.badge = int(resp.GetBadge())
	vm.mu.Unlock()
	return nil
}

// LoadTheme fetches the current theme.
func (vm *ViewModel) LoadTheme(ctx context.Context) error {
	resp, err := vm.client.Theme.GetTheme(ctx, &baatchitv1.GetThemeRequest{})
	if err != nil {
		return err
	}
	vm.setTheme(resp)
	return nil
}

// ToggleTheme flips the theme on the daemon.
func (vm *ViewModel) ToggleTheme(ctx context.Context) error {
	resp, err := vm.client.Theme.ToggleTheme(ctx, &baatchitv1.ToggleThemeRequest{})
	if err != nil {
		return err
	}
	vm.setTheme(resp)
	return nil
}

// SetTheme selects mode on the daemon.
func (vm *ViewModel) SetTheme(ctx context.Context, mode string) error {
	resp, err := vm.client.Theme.SetTheme(ctx, &baatchitv1.SetThemeRequest{Mode: mode})
	if err != nil {
		return err
	}
	vm.setTheme(resp)
	return nil
}

func (vm *ViewModel) setTheme(t *baatchitv1.ThemeState) {
	vm.mu.Lock()
	vm.theme = t
	vm.mu.Unlock()
}

// LoadChats fetches the chat list.
func (vm *ViewModel) LoadChats(ctx context.Context) error {
	resp, err := vm.client.Chat.ListChats(ctx, &baatchitv1.ListChatsRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.chats = resp.Chats
	vm.mu.Unlock()
	return nil
}

// ToggleFavorite flips the favorite flag of chatID and reports the new value.
func (vm *ViewModel) ToggleFavorite(ctx context.Context, chatID string) (bool, error) {
	resp, err := vm.client.Chat.ToggleFavorite(ctx, &baatchitv1.ToggleFavoriteRequest{ChatId: chatID})
	if err != nil {
		return false, err
	}
	vm.mu.Lock()
	vm.syncFavorites(resp.Favorites)
	vm.mu.Unlock()
	return resp.IsFavorite, nil
}

// OpenChat mounts chatID's transcript and makes it the active one.
func (vm *ViewModel) OpenChat(ctx context.Context, chatID string) error {
	tr, err := vm.client.Chat.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: chatID})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.transcript = tr
	vm.mu.Unlock()
	return nil
}

// FocusChat puts the active transcript back in the foreground.
func (vm *ViewModel) FocusChat(ctx context.Context) error {
	id := vm.ActiveChatID()
	if id == "" {
		return nil
	}
	if _, err := vm.client.Chat.FocusChat(ctx, &baatchitv1.FocusChatRequest{ChatId: id}); err != nil {
		return err
	}
	vm.mu.Lock()
	if vm.transcript != nil {
		vm.transcript.Foreground = true
	}
	vm.mu.Unlock()
	return nil
}

// BlurChat moves the active transcript to the background. Its pending
// replies still arrive.
func (vm *ViewModel) BlurChat(ctx context.Context) error {
	id := vm.ActiveChatID()
	if id == "" {
		return nil
	}
	if _, err := vm.client.Chat.BlurChat(ctx, &baatchitv1.BlurChatRequest{ChatId: id}); err != nil {
		return err
	}
	vm.mu.Lock()
	if vm.transcript != nil {
		vm.transcript.Foreground = false
	}
	vm.mu.Unlock()
	return nil
}

// CloseChat unmounts the active transcript.
func (vm *ViewModel) CloseChat(ctx context.Context) error {
	id := vm.ActiveChatID()
	if id == "" {
		return nil
	}
	vm.mu.Lock()
	vm.transcript = nil
	vm.mu.Unlock()
	_, err := vm.client.Chat.CloseChat(ctx, &baatchitv1.CloseChatRequest{ChatId: id})
	return err
}

// Send posts text to the active chat. The message itself arrives as an event.
func (vm *ViewModel) Send(ctx context.Context, text string) error {
	id := vm.ActiveChatID()
	if id == "" {
		return fmt.Errorf("no chat open")
	}
	_, err := vm.client.Chat.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: id, Text: text})
	return err
}

// LoadPosts fetches the posts feed. refresh bypasses the daemon cache.
func (vm *ViewModel) LoadPosts(ctx context.Context, refresh bool) error {
	resp, err := vm.client.Posts.ListPosts(ctx, &baatchitv1.ListPostsRequest{Refresh: refresh})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.posts = resp.Posts
	vm.postsSource = resp.Source
	vm.mu.Unlock()
	return nil
}

// LoadSettings fetches user settings.
func (vm *ViewModel) LoadSettings(ctx context.Context) error {
	resp, err := vm.client.Settings.GetSettings(ctx, &baatchitv1.GetSettingsRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.settings = resp
	vm.mu.Unlock()
	return nil
}

// UpdateSettings applies a partial settings change.
func (vm *ViewModel) UpdateSettings(ctx context.Context, req *baatchitv1.UpdateSettingsRequest) error {
	resp, err := vm.client.Settings.UpdateSettings(ctx, req)
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.settings = resp
	vm.mu.Unlock()
	return nil
}

// LoadProfile fetches the user profile.
func (vm *ViewModel) LoadProfile(ctx context.Context) error {
	resp, err := vm.client.Profile.GetProfile(ctx, &baatchitv1.GetProfileRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.profile = resp
	vm.mu.Unlock()
	return nil
}

// SaveProfile submits p. A rejected profile yields its field errors and
// leaves the cache untouched.
func (vm *ViewModel) SaveProfile(ctx context.Context, p *baatchitv1.Profile) (map[string]string, error) {
	resp, err := vm.client.Profile.UpdateProfile(ctx, &baatchitv1.UpdateProfileRequest{Profile: p})
	if err != nil {
		return nil, err
	}
	if len(resp.FieldErrors) > 0 {
		return resp.FieldErrors, nil
	}
	vm.mu.Lock()
	vm.profile = resp.GetProfile()
	vm.mu.Unlock()
	return nil, nil
}

// ClearBadge resets the badge counter on the daemon.
func (vm *ViewModel) ClearBadge(ctx context.Context) error {
	resp, err := vm.client.Notifications.SetBadge(ctx, &baatchitv1.SetBadgeRequest{Count: 0})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.badge = int(resp.GetCount())
	vm.mu.Unlock()
	return nil
}

// Apply folds one streamed event into the cache.
func (vm *ViewModel) Apply(env *baatchitv1.EventEnvelope) (Update, error) {
	var u Update
	msg, err := client.Decode(env)
	if err != nil {
		return u, err
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()

	switch p := msg.(type) {
	case *baatchitv1.StatusChanged:
		vm.status.Status = p.GetTo()
		u.Changed = ChangeStatus

	case *baatchitv1.ThemeState:
		vm.theme = p
		u.Changed = ChangeTheme

	case *baatchitv1.ChatRef:
		switch env.GetKind() {
		case bus.KindChatUpdated:
			u.Changed = ChangeChatsStale
		case bus.KindTranscriptEnd:
			if vm.isActive(p.GetChatId()) {
				vm.transcript = nil
				u.Changed = ChangeTranscript
			}
		}

	case *baatchitv1.FavoriteChanged:
		vm.syncFavorites(p.GetFavorites())
		u.Changed = ChangeChats

	case *baatchitv1.MessageAdded:
		m := p.GetMessage()
		if vm.isActive(p.GetChatId()) && m != nil &&
			!slices.ContainsFunc(vm.transcript.Messages, func(x *baatchitv1.Message) bool { return x.GetId() == m.GetId() }) {
			vm.transcript.Messages = append(vm.transcript.Messages, m)
			u.Changed = ChangeTranscript
		}

	case *baatchitv1.MessageStatusChanged:
		if vm.isActive(p.GetChatId()) {
			for _, m := range vm.transcript.Messages {
				if m.GetId() == p.GetMessageId() {
					m.Status = p.GetStatus()
					u.Changed = ChangeTranscript
				}
			}
		}

	case *baatchitv1.TypingChanged:
		if vm.isActive(p.GetChatId()) {
			vm.transcript.Typing = p.GetTyping()
			u.Changed = ChangeTranscript
		}

	case *baatchitv1.Notification:
		u.Notice = p

	case *baatchitv1.Badge:
		vm.badge = int(p.GetCount())
		u.Changed = ChangeBadge

	case *baatchitv1.Settings:
		vm.settings = p
		u.Changed = ChangeSettings

	case *baatchitv1.Profile:
		vm.profile = p
		u.Changed = ChangeProfile

	case *baatchitv1.PersistResult:
		if env.GetKind() == bus.KindPersistFailed {
			u.Warning = fmt.Sprintf("Could not save %s: %s", p.GetKey(), p.GetError())
		}

	case *baatchitv1.PostsLoaded:
		vm.postsSource = p.GetSource()
		u.Changed = ChangePosts
	}
	return u, nil
}

// isActive and syncFavorites must be called with vm.mu held.
func (vm *ViewModel) isActive(chatID string) bool {
	return vm.transcript != nil && vm.transcript.GetChat().GetId() == chatID
}

func (vm *ViewModel) syncFavorites(ids []string) {
	for _, c := range vm.chats {
		c.IsFavorite = slices.Contains(ids, c.GetId())
	}
	vm.status.Favorites = slices.Clone(ids)
}

// clone keeps cached messages private to the view model; Apply mutates
// them in place.
func clone[M proto.Message](m M) M {
	return proto.Clone(m).(M)
}

// Status returns a snapshot of daemon status.
func (vm *ViewModel) Status() *baatchitv1.GetStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return clone(vm.status)
}

// Theme returns the current theme.
func (vm *ViewModel) Theme() *baatchitv1.ThemeState {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return clone(vm.theme)
}

// Chats returns the chat list, narrowed by filter and favoritesOnly.
// filter matches names and previews case-insensitively.
func (vm *ViewModel) Chats(filter string, favoritesOnly bool) []*baatchitv1.Chat {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]*baatchitv1.Chat, 0, len(vm.chats))
	for _, c := range vm.chats {
		if favoritesOnly && !c.GetIsFavorite() {
			continue
		}
		if filter != "" &&
			!strings.Contains(strings.ToLower(c.GetName()), filter) &&
			!strings.Contains(strings.ToLower(c.GetLastMessage()), filter) {
			continue
		}
		out = append(out, clone(c))
	}
	return out
}

// FindChat returns the first chat whose name contains name, case-insensitively.
func (vm *ViewModel) FindChat(name string) (*baatchitv1.Chat, bool) {
	matches := vm.Chats(name, false)
	if len(matches) == 0 {
		return nil, false
	}
	for _, c := range matches {
		if strings.EqualFold(c.GetName(), name) {
			return c, true
		}
	}
	return matches[0], true
}

// Unread sums unread counters across the list.
func (vm *ViewModel) Unread() int {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	n := 0
	for _, c := range vm.chats {
		n += int(c.GetUnreadCount())
	}
	return n
}

// ChatCount returns the number of chats in the list.
func (vm *ViewModel) ChatCount() int {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return len(vm.chats)
}

// Transcript returns a copy of the active transcript.
func (vm *ViewModel) Transcript() (*baatchitv1.Transcript, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.transcript == nil {
		return nil, false
	}
	return clone(vm.transcript), true
}

// ActiveChatID returns the ID of the open transcript, if any.
func (vm *ViewModel) ActiveChatID() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.transcript == nil {
		return ""
	}
	return vm.transcript.GetChat().GetId()
}

// Posts returns the cached feed and where it came from. Posts are never
// mutated after a load, so the slice shares them.
func (vm *ViewModel) Posts() ([]*baatchitv1.Post, string) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return slices.Clone(vm.posts), vm.postsSource
}

// Settings returns the cached user settings.
func (vm *ViewModel) Settings() *baatchitv1.Settings {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return clone(vm.settings)
}

// Profile returns the cached profile.
func (vm *ViewModel) Profile() *baatchitv1.Profile {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return clone(vm.profile)
}

// Badge returns the notification badge count.
func (vm *ViewModel) Badge() int {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.badge
}
