// Package notify is the local notification dispatcher: channels, display,
// scheduling and the badge counter. Presentation belongs to the clients,
// which receive notify.* events.
package notify

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
)

const (
	ChannelDefault  = "default"
	ChannelMessages = "messages"

	historyLimit = 100
)

// Channel groups notifications with shared presentation options.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Vibration bool   `json:"vibration"`
}

// Notification is one displayed notification.
type Notification struct {
	ID        string            `json:"id"`
	Channel   string            `json:"channel"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	ImageURL  string            `json:"imageUrl,omitempty"`
	Sound     bool              `json:"sound"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Scheduled is a notification waiting for its trigger time.
type Scheduled struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	At    time.Time         `json:"at"`
	Data  map[string]string `json:"data,omitempty"`
}

type pending struct {
	info  Scheduled
	timer *time.Timer
}

// Dispatcher delivers local notifications.
type Dispatcher struct {
	mu            sync.Mutex
	channels      map[string]Channel
	allowed       bool
	hasPermission bool
	enabled       bool
	sound         bool
	history       []Notification
	badge         int
	scheduled     map[string]*pending

	bus    *bus.Bus
	logger *zap.Logger
}

// New creates a dispatcher. allowed is the config switch consulted by
// RequestPermission.
func New(allowed bool, b *bus.Bus, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		channels:  make(map[string]Channel),
		allowed:   allowed,
		enabled:   true,
		sound:     true,
		scheduled: make(map[string]*pending),
		bus:       b,
		logger:    logger,
	}
}

// SetupChannels creates the default and messages channels. Idempotent.
func (d *Dispatcher) SetupChannels() []Channel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[ChannelDefault] = Channel{ID: ChannelDefault, Name: "Default Channel"}
	d.channels[ChannelMessages] = Channel{ID: ChannelMessages, Name: "Messages", Vibration: true}
	return d.channelList()
}

// Channels returns the configured channels sorted by ID.
func (d *Dispatcher) Channels() []Channel {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.channelList()
}

// RequestPermission records whether notifications may be shown.
func (d *Dispatcher) RequestPermission() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hasPermission = d.allowed
	d.logger.Info("notification permission", zap.Bool("granted", d.hasPermission))
	return d.hasPermission
}

// HasPermission reports the result of the last RequestPermission.
func (d *Dispatcher) HasPermission() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPermission
}

// SetPreferences applies the user's notification and sound settings.
func (d *Dispatcher) SetPreferences(enabled, sound bool) {
	d.mu.Lock()
	d.enabled = enabled
	d.sound = sound
	d.mu.Unlock()
}

// Show displays a notification on the default channel. ok is false when
// notifications are not permitted or disabled.
func (d *Dispatcher) Show(title, body string, data map[string]string, imageURL string) (Notification, bool) {
	return d.display(ChannelDefault, title, body, data, imageURL)
}

// ShowMessage displays an incoming chat message and bumps the badge.
func (d *Dispatcher) ShowMessage(sender, body, avatar string) {
	data := map[string]string{"type": "message", "sender": sender, "avatar": avatar}
	if _, ok := d.display(ChannelMessages, sender, body, data, ""); ok {
		d.IncrementBadge()
	}
}

// Schedule displays a notification on the default channel at the given
// time. Past times fire immediately.
func (d *Dispatcher) Schedule(title, body string, at time.Time, data map[string]string) Scheduled {
	info := Scheduled{ID: uuid.NewString(), Title: title, Body: body, At: at, Data: maps.Clone(data)}

	d.mu.Lock()
	defer d.mu.Unlock()
	p := &pending{info: info}
	p.timer = time.AfterFunc(time.Until(at), func() {
		d.mu.Lock()
		_, live := d.scheduled[info.ID]
		delete(d.scheduled, info.ID)
		d.mu.Unlock()
		if live {
			d.Show(info.Title, info.Body, info.Data, "")
		}
	})
	d.scheduled[info.ID] = p
	return info
}

// Pending returns scheduled notifications ordered by trigger time.
func (d *Dispatcher) Pending() []Scheduled {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Scheduled, 0, len(d.scheduled))
	for _, p := range d.scheduled {
		out = append(out, p.info)
	}
	slices.SortFunc(out, func(a, b Scheduled) int { return a.At.Compare(b.At) })
	return out
}

// CancelAll cancels scheduled notifications and clears displayed ones.
func (d *Dispatcher) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelScheduled()
	d.history = nil
}

// History returns displayed notifications, oldest first.
func (d *Dispatcher) History() []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.history)
}

// Badge returns the badge count.
func (d *Dispatcher) Badge() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.badge
}

// SetBadge sets the badge count. Negative values clamp to 0.
func (d *Dispatcher) SetBadge(n int) int {
	return d.updateBadge(func(int) int { return max(n, 0) })
}

// IncrementBadge adds one to the badge count.
func (d *Dispatcher) IncrementBadge() int {
	return d.updateBadge(func(b int) int { return b + 1 })
}

// DecrementBadge subtracts one, never going below 0.
func (d *Dispatcher) DecrementBadge() int {
	return d.updateBadge(func(b int) int { return max(b-1, 0) })
}

// Stop cancels scheduled notifications.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelScheduled()
}

func (d *Dispatcher) display(channel, title, body string, data map[string]string, imageURL string) (Notification, bool) {
	d.mu.Lock()
	if !d.hasPermission || !d.enabled {
		d.mu.Unlock()
		d.logger.Debug("notification suppressed", zap.String("title", title))
		return Notification{}, false
	}
	n := Notification{
		ID:        uuid.NewString(),
		Channel:   channel,
		Title:     title,
		Body:      body,
		Data:      maps.Clone(data),
		ImageURL:  imageURL,
		Sound:     d.sound,
		CreatedAt: time.Now(),
	}
	d.history = append(d.history, n)
	if len(d.history) > historyLimit {
		d.history = slices.Delete(d.history, 0, len(d.history)-historyLimit)
	}
	d.mu.Unlock()

	d.bus.Emit(bus.KindNotificationShown, n)
	return n, true
}

func (d *Dispatcher) updateBadge(fn func(int) int) int {
	d.mu.Lock()
	d.badge = fn(d.badge)
	n := d.badge
	d.mu.Unlock()
	d.bus.Emit(bus.KindBadgeChanged, n)
	return n
}

// channelList and cancelScheduled must be called with d.mu held.
func (d *Dispatcher) channelList() []Channel {
	out := slices.Collect(maps.Values(d.channels))
	slices.SortFunc(out, func(a, b Channel) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (d *Dispatcher) cancelScheduled() {
	for id, p := range d.scheduled {
		p.timer.Stop()
		delete(d.scheduled, id)
	}
}
