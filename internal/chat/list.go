// Package chat owns the chat list, the favorites set and the active chat.
package chat

import (
	"errors"
	"slices"
	"sync"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/kv"
	"go.uber.org/zap"
)

var (
	ErrChatNotFound     = errors.New("chat not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrStatusRegression = errors.New("message status cannot move backwards")
)

// Summary is the list-view state of one conversation.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   string    `json:"timestamp"`
	Avatar      string    `json:"avatar"`
	UnreadCount int       `json:"unreadCount"`
	IsFavorite  bool      `json:"isFavorite"`
	Messages    []Message `json:"messages,omitempty"`
}

func (s *Summary) clone() Summary {
	c := *s
	c.Messages = slices.Clone(s.Messages)
	return c
}

// FavoriteChange is the payload of chat.favorite_toggled.
type FavoriteChange struct {
	ChatID     string
	IsFavorite bool
	Favorites  []string
}

// List is the chat list container. The favorites set and every summary's
// IsFavorite flag always agree.
type List struct {
	mu        sync.RWMutex
	chats     []*Summary
	favorites []string
	activeID  string

	persist kv.Persister
	bus     *bus.Bus
	logger  *zap.Logger
}

// NewList creates a List holding the seed chats.
func NewList(p kv.Persister, b *bus.Bus, logger *zap.Logger) *List {
	l := &List{persist: p, bus: b, logger: logger}
	for _, s := range SeedChats() {
		l.chats = append(l.chats, &s)
	}
	l.favorites = SeedFavorites()
	l.syncFlags()
	return l
}

// Chats returns a deep copy of the list in display order.
func (l *List) Chats() []Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Summary, 0, len(l.chats))
	for _, c := range l.chats {
		out = append(out, c.clone())
	}
	return out
}

// Get returns one chat.
func (l *List) Get(id string) (Summary, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := l.find(id)
	if c == nil {
		return Summary{}, false
	}
	return c.clone(), true
}

// Favorites returns the favorite chat IDs in insertion order.
func (l *List) Favorites() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.favorites)
}

// Active returns the chat most recently passed to SetActiveChat.
func (l *List) Active() (Summary, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if c := l.find(l.activeID); c != nil {
		return c.clone(), true
	}
	return Summary{}, false
}

// ToggleFavorite flips id's membership in the favorites set and persists
// the whole set. Unknown chats are rejected without a write.
func (l *List) ToggleFavorite(id string) (bool, error) {
	l.mu.Lock()
	c := l.find(id)
	if c == nil {
		l.mu.Unlock()
		return false, ErrChatNotFound
	}
	if i := slices.Index(l.favorites, id); i >= 0 {
		l.favorites = slices.Delete(l.favorites, i, i+1)
		c.IsFavorite = false
	} else {
		l.favorites = append(l.favorites, id)
		c.IsFavorite = true
	}
	change := FavoriteChange{ChatID: id, IsFavorite: c.IsFavorite, Favorites: slices.Clone(l.favorites)}
	// Queued under the lock: the writer then sees sets in toggle order.
	if l.persist != nil {
		l.persist.Put(kv.KeyFavorites, change.Favorites)
	}
	l.mu.Unlock()

	l.bus.Emit(bus.KindFavoriteToggled, change)
	return change.IsFavorite, nil
}

// SetActiveChat marks chat as active, inserting it when the list does not
// know it yet. The stored summary is returned.
func (l *List) SetActiveChat(chat Summary) Summary {
	l.mu.Lock()
	c := l.find(chat.ID)
	if c == nil {
		inserted := chat.clone()
		inserted.IsFavorite = slices.Contains(l.favorites, chat.ID)
		c = &inserted
		l.chats = append(l.chats, c)
		l.logger.Debug("chat inserted on open", zap.String("chat", chat.ID))
	}
	l.activeID = c.ID
	out := c.clone()
	l.mu.Unlock()

	l.bus.Emit(bus.KindChatUpdated, out.ID)
	return out
}

// ClearActive forgets the active chat.
func (l *List) ClearActive() {
	l.mu.Lock()
	l.activeID = ""
	l.mu.Unlock()
}

// AddMessage appends msg to the chat and refreshes its preview.
func (l *List) AddMessage(chatID string, msg Message) error {
	return l.update(chatID, func(c *Summary) error {
		c.Messages = append(c.Messages, msg)
		c.LastMessage = msg.Text
		c.Timestamp = "now"
		return nil
	})
}

// UpdateMessageStatus advances a message's status one step.
func (l *List) UpdateMessageStatus(chatID, msgID string, status Status) error {
	return l.update(chatID, func(c *Summary) error {
		for i := range c.Messages {
			if c.Messages[i].ID != msgID {
				continue
			}
			if err := CheckTransition(c.Messages[i].Status, status); err != nil {
				return err
			}
			c.Messages[i].Status = status
			return nil
		}
		return ErrMessageNotFound
	})
}

// MarkAsRead clears the unread counter.
func (l *List) MarkAsRead(chatID string) error {
	return l.update(chatID, func(c *Summary) error {
		c.UnreadCount = 0
		return nil
	})
}

// IncrementUnread counts one more unseen incoming message.
func (l *List) IncrementUnread(chatID string) error {
	return l.update(chatID, func(c *Summary) error {
		c.UnreadCount++
		return nil
	})
}

// LoadFavorites replaces the favorites set with ids and re-syncs every flag.
// IDs of chats not in the list are kept so a later insert picks them up.
func (l *List) LoadFavorites(ids []string) {
	l.mu.Lock()
	l.favorites = make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(l.favorites, id) {
			l.favorites = append(l.favorites, id)
		}
	}
	l.syncFlags()
	l.mu.Unlock()
	l.logger.Info("favorites loaded", zap.Int("count", len(ids)))
}

func (l *List) update(chatID string, fn func(*Summary) error) error {
	l.mu.Lock()
	c := l.find(chatID)
	if c == nil {
		l.mu.Unlock()
		return ErrChatNotFound
	}
	err := fn(c)
	l.mu.Unlock()
	if err == nil {
		l.bus.Emit(bus.KindChatUpdated, chatID)
	}
	return err
}

// find and syncFlags must be called with l.mu held.
func (l *List) find(id string) *Summary {
	for _, c := range l.chats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (l *List) syncFlags() {
	for _, c := range l.chats {
		c.IsFavorite = slices.Contains(l.favorites, c.ID)
	}
}
