package bus

import "time"

// Event represents a domain event published on the bus.
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds. Subscribers filter on prefixes such as "transcript.".
const (
	KindStatusChanged = "app.status_changed"

	KindThemeChanged = "theme.changed"

	KindChatUpdated     = "chat.updated"
	KindFavoriteToggled = "chat.favorite_toggled"

	KindMessageAdded  = "transcript.message_added"
	KindMessageStatus = "transcript.status_changed"
	KindTyping        = "transcript.typing"
	KindTranscriptEnd = "transcript.closed"

	KindNotificationShown = "notify.displayed"
	KindBadgeChanged      = "notify.badge"

	KindSettingsChanged = "settings.changed"
	KindProfileChanged  = "profile.changed"

	KindPersistOK     = "persist.ok"
	KindPersistFailed = "persist.failed"

	KindPostsLoaded = "posts.loaded"
)
