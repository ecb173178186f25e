package client

import (
	"fmt"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/bus"
	"google.golang.org/protobuf/proto"
)

// NewPayload returns an empty message of the type carried by events of
// kind, or nil for kinds that carry no payload.
func NewPayload(kind string) proto.Message {
	switch kind {
	case bus.KindStatusChanged:
		return &baatchitv1.StatusChanged{}
	case bus.KindThemeChanged:
		return &baatchitv1.ThemeState{}
	case bus.KindChatUpdated, bus.KindTranscriptEnd:
		return &baatchitv1.ChatRef{}
	case bus.KindFavoriteToggled:
		return &baatchitv1.FavoriteChanged{}
	case bus.KindMessageAdded:
		return &baatchitv1.MessageAdded{}
	case bus.KindMessageStatus:
		return &baatchitv1.MessageStatusChanged{}
	case bus.KindTyping:
		return &baatchitv1.TypingChanged{}
	case bus.KindNotificationShown:
		return &baatchitv1.Notification{}
	case bus.KindBadgeChanged:
		return &baatchitv1.Badge{}
	case bus.KindSettingsChanged:
		return &baatchitv1.Settings{}
	case bus.KindProfileChanged:
		return &baatchitv1.Profile{}
	case bus.KindPersistOK, bus.KindPersistFailed:
		return &baatchitv1.PersistResult{}
	case bus.KindPostsLoaded:
		return &baatchitv1.PostsLoaded{}
	}
	return nil
}

// Decode unmarshals an envelope's payload. Unknown kinds decode to nil
// without error so newer daemons do not break older clients.
func Decode(env *baatchitv1.EventEnvelope) (proto.Message, error) {
	if env.GetPayloadVersion() != 1 {
		return nil, fmt.Errorf("event %s: unsupported payload version %d", env.GetKind(), env.GetPayloadVersion())
	}
	msg := NewPayload(env.GetKind())
	if msg == nil {
		return nil, nil
	}
	if err := proto.Unmarshal(env.GetPayload(), msg); err != nil {
		return nil, fmt.Errorf("event %s: %w", env.GetKind(), err)
	}
	return msg, nil
}
