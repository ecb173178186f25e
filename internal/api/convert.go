package api

import (
	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/kv"
	"github.com/matheus3301/baatchit/internal/notify"
	"github.com/matheus3301/baatchit/internal/posts"
	"github.com/matheus3301/baatchit/internal/profile"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/theme"
	"github.com/matheus3301/baatchit/internal/transcript"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func chatToProto(c chat.Summary) *baatchitv1.Chat {
	return &baatchitv1.Chat{
		Id:           c.ID,
		Name:         c.Name,
		LastMessage:  c.LastMessage,
		Timestamp:    c.Timestamp,
		Avatar:       c.Avatar,
		UnreadCount:  int32(c.UnreadCount),
		IsFavorite:   c.IsFavorite,
		MessageCount: int32(len(c.Messages)),
	}
}

func messageToProto(m chat.Message) *baatchitv1.Message {
	return &baatchitv1.Message{
		Id:        m.ID,
		Text:      m.Text,
		CreatedAt: timestamppb.New(m.CreatedAt),
		FromMe:    m.FromMe,
		Status:    string(m.Status),
	}
}

func transcriptToProto(v transcript.View) *baatchitv1.Transcript {
	out := &baatchitv1.Transcript{
		Chat:       chatToProto(v.Chat),
		Messages:   make([]*baatchitv1.Message, 0, len(v.Messages)),
		Typing:     v.Typing,
		Foreground: v.Foreground,
	}
	for _, m := range v.Messages {
		out.Messages = append(out.Messages, messageToProto(m))
	}
	out.Chat.MessageCount = int32(len(out.Messages))
	return out
}

func themeToProto(s theme.State) *baatchitv1.ThemeState {
	return &baatchitv1.ThemeState{Mode: string(s.Mode), IsSystemDerived: s.IsSystemDerived}
}

func settingsToProto(s settings.Settings) *baatchitv1.Settings {
	return &baatchitv1.Settings{
		NotificationsEnabled: s.NotificationsEnabled,
		SoundEnabled:         s.SoundEnabled,
		Language:             s.Language,
		FontSize:             string(s.FontSize),
		ChatBackgroundColor:  s.ChatBackgroundColor,
	}
}

// patchFromProto maps the wrapper fields of req onto a settings patch. An
// unset wrapper leaves the setting alone.
func patchFromProto(req *baatchitv1.UpdateSettingsRequest) settings.Patch {
	return settings.Patch{
		NotificationsEnabled: boolPtr(req.GetNotificationsEnabled()),
		SoundEnabled:         boolPtr(req.GetSoundEnabled()),
		Language:             stringPtr(req.GetLanguage()),
		FontSize:             stringPtr(req.GetFontSize()),
		ChatBackgroundColor:  stringPtr(req.GetChatBackgroundColor()),
	}
}

func boolPtr(v *wrapperspb.BoolValue) *bool {
	if v == nil {
		return nil
	}
	b := v.GetValue()
	return &b
}

func stringPtr(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	s := v.GetValue()
	return &s
}

func profileToProto(p profile.Profile) *baatchitv1.Profile {
	return &baatchitv1.Profile{Name: p.Name, Email: p.Email, Phone: p.Phone, Status: p.Status, Bio: p.Bio}
}

func profileFromProto(p *baatchitv1.Profile) profile.Profile {
	return profile.Profile{
		Name:   p.GetName(),
		Email:  p.GetEmail(),
		Phone:  p.GetPhone(),
		Status: p.GetStatus(),
		Bio:    p.GetBio(),
	}
}

func notificationToProto(n notify.Notification) *baatchitv1.Notification {
	return &baatchitv1.Notification{
		Id:        n.ID,
		Channel:   n.Channel,
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		ImageUrl:  n.ImageURL,
		Sound:     n.Sound,
		CreatedAt: timestamppb.New(n.CreatedAt),
	}
}

func scheduledToProto(s notify.Scheduled) *baatchitv1.ScheduledNotification {
	return &baatchitv1.ScheduledNotification{Id: s.ID, Title: s.Title, Body: s.Body, At: timestamppb.New(s.At)}
}

func postToProto(p posts.Post) *baatchitv1.Post {
	out := &baatchitv1.Post{Id: int32(p.ID), Title: p.Title, Body: p.Body, UserId: int32(p.UserID)}
	if u := p.User; u != nil {
		out.User = &baatchitv1.User{
			Id:          int32(u.ID),
			Name:        u.Name,
			Username:    u.Username,
			Email:       u.Email,
			Phone:       u.Phone,
			Website:     u.Website,
			City:        u.Address.City,
			Company:     u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
		}
	}
	return out
}

// eventPayload converts a bus payload into the message clients decode for
// evt.Kind. Events without a matching message carry no payload.
func eventPayload(evt bus.Event) proto.Message {
	switch p := evt.Payload.(type) {
	case status.StatusChange:
		return &baatchitv1.StatusChanged{From: string(p.From), To: string(p.To)}
	case theme.State:
		return themeToProto(p)
	case chat.FavoriteChange:
		return &baatchitv1.FavoriteChanged{ChatId: p.ChatID, IsFavorite: p.IsFavorite, Favorites: p.Favorites}
	case transcript.MessageEvent:
		return &baatchitv1.MessageAdded{ChatId: p.ChatID, Message: messageToProto(p.Message), Foreground: p.Foreground}
	case transcript.StatusEvent:
		return &baatchitv1.MessageStatusChanged{ChatId: p.ChatID, MessageId: p.MessageID, Status: string(p.Status)}
	case transcript.TypingEvent:
		return &baatchitv1.TypingChanged{ChatId: p.ChatID, Typing: p.Typing}
	case notify.Notification:
		return notificationToProto(p)
	case settings.Settings:
		return settingsToProto(p)
	case profile.Profile:
		return profileToProto(p)
	case kv.PersistResult:
		return &baatchitv1.PersistResult{Key: p.Key, Error: p.Err}
	case posts.Result:
		return &baatchitv1.PostsLoaded{Count: int32(len(p.Posts)), Source: string(p.Source)}
	case int:
		if evt.Kind == bus.KindBadgeChanged {
			return &baatchitv1.Badge{Count: int32(p)}
		}
	case string:
		switch evt.Kind {
		case bus.KindChatUpdated, bus.KindTranscriptEnd:
			return &baatchitv1.ChatRef{ChatId: p}
		}
	}
	return nil
}
