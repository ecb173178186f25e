package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/session"
	"github.com/matheus3301/baatchit/internal/tui/client"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func cmdStatus(ctx context.Context, c *client.Client, out *output) error {
	resp, err := c.App.GetStatus(ctx, &baatchitv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	favs := strings.Join(resp.Favorites, ", ")
	if favs == "" {
		favs = mutedStyle.Render("none")
	}
	printFields(
		field("Session", resp.Session),
		field("Status", statusText(resp.Status)),
		field("PID", resp.Pid),
		field("Uptime", (time.Duration(resp.UptimeMs)*time.Millisecond).Round(time.Second)),
		field("Theme", resp.Theme),
		field("Chats", fmt.Sprintf("%d (%d unread)", resp.ChatCount, resp.UnreadCount)),
		field("Badge", resp.Badge),
		field("Favorites", favs),
	)
	return nil
}

func cmdTheme(ctx context.Context, c *client.Client, out *output, sub string) error {
	var (
		resp *baatchitv1.ThemeState
		err  error
	)
	switch sub {
	case "", "get":
		resp, err = c.Theme.GetTheme(ctx, &baatchitv1.GetThemeRequest{})
	case "toggle":
		resp, err = c.Theme.ToggleTheme(ctx, &baatchitv1.ToggleThemeRequest{})
	case "light", "dark":
		resp, err = c.Theme.SetTheme(ctx, &baatchitv1.SetThemeRequest{Mode: sub})
	default:
		return usageError("theme [get|toggle|light|dark]")
	}
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	source := "saved"
	if resp.IsSystemDerived {
		source = "default"
	}
	printFields(field("Theme", resp.Mode+" "+mutedStyle.Render("("+source+")")))
	return nil
}

func cmdChats(ctx context.Context, c *client.Client, out *output, favoritesOnly bool) error {
	resp, err := c.Chat.ListChats(ctx, &baatchitv1.ListChatsRequest{FavoritesOnly: favoritesOnly})
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	if len(resp.Chats) == 0 {
		fmt.Println(mutedStyle.Render("No chats."))
		return nil
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-4s %-20s %-7s %-10s %s", "ID", "NAME", "UNREAD", "TIME", "LAST MESSAGE")))
	for _, ch := range resp.Chats {
		star := " "
		if ch.IsFavorite {
			star = accentStyle.Render("★")
		}
		unread := ""
		if ch.UnreadCount > 0 {
			unread = strconv.Itoa(int(ch.UnreadCount))
		}
		fmt.Printf("%s %-4s %-20s %-7s %-10s %s\n", star, ch.Id, truncate(ch.Name, 20), unread,
			truncate(ch.Timestamp, 10), mutedStyle.Render(truncate(ch.LastMessage, 40)))
	}
	return nil
}

func cmdFav(ctx context.Context, c *client.Client, out *output, chatID string) error {
	resp, err := c.Chat.ToggleFavorite(ctx, &baatchitv1.ToggleFavoriteRequest{ChatId: chatID})
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	if resp.IsFavorite {
		fmt.Printf("%s chat %s added to favorites\n", accentStyle.Render("★"), chatID)
	} else {
		fmt.Printf("chat %s removed from favorites\n", chatID)
	}
	return nil
}

// cmdSend opens the chat, sends and moves it to the background so the
// simulated reply surfaces as a notification.
func cmdSend(ctx context.Context, c *client.Client, out *output, chatID string, words []string) error {
	if _, err := c.Chat.OpenChat(ctx, &baatchitv1.OpenChatRequest{ChatId: chatID}); err != nil {
		return err
	}
	resp, err := c.Chat.SendText(ctx, &baatchitv1.SendTextRequest{ChatId: chatID, Text: strings.Join(words, " ")})
	if err != nil {
		return err
	}
	if _, err := c.Chat.BlurChat(ctx, &baatchitv1.BlurChatRequest{ChatId: chatID}); err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	printFields(
		field("Message", resp.GetMessage().GetId()),
		field("Text", resp.GetMessage().GetText()),
		field("Status", messageStatus(resp.GetMessage().GetStatus())),
	)
	return nil
}

func cmdPosts(ctx context.Context, c *client.Client, out *output, refresh bool) error {
	resp, err := c.Posts.ListPosts(ctx, &baatchitv1.ListPostsRequest{Refresh: refresh})
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	if resp.Source == "fallback" {
		fmt.Println(warnStyle.Render("remote feed unreachable, showing fallback posts"))
	}
	for _, p := range resp.Posts {
		author := "unknown"
		if p.User != nil {
			author = p.User.Name + " " + mutedStyle.Render("@"+p.User.Username)
		}
		fmt.Printf("%s  %s\n  %s\n\n", titleStyle.Render(fmt.Sprintf("#%d", p.Id)), author, truncate(p.Title, 72))
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d posts (%s)", len(resp.Posts), resp.Source)))
	return nil
}

func cmdSettings(ctx context.Context, c *client.Client, out *output, args []string) error {
	sub := "get"
	if len(args) > 0 {
		sub = args[0]
	}
	var (
		resp *baatchitv1.Settings
		err  error
	)
	switch sub {
	case "get":
		resp, err = c.Settings.GetSettings(ctx, &baatchitv1.GetSettingsRequest{})
	case "reset":
		resp, err = c.Settings.ResetSettings(ctx, &baatchitv1.ResetSettingsRequest{})
	case "set":
		var patch *baatchitv1.UpdateSettingsRequest
		patch, err = settingsPatch(args[1:])
		if err != nil {
			return err
		}
		resp, err = c.Settings.UpdateSettings(ctx, patch)
	default:
		return usageError("settings [get|set k=v...|reset]")
	}
	if err != nil {
		return err
	}
	if out.emit(resp) {
		return nil
	}
	printFields(
		field("Notify", onOff(resp.NotificationsEnabled)),
		field("Sound", onOff(resp.SoundEnabled)),
		field("Language", resp.Language),
		field("Font size", resp.FontSize),
		field("Background", resp.ChatBackgroundColor),
	)
	return nil
}

func cmdProfile(ctx context.Context, c *client.Client, out *output, args []string) error {
	sub := "get"
	if len(args) > 0 {
		sub = args[0]
	}
	p, err := c.Profile.GetProfile(ctx, &baatchitv1.GetProfileRequest{})
	if err != nil {
		return err
	}
	switch sub {
	case "get":
	case "set":
		next, err := applyProfile(p, args[1:])
		if err != nil {
			return err
		}
		resp, err := c.Profile.UpdateProfile(ctx, &baatchitv1.UpdateProfileRequest{Profile: next})
		if err != nil {
			return err
		}
		if len(resp.FieldErrors) > 0 {
			out.emit(resp)
			return fieldErrors(resp.FieldErrors)
		}
		p = resp.GetProfile()
	default:
		return usageError("profile [get|set k=v...]")
	}
	if out.emit(p) {
		return nil
	}
	printFields(
		field("Name", p.Name),
		field("Email", p.Email),
		field("Phone", p.Phone),
		field("Status", p.Status),
		field("Bio", p.Bio),
	)
	return nil
}

func cmdNotify(ctx context.Context, c *client.Client, out *output, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "list":
		resp, err := c.Notifications.ListNotifications(ctx, &baatchitv1.ListNotificationsRequest{})
		if err != nil {
			return err
		}
		if out.emit(resp) {
			return nil
		}
		printFields(
			field("Permission", onOff(resp.HasPermission)),
			field("Badge", resp.Badge),
			field("Scheduled", len(resp.Scheduled)),
		)
		for _, n := range resp.Notifications {
			fmt.Printf("%s %s %s\n", mutedStyle.Render(n.GetCreatedAt().AsTime().Local().Format("15:04:05")),
				titleStyle.Render(n.Title), n.Body)
		}
		return nil
	case "badge":
		var (
			resp *baatchitv1.Badge
			err  error
		)
		if len(args) > 1 {
			n, convErr := strconv.ParseInt(args[1], 10, 32)
			if convErr != nil {
				return usageError("notify badge [n]")
			}
			resp, err = c.Notifications.SetBadge(ctx, &baatchitv1.SetBadgeRequest{Count: int32(n)})
		} else {
			resp, err = c.Notifications.GetBadge(ctx, &baatchitv1.GetBadgeRequest{})
		}
		if err != nil {
			return err
		}
		if !out.emit(resp) {
			printFields(field("Badge", resp.Count))
		}
		return nil
	case "test":
		resp, err := c.Notifications.ShowNotification(ctx, &baatchitv1.ShowNotificationRequest{
			Title: "Baatchit",
			Body:  "Test notification",
			Data:  map[string]string{"type": "test"},
		})
		if err != nil {
			return err
		}
		if out.emit(resp) {
			return nil
		}
		if !resp.Shown {
			fmt.Println(warnStyle.Render("notification suppressed (disabled or no permission)"))
			return nil
		}
		fmt.Println(okStyle.Render("notification shown: ") + resp.GetNotification().GetId())
		return nil
	case "schedule":
		if len(args) < 3 {
			return usageError("notify schedule <delay> <text>")
		}
		delay, err := time.ParseDuration(args[1])
		if err != nil || delay <= 0 {
			return usageError("notify schedule <delay> <text>")
		}
		resp, err := c.Notifications.ScheduleNotification(ctx, &baatchitv1.ScheduleNotificationRequest{
			Title: "Reminder",
			Body:  strings.Join(args[2:], " "),
			At:    timestamppb.New(time.Now().Add(delay)),
		})
		if err != nil {
			return err
		}
		if !out.emit(resp) {
			printFields(field("Scheduled", resp.GetId()), field("At", resp.GetAt().AsTime().Local().Format(time.Kitchen)))
		}
		return nil
	case "cancel":
		_, err := c.Notifications.CancelAllNotifications(ctx, &baatchitv1.CancelAllNotificationsRequest{})
		return err
	default:
		return usageError("notify [list|badge [n]|test|schedule <delay> <text>|cancel]")
	}
}

func cmdEvents(ctx context.Context, c *client.Client, out *output, prefixes []string) error {
	stream, err := c.App.WatchEvents(ctx, &baatchitv1.WatchEventsRequest{Prefixes: prefixes})
	if err != nil {
		return err
	}
	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		payload := eventJSON(evt)
		if out.emit(eventLine{
			ID:         evt.EventId,
			Session:    evt.Session,
			Kind:       evt.Kind,
			OccurredAt: time.UnixMilli(evt.OccurredAtUnixMs),
			Payload:    payload,
		}) {
			continue
		}
		fmt.Printf("%s %s %s\n", mutedStyle.Render(time.UnixMilli(evt.OccurredAtUnixMs).Local().Format("15:04:05.000")),
			titleStyle.Render(evt.Kind), string(payload))
	}
}

// eventLine is the --json shape of one streamed event, with the payload
// decoded rather than left as protobuf bytes.
type eventLine struct {
	ID         string          `json:"id"`
	Session    string          `json:"session"`
	Kind       string          `json:"kind"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func eventJSON(evt *baatchitv1.EventEnvelope) json.RawMessage {
	msg, err := client.Decode(evt)
	if err != nil || msg == nil {
		return json.RawMessage("null")
	}
	b, err := protojson.Marshal(msg)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

func cmdSessions(jsonOut bool) {
	sessions, err := session.List()
	if err != nil {
		fatal(err)
	}
	out := &output{json: jsonOut}
	if out.emit(sessions) {
		return
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return
	}
	for _, s := range sessions {
		running := mutedStyle.Render("stopped")
		if s.Running {
			running = okStyle.Render("running")
		}
		fmt.Printf("%-20s %s (%s)\n", s.Name, s.Path, running)
	}
}
