package transcript

import (
	"time"

	"github.com/matheus3301/baatchit/internal/chat"
)

// CannedReplies are the simulated peer's answers.
var CannedReplies = []string{
	"Yes, absolutely! Looking forward to it.",
	"Of course! See you then.",
	"Sure thing! Can't wait.",
}

// seedHistory is the conversation every opened chat starts with.
func seedHistory(now time.Time) []chat.Message {
	return []chat.Message{
		{ID: "seed-1", Text: "Hey there! How are you doing?", CreatedAt: now.Add(-3600 * time.Second), Status: chat.Read},
		{ID: "seed-2", Text: "I'm doing great, thanks for asking! What about you?", CreatedAt: now.Add(-3500 * time.Second), FromMe: true, Status: chat.Read},
		{ID: "seed-3", Text: "That's wonderful to hear! I'm doing well too.", CreatedAt: now.Add(-3400 * time.Second), Status: chat.Read},
		{ID: "seed-4", Text: "Are we still on for our meeting tomorrow?", CreatedAt: now.Add(-3300 * time.Second), FromMe: true, Status: chat.Delivered},
	}
}
