package chat

import (
	"fmt"
	"slices"
	"time"
)

// Status is the delivery status of a message.
type Status string

const (
	Sending   Status = "sending"
	Sent      Status = "sent"
	Delivered Status = "delivered"
	Read      Status = "read"
)

// Status only moves forward, one step at a time.
var statusTransitions = map[Status][]Status{
	Sending:   {Sent},
	Sent:      {Delivered},
	Delivered: {Read},
	Read:      {},
}

// CheckTransition returns an error unless from→to is a forward step.
func CheckTransition(from, to Status) error {
	if !slices.Contains(statusTransitions[from], to) {
		return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, from, to)
	}
	return nil
}

// Message is one entry of a transcript.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	FromMe    bool      `json:"fromMe"`
	Status    Status    `json:"status"`
}
