package notification

import (
	"time"

	"github.com/google/uuid"
)

// ChannelEntry is one message of the global channel log.
type ChannelEntry struct {
	ID        uuid.UUID
	Seq       uint64
	Content   string
	PostedAt  time.Time
	Delivered int
}

// PostReport tells how many subscribers received a posted message.
// Zero is a valid outcome.
type PostReport struct {
	Entry          ChannelEntry
	DeliveredCount int
}
