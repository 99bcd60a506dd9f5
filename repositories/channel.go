//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"notification-lab/domain/notification"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	channelPrefix = "channel:"
	sequenceKey   = "seq:channel"
	seqBandwidth  = 100
)

type IChannelRepository interface {
	StoreEntry(entry notification.ChannelEntry) (notification.ChannelEntry, error)
	GetEntries(cursor *string) ([]notification.ChannelEntry, *string, error)
}

type ChannelRepository struct {
	db            *badger.DB
	seq           *badger.Sequence
	log           *slog.Logger
	limitMessages *int
}

// NewChannelRepository leases a badger sequence used to order channel keys.
// Close must be called to release it. A nil or non-positive limit means unlimited pages.
func NewChannelRepository(db *badger.DB, log *slog.Logger, limitMessages *int) (*ChannelRepository, error) {
	if limitMessages != nil && *limitMessages <= 0 {
		limitMessages = nil
	}
	seq, err := db.GetSequence([]byte(sequenceKey), seqBandwidth)
	if err != nil {
		return nil, fmt.Errorf("channel sequence: %w", err)
	}
	return &ChannelRepository{db: db, seq: seq, log: log, limitMessages: limitMessages}, nil
}

// OpenInMemory opens a badger instance that never touches the disk.
// Channel history is lost when the process exits.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

type diskEntry struct {
	ID        string `json:"id"`
	Seq       uint64 `json:"seq"`
	Content   string `json:"content"`
	PostedAt  int64  `json:"posted_at"`
	Delivered int    `json:"delivered"`
}

// StoreEntry assigns the next sequence number to the entry and persists it.
// Keys are "channel:{seq_padded}" so a forward prefix scan yields posting order.
func (c *ChannelRepository) StoreEntry(entry notification.ChannelEntry) (notification.ChannelEntry, error) {
	seq, err := c.seq.Next()
	if err != nil {
		return notification.ChannelEntry{}, fmt.Errorf("next channel sequence: %w", err)
	}
	entry.Seq = seq

	bytes, err := json.Marshal(fromChannelEntry(entry))
	if err != nil {
		return notification.ChannelEntry{}, err
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(channelKey(seq), bytes)
	})
	if err != nil {
		return notification.ChannelEntry{}, err
	}
	return entry, nil
}

// GetEntries returns the channel log in posting order, starting after cursor.
// The returned cursor is nil once the end of the log has been reached.
func (c *ChannelRepository) GetEntries(cursor *string) ([]notification.ChannelEntry, *string, error) {
	var entries []notification.ChannelEntry
	var next *string
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(channelPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = []byte(channelPrefix + *cursor)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *cursor {
			it.Next()
		}

		var lastKey string
		for ; it.ValidForPrefix(prefix); it.Next() {
			if c.limitMessages != nil && len(entries) == *c.limitMessages {
				c.log.Debug(fmt.Sprintf("Maximum of %d channel entries reached", *c.limitMessages))
				next = &lastKey
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				var disk diskEntry
				if err := json.Unmarshal(value, &disk); err != nil {
					return err
				}
				entry, err := toChannelEntry(disk)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entries, next, nil
}

// Close releases the leased sequence range.
func (c *ChannelRepository) Close() error {
	return c.seq.Release()
}

func channelKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", channelPrefix, seq))
}

func fromChannelEntry(entry notification.ChannelEntry) diskEntry {
	return diskEntry{
		ID:        entry.ID.String(),
		Seq:       entry.Seq,
		Content:   entry.Content,
		PostedAt:  entry.PostedAt.UnixNano(),
		Delivered: entry.Delivered,
	}
}

func toChannelEntry(disk diskEntry) (notification.ChannelEntry, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return notification.ChannelEntry{}, err
	}
	return notification.ChannelEntry{
		ID:        parsedID,
		Seq:       disk.Seq,
		Content:   disk.Content,
		PostedAt:  time.Unix(0, disk.PostedAt).UTC(),
		Delivered: disk.Delivered,
	}, nil
}
