package repositories

import (
	"log/slog"
	"notification-lab/domain/notification"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newEntry(content string, at time.Time) notification.ChannelEntry {
	return notification.ChannelEntry{ID: uuid.New(), Content: content, PostedAt: at}
}

func Test_Store_Entries_Keeps_Posting_Order(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository, err := NewChannelRepository(openTestDB(t), log, nil)
	req.NoError(err)
	defer repository.Close()

	// Given entries posted with identical timestamps
	at := time.Now().UTC()
	var stored []notification.ChannelEntry
	for _, content := range []string{"first", "second", "third"} {
		entry, err := repository.StoreEntry(newEntry(content, at))
		req.NoError(err)
		stored = append(stored, entry)
	}

	// When the whole log is read
	entries, next, err := repository.GetEntries(nil)

	// Then posting order is preserved and sequences increase
	req.NoError(err)
	req.Nil(next)
	req.Len(entries, 3)
	req.Equal([]string{"first", "second", "third"}, lo.Map(entries, func(e notification.ChannelEntry, _ int) string {
		return e.Content
	}))
	req.Less(entries[0].Seq, entries[1].Seq)
	req.Less(entries[1].Seq, entries[2].Seq)
	req.Equal(stored[0].ID, entries[0].ID)
	req.True(at.Equal(entries[0].PostedAt))
}

func Test_Get_Entries_Paginates_With_Limit(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository, err := NewChannelRepository(openTestDB(t), log, lo.ToPtr(2))
	req.NoError(err)
	defer repository.Close()

	at := time.Now().UTC()
	for _, content := range []string{"m1", "m2", "m3"} {
		_, err = repository.StoreEntry(newEntry(content, at))
		req.NoError(err)
	}

	page, cursor, err := repository.GetEntries(nil)
	req.NoError(err)
	req.Len(page, 2)
	req.NotNil(cursor)
	req.Equal("m1", page[0].Content)
	req.Equal("m2", page[1].Content)

	page, cursor, err = repository.GetEntries(cursor)
	req.NoError(err)
	req.Nil(cursor)
	req.Len(page, 1)
	req.Equal("m3", page[0].Content)
}

func Test_Get_Entries_On_Empty_Log(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository, err := NewChannelRepository(openTestDB(t), log, nil)
	req.NoError(err)
	defer repository.Close()

	entries, next, err := repository.GetEntries(nil)
	req.NoError(err)
	req.Nil(next)
	req.Empty(entries)
}

func Test_Get_Entries_With_Non_Positive_Limit_Returns_Everything(t *testing.T) {
	for _, limit := range []int{0, -3} {
		req := require.New(t)
		log := logs.GetLoggerFromLevel(slog.LevelDebug)
		repository, err := NewChannelRepository(openTestDB(t), log, lo.ToPtr(limit))
		req.NoError(err)

		// Given two stored entries
		at := time.Now().UTC()
		for _, content := range []string{"m1", "m2"} {
			_, err = repository.StoreEntry(newEntry(content, at))
			req.NoError(err)
		}

		// When reading the log
		page, cursor, err := repository.GetEntries(nil)

		// Then the whole log comes back in a single, final page
		req.NoError(err, "limit=%d", limit)
		req.Nil(cursor, "limit=%d", limit)
		req.Len(page, 2, "limit=%d", limit)
		req.NoError(repository.Close())
	}
}
