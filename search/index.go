//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_channel_index.go -package=mocks
package search

import (
	"context"
	"fmt"
	"log/slog"
	"notification-lab/domain/notification"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	idField      = "_id"
	contentField = "content"
	seqField     = "seq"
)

type IChannelIndex interface {
	Index(entry notification.ChannelEntry) error
	Search(ctx context.Context, query Query) ([]Hit, error)
}

// Hit is a channel entry matching a query, best score first.
type Hit struct {
	ID      uuid.UUID
	Seq     uint64
	Content string
	Score   float64
}

// ChannelIndex is a full-text index over the channel log.
// It lives in memory only, like the log itself.
type ChannelIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewChannelIndex(log *slog.Logger) (*ChannelIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("open channel index: %w", err)
	}
	return &ChannelIndex{writer: writer, log: log}, nil
}

func (c *ChannelIndex) Index(entry notification.ChannelEntry) error {
	doc := bluge.NewDocument(entry.ID.String()).
		AddField(bluge.NewTextField(contentField, entry.Content).StoreValue()).
		AddField(bluge.NewNumericField(seqField, float64(entry.Seq)).StoreValue())
	return c.writer.Update(doc.ID(), doc)
}

// Search runs a match query on message content. Blank terms match nothing.
func (c *ChannelIndex) Search(ctx context.Context, query Query) ([]Hit, error) {
	if query.Terms == "" || query.Limit <= 0 {
		return nil, nil
	}
	reader, err := c.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("channel index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(query.Limit,
		bluge.NewMatchQuery(query.Terms).SetField(contentField))
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("channel search: %w", err)
	}

	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case idField:
				hit.ID, visitErr = uuid.Parse(string(value))
			case contentField:
				hit.Content = string(value)
			case seqField:
				var seq float64
				seq, visitErr = bluge.DecodeNumericFloat64(value)
				hit.Seq = uint64(seq)
			}
			return visitErr == nil
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	c.log.Debug("Channel searched", "terms", query.Terms, "hits", len(hits))
	return hits, nil
}

func (c *ChannelIndex) Close() error {
	return c.writer.Close()
}
