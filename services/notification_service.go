package services

import (
	"context"
	"log/slog"
	"notification-lab/domain/notification"
	"notification-lab/moderation"
	"notification-lab/runtime"
	"notification-lab/search"
)

type INotificationService interface {
	AddUser(name string) error
	RemoveUser(name string) error
	Subscribe(name string) error
	Unsubscribe(name string) error
	PostMessage(text string) (notification.PostReport, error)
	GetInbox(name string) ([]string, error)
	ListUsers() []notification.UserView
	ChannelLog(cursor *string) ([]notification.ChannelEntry, *string, error)
	SearchChannel(ctx context.Context, input string) ([]search.Hit, error)
}

// NotificationService is the entry point of presentation layers.
// It moderates posts before they reach the registry and keeps the search
// index in step with the channel log.
type NotificationService struct {
	registry    runtime.IRegistry
	censor      moderation.ICensor
	index       search.IChannelIndex
	log         *slog.Logger
	searchLimit int
}

func NewNotificationService(
	log *slog.Logger,
	registry runtime.IRegistry,
	censor moderation.ICensor,
	index search.IChannelIndex,
	searchLimit int,
) *NotificationService {
	return &NotificationService{
		registry:    registry,
		censor:      censor,
		index:       index,
		log:         log,
		searchLimit: searchLimit,
	}
}

func (s *NotificationService) AddUser(name string) error {
	return s.rejected("add user", name, s.registry.AddUser(name))
}

func (s *NotificationService) RemoveUser(name string) error {
	return s.rejected("remove user", name, s.registry.RemoveUser(name))
}

func (s *NotificationService) Subscribe(name string) error {
	return s.rejected("subscribe", name, s.registry.Subscribe(name))
}

func (s *NotificationService) Unsubscribe(name string) error {
	return s.rejected("unsubscribe", name, s.registry.Unsubscribe(name))
}

// PostMessage censors the text, posts it and indexes the resulting entry.
// An indexing failure is logged and never fails the post.
func (s *NotificationService) PostMessage(text string) (notification.PostReport, error) {
	content, words := s.censor.Censor(text)
	if len(words) > 0 {
		s.log.Info("Message censored", "words", words)
	}

	report, err := s.registry.PostMessage(content)
	if err != nil {
		return report, s.rejected("post message", "", err)
	}

	if err = s.index.Index(report.Entry); err != nil {
		s.log.Error("Channel entry not indexed", "entry", report.Entry.ID, "error", err)
	}
	return report, nil
}

func (s *NotificationService) GetInbox(name string) ([]string, error) {
	inbox, err := s.registry.GetInbox(name)
	return inbox, s.rejected("get inbox", name, err)
}

func (s *NotificationService) ListUsers() []notification.UserView {
	return s.registry.ListUsers()
}

func (s *NotificationService) ChannelLog(cursor *string) ([]notification.ChannelEntry, *string, error) {
	entries, next, err := s.registry.ChannelLog(cursor)
	if err != nil {
		s.log.Error("Channel log unreadable", "error", err)
	}
	return entries, next, err
}

func (s *NotificationService) SearchChannel(ctx context.Context, input string) ([]search.Hit, error) {
	hits, err := s.index.Search(ctx, search.ParseQuery(input, s.searchLimit))
	if err != nil {
		s.log.Error("Channel search failed", "input", input, "error", err)
	}
	return hits, err
}

func (s *NotificationService) rejected(operation, name string, err error) error {
	if err != nil {
		s.log.Debug("Operation rejected", "operation", operation, "name", name, "error", err)
	}
	return err
}
