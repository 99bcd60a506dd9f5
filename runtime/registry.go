//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
package runtime

import (
	"fmt"
	"log/slog"
	"notification-lab/domain/notification"
	"notification-lab/errors"
	"notification-lab/repositories"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IRegistry interface {
	AddUser(name string) error
	RemoveUser(name string) error
	Subscribe(name string) error
	Unsubscribe(name string) error
	PostMessage(text string) (notification.PostReport, error)
	GetInbox(name string) ([]string, error)
	ListUsers() []notification.UserView
	ChannelLog(cursor *string) ([]notification.ChannelEntry, *string, error)
}

// Registry owns the known users, the subscribed subset and the channel log.
// Every mutation runs under a single lock so ListUsers and GetInbox never
// observe a half-applied post.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	users       map[string]*notification.User
	order       []string // names in AddUser order
	subscribers []string // names in Subscribe order
	channel     repositories.IChannelRepository
	now         func() time.Time
}

func NewRegistry(log *slog.Logger, channel repositories.IChannelRepository) *Registry {
	return &Registry{
		log:     log,
		users:   make(map[string]*notification.User),
		channel: channel,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// AddUser registers a new unsubscribed user with an empty inbox.
// Names are matched exactly; blank names are rejected.
func (r *Registry) AddUser(name string) error {
	if err := ValidateAddUser(name); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDuplicateOrInvalidName, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[name]; exists {
		return errors.ErrDuplicateOrInvalidName
	}
	r.users[name] = notification.NewUser(name)
	r.order = append(r.order, name)
	r.log.Debug("User added", "name", name)
	return nil
}

// RemoveUser discards the user together with its subscription and inbox.
func (r *Registry) RemoveUser(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[name]; !exists {
		return errors.ErrUserNotFound
	}
	delete(r.users, name)
	r.order = lo.Without(r.order, name)
	r.subscribers = lo.Without(r.subscribers, name)
	r.log.Debug("User removed", "name", name)
	return nil
}

func (r *Registry) Subscribe(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[name]
	if !exists {
		return errors.ErrUserNotFound
	}
	if user.Subscribed {
		return errors.ErrAlreadySubscribed
	}
	user.Subscribed = true
	r.subscribers = append(r.subscribers, name)
	r.log.Debug("User subscribed", "name", name)
	return nil
}

// Unsubscribe clears the flag only, already delivered messages stay in the inbox.
func (r *Registry) Unsubscribe(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[name]
	if !exists {
		return errors.ErrUserNotFound
	}
	if !user.Subscribed {
		return errors.ErrNotSubscribed
	}
	user.Subscribed = false
	r.subscribers = lo.Without(r.subscribers, name)
	r.log.Debug("User unsubscribed", "name", name)
	return nil
}

// PostMessage appends the trimmed text to the channel log, then copies it
// into the inbox of every user subscribed at this moment, in subscription order.
// When the channel log cannot be written no inbox is touched.
func (r *Registry) PostMessage(text string) (notification.PostReport, error) {
	if err := ValidatePostMessage(text); err != nil {
		return notification.PostReport{}, fmt.Errorf("%w: %v", errors.ErrEmptyMessage, err)
	}
	content := strings.TrimSpace(text)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := r.channel.StoreEntry(notification.ChannelEntry{
		ID:        uuid.New(),
		Content:   content,
		PostedAt:  r.now(),
		Delivered: len(r.subscribers),
	})
	if err != nil {
		return notification.PostReport{}, fmt.Errorf("channel append failed: %w", err)
	}

	for _, name := range r.subscribers {
		r.users[name].Deliver(content)
	}
	r.log.Debug("Message posted", "entry", entry.ID, "delivered", len(r.subscribers))
	return notification.PostReport{Entry: entry, DeliveredCount: len(r.subscribers)}, nil
}

// GetInbox returns a copy of the user's inbox in delivery order.
func (r *Registry) GetInbox(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[name]
	if !exists {
		return nil, errors.ErrUserNotFound
	}
	return append([]string{}, user.Inbox...), nil
}

// ListUsers returns every user in AddUser order.
func (r *Registry) ListUsers() []notification.UserView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.order, func(name string, _ int) notification.UserView {
		return r.users[name].View()
	})
}

func (r *Registry) ChannelLog(cursor *string) ([]notification.ChannelEntry, *string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.channel.GetEntries(cursor)
}
