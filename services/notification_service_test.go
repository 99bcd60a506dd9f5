package services

import (
	"context"
	"fmt"
	"log/slog"
	"notification-lab/domain/notification"
	"notification-lab/errors"
	"notification-lab/mocks"
	"notification-lab/moderation"
	"notification-lab/repositories"
	"notification-lab/runtime"
	"notification-lab/search"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, censoredWords ...string) *NotificationService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := repositories.OpenInMemory()
	require.NoError(t, err)
	channel, err := repositories.NewChannelRepository(db, log, nil)
	require.NoError(t, err)
	index, err := search.NewChannelIndex(log)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = index.Close()
		_ = channel.Close()
		_ = db.Close()
	})
	censor, err := moderation.NewCensor(censoredWords, '*')
	require.NoError(t, err)
	return NewNotificationService(log, runtime.NewRegistry(log, channel), censor, index, 10)
}

func TestNotificationService_Scenario(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)

	// Given alice subscribed and bob not
	req.NoError(svc.AddUser("alice"))
	req.NoError(svc.AddUser("bob"))
	req.NoError(svc.Subscribe("alice"))

	// When a message is posted
	report, err := svc.PostMessage("hello")

	// Then only alice receives it
	req.NoError(err)
	req.Equal(1, report.DeliveredCount)
	inbox, err := svc.GetInbox("alice")
	req.NoError(err)
	req.Equal([]string{"hello"}, inbox)
	inbox, err = svc.GetInbox("bob")
	req.NoError(err)
	req.Empty(inbox)

	// And the channel log and the search index know about it
	entries, next, err := svc.ChannelLog(nil)
	req.NoError(err)
	req.Nil(next)
	req.Len(entries, 1)
	req.Equal(report.Entry.ID, entries[0].ID)
	hits, err := svc.SearchChannel(context.Background(), "hello")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(report.Entry.ID, hits[0].ID)

	// When alice is removed
	req.NoError(svc.RemoveUser("alice"))
	_, err = svc.GetInbox("alice")
	req.ErrorIs(err, errors.ErrUserNotFound)
	req.Equal([]notification.UserView{{Name: "bob"}}, svc.ListUsers())
}

func TestNotificationService_PostMessage_Censors(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t, "badger")
	req.NoError(svc.AddUser("alice"))
	req.NoError(svc.Subscribe("alice"))

	report, err := svc.PostMessage("the badger is here")

	req.NoError(err)
	req.Equal("the ****** is here", report.Entry.Content)
	inbox, err := svc.GetInbox("alice")
	req.NoError(err)
	req.Equal([]string{"the ****** is here"}, inbox)
	hits, err := svc.SearchChannel(context.Background(), "badger")
	req.NoError(err)
	req.Empty(hits)
}

func TestNotificationService_FullyCensoredPost_IsDelivered(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t, "badger")
	req.NoError(svc.AddUser("alice"))
	req.NoError(svc.Subscribe("alice"))

	// When the whole post is a forbidden word
	report, err := svc.PostMessage("badger")

	// Then it is masked, not reported as empty
	req.NoError(err)
	req.Equal("******", report.Entry.Content)
	req.Equal(1, report.DeliveredCount)
}

func TestNotificationService_PostMessage_Rejections(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)

	_, err := svc.PostMessage("   ")
	req.ErrorIs(err, errors.ErrEmptyMessage)

	entries, _, err := svc.ChannelLog(nil)
	req.NoError(err)
	req.Empty(entries)
}

func TestNotificationService_PostMessage_IndexFailureDoesNotFailPost(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	index := mocks.NewMockIChannelIndex(ctrl)
	svc := NewNotificationService(log, registry, moderation.Nop{}, index, 10)

	expected := notification.PostReport{
		Entry:          notification.ChannelEntry{ID: uuid.New(), Content: "hi", Delivered: 2},
		DeliveredCount: 2,
	}
	// Given the registry accepts the post
	registry.EXPECT().PostMessage("hi").Return(expected, nil).Times(1)
	// Given the index is broken
	index.EXPECT().Index(expected.Entry).Return(fmt.Errorf("index closed")).Times(1)

	// When the message is posted
	report, err := svc.PostMessage("hi")

	// Then the post still succeeds
	req.NoError(err)
	req.Equal(expected, report)
}

func TestNotificationService_PostMessage_RegistryErrorSkipsIndex(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	index := mocks.NewMockIChannelIndex(ctrl)
	svc := NewNotificationService(log, registry, moderation.Nop{}, index, 10)

	registry.EXPECT().PostMessage("").Return(notification.PostReport{}, errors.ErrEmptyMessage).Times(1)
	index.EXPECT().Index(gomock.Any()).Times(0)

	_, err := svc.PostMessage("")

	req.ErrorIs(err, errors.ErrEmptyMessage)
}

func TestNotificationService_SearchChannel_UsesDefaultLimit(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	index := mocks.NewMockIChannelIndex(ctrl)
	svc := NewNotificationService(log, mocks.NewMockIRegistry(ctrl), moderation.Nop{}, index, 7)

	index.EXPECT().
		Search(gomock.Any(), search.Query{RawInput: "deploy", Terms: "deploy", Limit: 7}).
		Return([]search.Hit{{Content: "deploy"}}, nil).
		Times(1)

	hits, err := svc.SearchChannel(context.Background(), "deploy")

	req.NoError(err)
	req.Len(hits, 1)
}

func TestNotificationService_SubscriptionErrors(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)
	req.NoError(svc.AddUser("alice"))

	req.ErrorIs(svc.AddUser("alice"), errors.ErrDuplicateOrInvalidName)
	req.ErrorIs(svc.Subscribe("ghost"), errors.ErrUserNotFound)
	req.NoError(svc.Subscribe("alice"))
	req.ErrorIs(svc.Subscribe("alice"), errors.ErrAlreadySubscribed)
	req.NoError(svc.Unsubscribe("alice"))
	req.ErrorIs(svc.Unsubscribe("alice"), errors.ErrNotSubscribed)
	req.ErrorIs(svc.RemoveUser(""), errors.ErrUserNotFound)
}
