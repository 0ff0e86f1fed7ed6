package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/webhook"
	webhookmocks "github.com/digital-house/community-service/internal/webhook/mocks"
)

func TestNotificationServiceForwardsHelpDeskEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := webhookmocks.NewMockPublisher(ctrl)
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, publisher, zap.NewNop(), config.NotificationConfig{WebhookURL: "https://hooks.example.com"})
	svc.RegisterHandlers()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, "evt-1", e.ID)
			assert.Equal(t, string(events.EventHelpRequestCreated), e.Type)
			assert.Equal(t, "hr-1", e.SubjectID)
			assert.Equal(t, ts, e.OccurredAt)
			return nil
		}).
		Times(1)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID: "evt-1", Type: events.EventHelpRequestCreated, SubjectID: "hr-1", ActorID: "u-1", Timestamp: ts,
	})
	require.NoError(t, err)
}

func TestNotificationServiceNeverForwardsPasswordResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := webhookmocks.NewMockPublisher(ctrl)
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, publisher, zap.NewNop(), config.NotificationConfig{
		WebhookURL: "https://hooks.example.com",
		EmailFrom:  "noreply@example.com",
	})
	svc.RegisterHandlers()

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventPasswordResetRequested, SubjectID: "u-1"})
	require.NoError(t, err)
}

func TestNotificationServiceWithoutWebhookURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := webhookmocks.NewMockPublisher(ctrl)
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, publisher, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventHelpResponseAdded}))
}
