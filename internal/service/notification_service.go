package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/webhook"
)

// NotificationService fans domain events out to the outbound webhook queue and the email stub.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  webhook.Publisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. publisher may be nil when no webhook is configured.
func NewNotificationService(dispatcher events.Dispatcher, publisher webhook.Publisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger.Named("notifications"),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventHelpRequestCreated,
		events.EventHelpRequestStatusChanged,
		events.EventHelpResponseAdded,
		events.EventHelpResponseAccepted,
		events.EventAnnouncementPublished,
	} {
		n.dispatcher.Subscribe(t, n.forwardToWebhook)
	}
	n.dispatcher.Subscribe(events.EventHelpResponseAdded, n.handleHelpResponseAdded)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
}

func (n *NotificationService) forwardToWebhook(ctx context.Context, event events.Event) error {
	if n.publisher == nil || strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return nil
	}
	return n.publisher.Publish(ctx, webhook.Event{
		ID:         event.ID,
		Type:       string(event.Type),
		SubjectID:  event.SubjectID,
		ActorID:    event.ActorID,
		OccurredAt: event.Timestamp,
		Data:       event.Payload,
	})
}

func (n *NotificationService) handleHelpResponseAdded(ctx context.Context, event events.Event) error {
	n.sendEmailNotificationStub(ctx, event, "requester")
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	n.sendEmailNotificationStub(ctx, event, "account owner")
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, recipient string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("email notification stub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("recipient", recipient),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
