package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/service"
	"github.com/digital-house/community-service/internal/webhook"
)

// Runner is a long-lived background loop.
type Runner interface {
	Run(ctx context.Context)
}

// NotificationWorker subscribes the notification handlers and drives the webhook delivery loop.
type NotificationWorker struct {
	notifications *service.NotificationService
	delivery      Runner
	logger        *zap.Logger
	wg            sync.WaitGroup
}

// NewNotificationWorker builds the worker. delivery may be nil when no webhook URL is configured;
// events are then only handled in-process.
func NewNotificationWorker(notifications *service.NotificationService, delivery Runner, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, delivery: delivery, logger: logger.Named("worker")}
}

// Start registers handlers and launches the delivery loop. It returns immediately.
func (w *NotificationWorker) Start(ctx context.Context) {
	if w.notifications != nil {
		w.notifications.RegisterHandlers()
	}
	if w.delivery == nil {
		w.logger.Info("webhook delivery disabled")
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.delivery.Run(ctx)
	}()
}

// Wait blocks until the delivery loop has exited after ctx cancellation.
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

var _ Runner = (*webhook.Worker)(nil)
