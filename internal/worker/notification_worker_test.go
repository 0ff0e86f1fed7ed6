package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/service"
	webhookmocks "github.com/digital-house/community-service/internal/webhook/mocks"
)

type blockingRunner struct{ stopped atomic.Bool }

func (r *blockingRunner) Run(ctx context.Context) {
	<-ctx.Done()
	r.stopped.Store(true)
}

func TestNotificationWorkerLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := webhookmocks.NewMockPublisher(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, publisher, zap.NewNop(), config.NotificationConfig{WebhookURL: "https://hooks.example.com"})

	runner := &blockingRunner{}
	w := NewNotificationWorker(notifications, runner, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventHelpRequestCreated}))

	cancel()
	done := make(chan struct{})
	go func() {
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, runner.stopped.Load())
}

func TestNotificationWorkerWithoutDelivery(t *testing.T) {
	w := NewNotificationWorker(nil, nil, zap.NewNop())
	w.Start(context.Background())
	w.Wait()
}
