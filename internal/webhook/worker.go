package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SignatureHeader = "X-Webhook-Signature"
	EventTypeHeader = "X-Webhook-Event"

	popTimeout = 5 * time.Second
)

// WorkerConfig tunes delivery.
type WorkerConfig struct {
	URL        string
	Secret     string
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}

// DeliveryRecorder observes the final outcome of each queued event.
type DeliveryRecorder interface {
	RecordWebhookDelivery(outcome string)
}

// Worker drains the Redis queue and POSTs each event to the webhook URL.
type Worker struct {
	client     *redis.Client
	logger     *zap.Logger
	cfg        WorkerConfig
	httpClient *http.Client
	recorder   DeliveryRecorder
	sleep      func(context.Context, time.Duration) error
}

func NewWorker(client *redis.Client, logger *zap.Logger, cfg WorkerConfig) *Worker {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Worker{
		client:     client,
		logger:     logger.Named("webhook"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sleep:      sleepCtx,
	}
}

// WithRecorder attaches a delivery outcome recorder.
func (w *Worker) WithRecorder(r DeliveryRecorder) *Worker {
	w.recorder = r
	return w
}

func (w *Worker) record(outcome string) {
	if w.recorder != nil {
		w.recorder.RecordWebhookDelivery(outcome)
	}
}

// Run blocks until ctx is cancelled, delivering queued events one at a time.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("webhook worker started", zap.String("url", w.cfg.URL))
	defer w.logger.Info("webhook worker stopped")

	for {
		if ctx.Err() != nil {
			return
		}
		result, err := w.client.BRPop(ctx, popTimeout, queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			w.logger.Error("pop webhook event", zap.Error(err))
			if w.sleep(ctx, popTimeout) != nil {
				return
			}
			continue
		}
		// result[0] is the key, result[1] the payload
		w.process(ctx, result[1])
	}
}

func (w *Worker) process(ctx context.Context, payload string) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.Error("discarding malformed webhook event", zap.Error(err))
		return
	}
	log := w.logger.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	if w.cfg.URL == "" {
		log.Warn("webhook url not configured, dropping event")
		return
	}

	if err := w.deliver(ctx, event.Type, payload); err != nil {
		log.Error("webhook delivery failed", zap.Int("attempts", w.cfg.MaxRetries), zap.Error(err))
		w.record("failed")
		return
	}
	w.record("delivered")
	log.Info("webhook delivered")
}

// deliver POSTs payload, retrying with exponential backoff until a 2xx or the retry budget runs out.
func (w *Worker) deliver(ctx context.Context, eventType, payload string) error {
	delay := w.cfg.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= w.cfg.MaxRetries; attempt++ {
		lastErr = w.attempt(ctx, eventType, payload)
		if lastErr == nil {
			return nil
		}
		if attempt == w.cfg.MaxRetries {
			break
		}
		w.logger.Warn("webhook attempt failed",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(lastErr))
		if err := w.sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
	}
	return lastErr
}

func (w *Worker) attempt(ctx context.Context, eventType, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewBufferString(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventTypeHeader, eventType)
	if w.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of payload keyed by secret.
func Sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
