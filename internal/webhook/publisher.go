package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const queueKey = "community:webhook_events"

// Event is the JSON document delivered to the configured webhook URL.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SubjectID  string    `json:"subject_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// Publisher enqueues events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher pushes events onto a Redis list drained by Worker.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish serializes the event and LPUSHes it onto the queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal webhook event: %w", err)
	}
	if err := p.client.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue webhook event: %w", err)
	}
	return nil
}
