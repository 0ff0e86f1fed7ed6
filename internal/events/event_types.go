package events

import (
	"time"

	"github.com/digital-house/community-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventHelpRequestCreated       EventType = "help_request_created"
	EventHelpRequestStatusChanged EventType = "help_request_status_changed"
	EventHelpResponseAdded        EventType = "help_response_added"
	EventHelpResponseAccepted     EventType = "help_response_accepted"
	EventAnnouncementPublished    EventType = "announcement_published"
	EventPasswordResetRequested   EventType = "password_reset_requested"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// HelpRequestCreatedPayload payload.
type HelpRequestCreatedPayload struct {
	Title        string                 `json:"title"`
	Type         domain.HelpRequestType `json:"type"`
	UrgencyLevel int                    `json:"urgency_level"`
	Location     *string                `json:"location,omitempty"`
	Emergency    bool                   `json:"emergency"`
}

// HelpRequestStatusChangedPayload payload.
type HelpRequestStatusChangedPayload struct {
	OldStatus domain.HelpRequestStatus `json:"old_status"`
	NewStatus domain.HelpRequestStatus `json:"new_status"`
}

// HelpResponseAddedPayload payload.
type HelpResponseAddedPayload struct {
	ResponseID     string `json:"response_id"`
	ResponderID    string `json:"responder_id"`
	MessagePreview string `json:"message_preview"`
}

// HelpResponseAcceptedPayload payload.
type HelpResponseAcceptedPayload struct {
	ResponseID  string `json:"response_id"`
	ResponderID string `json:"responder_id"`
}

// AnnouncementPublishedPayload payload.
type AnnouncementPublishedPayload struct {
	Title    string                      `json:"title"`
	Priority domain.AnnouncementPriority `json:"priority"`
	Pinned   bool                        `json:"pinned"`
}

// PasswordResetRequestedPayload carries what the mailer needs. The token itself never
// leaves the process through logs or webhooks.
type PasswordResetRequestedPayload struct {
	Email     string    `json:"-"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
