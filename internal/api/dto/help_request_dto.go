package dto

import (
	"time"

	"github.com/digital-house/community-service/internal/domain"
)

// CreateHelpRequestRequest payload for POST /help-requests.
type CreateHelpRequestRequest struct {
	Title        string                 `json:"title" validate:"required"`
	Description  string                 `json:"description" validate:"required"`
	Type         domain.HelpRequestType `json:"type" validate:"required,oneof=medical travel safety other"`
	Location     *string                `json:"location"`
	UrgencyLevel *int                   `json:"urgencyLevel" validate:"omitempty,min=1,max=5"`
}

// EmergencyHelpRequestRequest payload for POST /help-requests/emergency. Urgency is server-set.
type EmergencyHelpRequestRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description" validate:"required"`
	Type        domain.HelpRequestType `json:"type" validate:"omitempty,oneof=medical travel safety other"`
	Location    *string                `json:"location"`
}

// RespondToHelpRequestRequest payload for POST /help-requests/:id/respond.
type RespondToHelpRequestRequest struct {
	Message string `json:"message" validate:"required"`
}

// HelpRequestResponse is a help request as shown on the board.
type HelpRequestResponse struct {
	ID           string                   `json:"id"`
	RequesterID  string                   `json:"requesterId"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Type         domain.HelpRequestType   `json:"type"`
	Location     *string                  `json:"location"`
	UrgencyLevel int                      `json:"urgencyLevel"`
	Status       domain.HelpRequestStatus `json:"status"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
	Requester    *UserSummaryResponse     `json:"requester,omitempty"`
}

// HelpResponseResponse represents one offer of help.
type HelpResponseResponse struct {
	ID            string               `json:"id"`
	HelpRequestID string               `json:"helpRequestId"`
	ResponderID   string               `json:"responderId"`
	Message       string               `json:"message"`
	IsAccepted    bool                 `json:"isAccepted"`
	CreatedAt     time.Time            `json:"createdAt"`
	Responder     *UserSummaryResponse `json:"responder,omitempty"`
}

// HelpRequestDetailResponse provides a request with its responses.
type HelpRequestDetailResponse struct {
	HelpRequestResponse
	Responses []HelpResponseResponse `json:"responses"`
}
