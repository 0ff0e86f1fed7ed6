package domain

import "time"

// HelpResponse is an offer of assistance on a help request. A member may respond
// to the same request any number of times.
type HelpResponse struct {
	ID            string
	HelpRequestID string
	ResponderID   string
	Message       string
	IsAccepted    bool
	CreatedAt     time.Time

	Responder *UserSummary
}
