package domain

import "time"

// HelpRequestType classifies the kind of assistance needed.
type HelpRequestType string

const (
	HelpRequestTypeMedical HelpRequestType = "medical"
	HelpRequestTypeTravel  HelpRequestType = "travel"
	HelpRequestTypeSafety  HelpRequestType = "safety"
	HelpRequestTypeOther   HelpRequestType = "other"
)

// Valid reports whether t is one of the enumerated request types.
func (t HelpRequestType) Valid() bool {
	switch t {
	case HelpRequestTypeMedical, HelpRequestTypeTravel, HelpRequestTypeSafety, HelpRequestTypeOther:
		return true
	}
	return false
}

// HelpRequestStatus enumerates lifecycle states. Only active is produced on creation;
// resolved and closed are terminal.
type HelpRequestStatus string

const (
	HelpRequestStatusActive   HelpRequestStatus = "active"
	HelpRequestStatusResolved HelpRequestStatus = "resolved"
	HelpRequestStatusClosed   HelpRequestStatus = "closed"
)

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s HelpRequestStatus) CanTransitionTo(next HelpRequestStatus) bool {
	return s == HelpRequestStatusActive &&
		(next == HelpRequestStatusResolved || next == HelpRequestStatusClosed)
}

const (
	MinUrgencyLevel       = 1
	MaxUrgencyLevel       = 5
	DefaultUrgencyLevel   = MinUrgencyLevel
	EmergencyUrgencyLevel = 4
)

// ValidUrgency reports whether level is within the accepted range.
func ValidUrgency(level int) bool {
	return level >= MinUrgencyLevel && level <= MaxUrgencyLevel
}

// HelpRequest is a member's posted need for assistance.
type HelpRequest struct {
	ID           string
	RequesterID  string
	Title        string
	Description  string
	Type         HelpRequestType
	Location     *string
	UrgencyLevel int
	Status       HelpRequestStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Requester is populated by listing queries only.
	Requester *UserSummary
}
