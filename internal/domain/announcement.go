package domain

import "time"

// AnnouncementPriority ranks community announcements.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "low"
	AnnouncementPriorityMedium AnnouncementPriority = "medium"
	AnnouncementPriorityHigh   AnnouncementPriority = "high"
	AnnouncementPriorityUrgent AnnouncementPriority = "urgent"
)

func (p AnnouncementPriority) Valid() bool {
	switch p {
	case AnnouncementPriorityLow, AnnouncementPriorityMedium, AnnouncementPriorityHigh, AnnouncementPriorityUrgent:
		return true
	}
	return false
}

// Announcement is a staff-authored notice shown to the whole community.
type Announcement struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	Priority  AnnouncementPriority
	IsActive  bool
	IsPinned  bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserSummary
}

// VisibleAt reports whether the announcement should be shown publicly at t.
func (a *Announcement) VisibleAt(t time.Time) bool {
	return a.IsActive && (a.ExpiresAt == nil || a.ExpiresAt.After(t))
}
