package dto

import (
	"time"

	"github.com/digital-house/community-service/internal/domain"
)

// CreateAnnouncementRequest payload.
type CreateAnnouncementRequest struct {
	Title     string                      `json:"title" validate:"required,max=200"`
	Content   string                      `json:"content" validate:"required"`
	Priority  domain.AnnouncementPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	IsPinned  bool                        `json:"isPinned"`
	ExpiresAt *time.Time                  `json:"expiresAt"`
}

// UpdateAnnouncementRequest is a partial patch; omitted fields stay unchanged.
type UpdateAnnouncementRequest struct {
	Title     *string                      `json:"title" validate:"omitempty,min=1,max=200"`
	Content   *string                      `json:"content" validate:"omitempty,min=1"`
	Priority  *domain.AnnouncementPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	IsActive  *bool                        `json:"isActive"`
	IsPinned  *bool                        `json:"isPinned"`
	ExpiresAt *time.Time                   `json:"expiresAt"`
	// ClearExpiresAt removes the expiry; it cannot be combined with expiresAt.
	ClearExpiresAt bool `json:"clearExpiresAt" validate:"excluded_with=ExpiresAt"`
}

// AnnouncementResponse representation.
type AnnouncementResponse struct {
	ID        string                      `json:"id"`
	Title     string                      `json:"title"`
	Content   string                      `json:"content"`
	Priority  domain.AnnouncementPriority `json:"priority"`
	IsActive  bool                        `json:"isActive"`
	IsPinned  bool                        `json:"isPinned"`
	ExpiresAt *time.Time                  `json:"expiresAt"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
	Author    *UserSummaryResponse        `json:"author,omitempty"`
}
