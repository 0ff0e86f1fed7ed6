package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/repository"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// AnnouncementService manages staff announcements.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	now           func() time.Time
}

// AnnouncementInput carries create and patch fields; nil pointers are left unchanged on update.
type AnnouncementInput struct {
	Title     *string
	Content   *string
	Priority  *domain.AnnouncementPriority
	IsActive  *bool
	IsPinned  *bool
	ExpiresAt *time.Time
	// ClearExpiresAt removes an existing expiry on update.
	ClearExpiresAt bool
}

func NewAnnouncementService(repo repository.AnnouncementRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{
		announcements: repo,
		dispatcher:    dispatcher,
		logger:        logger.Named("announcements"),
		now:           time.Now,
	}
}

func (s *AnnouncementService) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	items, err := s.announcements.ListActive(ctx)
	return items, apperrors.MapError(err)
}

func (s *AnnouncementService) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	items, err := s.announcements.ListAll(ctx)
	return items, apperrors.MapError(err)
}

func (s *AnnouncementService) Create(ctx context.Context, author *domain.User, input AnnouncementInput) (*domain.Announcement, error) {
	a := &domain.Announcement{
		AuthorID: author.ID,
		Priority: domain.AnnouncementPriorityMedium,
		IsActive: true,
	}
	if err := applyAnnouncementInput(a, input, true); err != nil {
		return nil, err
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, apperrors.MapError(err)
	}
	authorSummary := author.Summary()
	a.Author = &authorSummary

	s.logger.Info("announcement created", zap.String("announcement_id", a.ID), zap.String("author_id", author.ID))
	if a.VisibleAt(s.now()) {
		publishEvent(ctx, s.dispatcher, s.logger, events.Event{
			Type:      events.EventAnnouncementPublished,
			SubjectID: a.ID,
			ActorID:   author.ID,
			Payload: events.AnnouncementPublishedPayload{
				Title:    a.Title,
				Priority: a.Priority,
				Pinned:   a.IsPinned,
			},
		})
	}
	return a, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id string, input AnnouncementInput) (*domain.Announcement, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyAnnouncementInput(a, input, false); err != nil {
		return nil, err
	}
	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.logger.Info("announcement updated",
		zap.String("announcement_id", a.ID),
		zap.Bool("active", a.IsActive),
		zap.Bool("expiry_cleared", input.ClearExpiresAt))
	return a, nil
}

// Delete removes an announcement. Moderators may only delete their own; admins any.
func (s *AnnouncementService) Delete(ctx context.Context, actor *domain.User, id string) error {
	a, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if a.AuthorID != actor.ID && actor.UserType != domain.UserTypeAdmin {
		return apperrors.NewForbidden("only the author or an admin can delete this announcement")
	}
	if err := s.announcements.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("announcement", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.logger.Info("announcement deleted", zap.String("announcement_id", a.ID), zap.String("actor_id", actor.ID))
	return nil
}

func (s *AnnouncementService) load(ctx context.Context, id string) (*domain.Announcement, error) {
	if !isUUID(id) {
		return nil, apperrors.NewNotFound("announcement", map[string]any{"id": id})
	}
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("announcement", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return a, nil
}

func applyAnnouncementInput(a *domain.Announcement, input AnnouncementInput, creating bool) error {
	fields := map[string]any{}
	if input.Title != nil {
		a.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		a.Content = strings.TrimSpace(*input.Content)
	}
	if (creating || input.Title != nil) && a.Title == "" {
		fields["title"] = "required"
	}
	if (creating || input.Content != nil) && a.Content == "" {
		fields["content"] = "required"
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			fields["priority"] = "must be one of low, medium, high, urgent"
		}
		a.Priority = *input.Priority
	}
	if input.IsActive != nil {
		a.IsActive = *input.IsActive
	}
	if input.IsPinned != nil {
		a.IsPinned = *input.IsPinned
	}
	switch {
	case input.ClearExpiresAt && input.ExpiresAt != nil:
		fields["expiresAt"] = "cannot be set and cleared at once"
	case input.ClearExpiresAt:
		a.ExpiresAt = nil
	case input.ExpiresAt != nil:
		expires := input.ExpiresAt.UTC()
		a.ExpiresAt = &expires
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("invalid announcement", fields)
	}
	return nil
}
