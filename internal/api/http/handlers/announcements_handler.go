package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/digital-house/community-service/internal/api/dto"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/service"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// AnnouncementsHandler serves community announcements.
type AnnouncementsHandler struct {
	service *service.AnnouncementService
}

func NewAnnouncementsHandler(announcements *service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{service: announcements}
}

// ListActive GET /announcements.
func (h *AnnouncementsHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.service.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": announcementResponses(items)})
}

// ListAll GET /announcements/all.
func (h *AnnouncementsHandler) ListAll(c *fiber.Ctx) error {
	items, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": announcementResponses(items)})
}

// Create POST /announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.AnnouncementInput{
		Title:     &req.Title,
		Content:   &req.Content,
		IsPinned:  &req.IsPinned,
		ExpiresAt: req.ExpiresAt,
	}
	if req.Priority != "" {
		input.Priority = &req.Priority
	}
	created, err := h.service.Create(c.UserContext(), user, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": announcementResponse(created)})
}

// Update PUT /announcements/:id.
func (h *AnnouncementsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	updated, err := h.service.Update(c.UserContext(), c.Params("id"), service.AnnouncementInput{
		Title:          req.Title,
		Content:        req.Content,
		Priority:       req.Priority,
		IsActive:       req.IsActive,
		IsPinned:       req.IsPinned,
		ExpiresAt:      req.ExpiresAt,
		ClearExpiresAt: req.ClearExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": announcementResponse(updated)})
}

// Delete DELETE /announcements/:id.
func (h *AnnouncementsHandler) Delete(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func announcementResponses(items []domain.Announcement) []dto.AnnouncementResponse {
	out := make([]dto.AnnouncementResponse, 0, len(items))
	for i := range items {
		out = append(out, announcementResponse(&items[i]))
	}
	return out
}

func announcementResponse(a *domain.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Priority:  a.Priority,
		IsActive:  a.IsActive,
		IsPinned:  a.IsPinned,
		ExpiresAt: a.ExpiresAt,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Author:    userSummaryResponse(a.Author),
	}
}
