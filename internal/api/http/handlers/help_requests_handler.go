package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/digital-house/community-service/internal/api/dto"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/service"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// HelpRequestsHandler manages the community help desk endpoints.
type HelpRequestsHandler struct {
	service         *service.HelpRequestService
	defaultPageSize int
}

// NewHelpRequestsHandler constructs handler. defaultPageSize converts page numbers into offsets
// when the caller gives no page_size.
func NewHelpRequestsHandler(helpService *service.HelpRequestService, defaultPageSize int) *HelpRequestsHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &HelpRequestsHandler{service: helpService, defaultPageSize: defaultPageSize}
}

// Create POST /help-requests.
func (h *HelpRequestsHandler) Create(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateHelpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	created, err := h.service.CreateHelpRequest(c.UserContext(), user.ID, service.HelpRequestCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Location:     req.Location,
		UrgencyLevel: req.UrgencyLevel,
	})
	if err != nil {
		return err
	}
	created.Requester = summaryOf(user)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    helpRequestResponse(created),
		"message": "Help request created successfully",
	})
}

// CreateEmergency POST /help-requests/emergency.
func (h *HelpRequestsHandler) CreateEmergency(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.EmergencyHelpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	created, err := h.service.CreateEmergencyHelpRequest(c.UserContext(), user.ID, service.HelpRequestCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	created.Requester = summaryOf(user)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    helpRequestResponse(created),
		"message": "Emergency help request created",
	})
}

// List GET /help-requests.
func (h *HelpRequestsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListActiveHelpRequests(c.UserContext(), parsePage(c, h.defaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": helpRequestResponses(items)})
}

// ListMine GET /help-requests/mine.
func (h *HelpRequestsHandler) ListMine(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	items, err := h.service.ListUserHelpRequests(c.UserContext(), user.ID, parsePage(c, h.defaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": helpRequestResponses(items)})
}

// Get GET /help-requests/:id.
func (h *HelpRequestsHandler) Get(c *fiber.Ctx) error {
	req, responses, err := h.service.GetHelpRequest(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	detail := dto.HelpRequestDetailResponse{
		HelpRequestResponse: helpRequestResponse(req),
		Responses:           make([]dto.HelpResponseResponse, 0, len(responses)),
	}
	for i := range responses {
		detail.Responses = append(detail.Responses, helpResponseResponse(&responses[i]))
	}
	return c.JSON(fiber.Map{"data": detail})
}

// Respond POST /help-requests/:id/respond.
func (h *HelpRequestsHandler) Respond(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.RespondToHelpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if _, err := h.service.RespondToHelpRequest(c.UserContext(), c.Params("id"), user.ID, req.Message); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Response sent successfully"})
}

// Resolve POST /help-requests/:id/resolve.
func (h *HelpRequestsHandler) Resolve(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	updated, err := h.service.ResolveHelpRequest(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": helpRequestResponse(updated)})
}

// Close POST /help-requests/:id/close.
func (h *HelpRequestsHandler) Close(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	updated, err := h.service.CloseHelpRequest(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": helpRequestResponse(updated)})
}

// AcceptResponse POST /help-requests/:id/responses/:responseId/accept.
func (h *HelpRequestsHandler) AcceptResponse(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	accepted, err := h.service.AcceptResponse(c.UserContext(), user, c.Params("id"), c.Params("responseId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": helpResponseResponse(accepted)})
}

// parsePage accepts limit/offset, or page/page_size when no limit is given. Bad values fall back
// to defaults; clamping happens in the service.
func parsePage(c *fiber.Ctx, defaultSize int) service.Page {
	if c.Query("limit") != "" || c.Query("offset") != "" {
		return service.Page{
			Limit:  parseInt(c.Query("limit"), 0),
			Offset: parseInt(c.Query("offset"), 0),
		}
	}
	pageSize := parseInt(c.Query("page_size"), defaultSize)
	if pageSize == 0 {
		pageSize = defaultSize
	}
	page := parseInt(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	return service.Page{Limit: pageSize, Offset: (page - 1) * pageSize}
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func helpRequestResponses(items []domain.HelpRequest) []dto.HelpRequestResponse {
	out := make([]dto.HelpRequestResponse, 0, len(items))
	for i := range items {
		out = append(out, helpRequestResponse(&items[i]))
	}
	return out
}

func helpRequestResponse(req *domain.HelpRequest) dto.HelpRequestResponse {
	return dto.HelpRequestResponse{
		ID:           req.ID,
		RequesterID:  req.RequesterID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Location:     req.Location,
		UrgencyLevel: req.UrgencyLevel,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
		Requester:    userSummaryResponse(req.Requester),
	}
}

func helpResponseResponse(resp *domain.HelpResponse) dto.HelpResponseResponse {
	return dto.HelpResponseResponse{
		ID:            resp.ID,
		HelpRequestID: resp.HelpRequestID,
		ResponderID:   resp.ResponderID,
		Message:       resp.Message,
		IsAccepted:    resp.IsAccepted,
		CreatedAt:     resp.CreatedAt,
		Responder:     userSummaryResponse(resp.Responder),
	}
}

func summaryOf(user *domain.User) *domain.UserSummary {
	s := user.Summary()
	return &s
}

func userSummaryResponse(s *domain.UserSummary) *dto.UserSummaryResponse {
	if s == nil {
		return nil
	}
	return &dto.UserSummaryResponse{
		ID:              s.ID,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		ProfileImageURL: s.ProfileImageURL,
		Location:        s.Location,
	}
}
