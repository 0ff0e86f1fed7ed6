package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/cache"
	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/repository"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// HelpRequestService coordinates the community help desk.
type HelpRequestService struct {
	requests   repository.HelpRequestRepository
	responses  repository.HelpResponseRepository
	cache      cache.HelpRequestCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.HelpDeskConfig
}

// HelpRequestDependencies bundles collaborators for the help desk.
type HelpRequestDependencies struct {
	RequestRepo  repository.HelpRequestRepository
	ResponseRepo repository.HelpResponseRepository
	Cache        cache.HelpRequestCache
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Config       config.HelpDeskConfig
}

// HelpRequestCreateInput describes a new help request. UrgencyLevel nil means the default.
type HelpRequestCreateInput struct {
	Title        string
	Description  string
	Type         domain.HelpRequestType
	Location     *string
	UrgencyLevel *int
}

// NewHelpRequestService constructs the service.
func NewHelpRequestService(deps HelpRequestDependencies) *HelpRequestService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := deps.Cache
	if c == nil {
		c = cache.NewHelpRequestCache(nil, 0)
	}
	return &HelpRequestService{
		requests:   deps.RequestRepo,
		responses:  deps.ResponseRepo,
		cache:      c,
		dispatcher: deps.Dispatcher,
		logger:     logger.Named("helpdesk"),
		cfg:        deps.Config,
	}
}

// CreateHelpRequest validates and stores a request. Status is always active on creation and
// out-of-range urgency is rejected rather than clamped.
func (s *HelpRequestService) CreateHelpRequest(ctx context.Context, requesterID string, input HelpRequestCreateInput) (*domain.HelpRequest, error) {
	return s.create(ctx, requesterID, input, false)
}

// CreateEmergencyHelpRequest is the emergency-button variant: urgency is pinned to
// EmergencyUrgencyLevel and the type defaults to medical.
func (s *HelpRequestService) CreateEmergencyHelpRequest(ctx context.Context, requesterID string, input HelpRequestCreateInput) (*domain.HelpRequest, error) {
	urgency := domain.EmergencyUrgencyLevel
	input.UrgencyLevel = &urgency
	if strings.TrimSpace(string(input.Type)) == "" {
		input.Type = domain.HelpRequestTypeMedical
	}
	return s.create(ctx, requesterID, input, true)
}

func (s *HelpRequestService) create(ctx context.Context, requesterID string, input HelpRequestCreateInput, emergency bool) (*domain.HelpRequest, error) {
	if requesterID == "" {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	req, err := buildHelpRequest(requesterID, input)
	if err != nil {
		return nil, err
	}

	if err := s.requests.Create(ctx, req); err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, apperrors.NewUnauthorized("requester no longer exists")
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidateBoard(ctx)
	s.logger.Info("help request created",
		zap.String("help_request_id", req.ID),
		zap.String("requester_id", requesterID),
		zap.String("type", string(req.Type)),
		zap.Int("urgency_level", req.UrgencyLevel),
		zap.Bool("emergency", emergency))

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventHelpRequestCreated,
		SubjectID: req.ID,
		ActorID:   requesterID,
		Payload: events.HelpRequestCreatedPayload{
			Title:        req.Title,
			Type:         req.Type,
			UrgencyLevel: req.UrgencyLevel,
			Location:     req.Location,
			Emergency:    emergency,
		},
	})
	return req, nil
}

func buildHelpRequest(requesterID string, input HelpRequestCreateInput) (*domain.HelpRequest, error) {
	fields := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "required"
	}
	if !input.Type.Valid() {
		fields["type"] = "must be one of medical, travel, safety, other"
	}
	urgency := domain.DefaultUrgencyLevel
	if input.UrgencyLevel != nil {
		urgency = *input.UrgencyLevel
		if !domain.ValidUrgency(urgency) {
			fields["urgencyLevel"] = "must be between 1 and 5"
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("invalid help request", fields)
	}

	return &domain.HelpRequest{
		RequesterID:  requesterID,
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		Location:     nonBlankPtr(input.Location),
		UrgencyLevel: urgency,
		Status:       domain.HelpRequestStatusActive,
	}, nil
}

// ListActiveHelpRequests returns one page of the board, most urgent and most recent first.
func (s *HelpRequestService) ListActiveHelpRequests(ctx context.Context, page Page) ([]domain.HelpRequest, error) {
	page = page.normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	// The page is stored under the generation read before the query; a write that lands
	// in between bumps the generation and the stored page is never read.
	cached, gen, ok, cacheErr := s.cache.GetActive(ctx, page.Limit, page.Offset)
	if cacheErr != nil {
		s.logger.Warn("help board cache read failed", zap.Error(cacheErr))
	} else if ok {
		return cached, nil
	}

	items, err := s.requests.ListActive(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if cacheErr == nil {
		if err := s.cache.SetActive(ctx, gen, page.Limit, page.Offset, items); err != nil {
			s.logger.Warn("help board cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// ListUserHelpRequests returns the caller's own requests in any status, newest first.
func (s *HelpRequestService) ListUserHelpRequests(ctx context.Context, userID string, page Page) ([]domain.HelpRequest, error) {
	page = page.normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	items, err := s.requests.ListWithFilter(ctx, repository.HelpRequestFilter{
		RequesterID: &userID,
		Order:       repository.OrderByNewest,
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// GetHelpRequest returns a request together with its responses.
func (s *HelpRequestService) GetHelpRequest(ctx context.Context, id string) (*domain.HelpRequest, []domain.HelpResponse, error) {
	req, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	responses, err := s.responses.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return req, responses, nil
}

// RespondToHelpRequest records an offer of help. The parent request is left untouched.
func (s *HelpRequestService) RespondToHelpRequest(ctx context.Context, helpRequestID, responderID, message string) (*domain.HelpResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewValidationError("invalid help response", map[string]any{"message": "required"})
	}
	if _, err := s.loadRequest(ctx, helpRequestID); err != nil {
		return nil, err
	}

	resp := &domain.HelpResponse{
		HelpRequestID: helpRequestID,
		ResponderID:   responderID,
		Message:       message,
		IsAccepted:    false,
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, apperrors.NewNotFound("help request", map[string]any{"id": helpRequestID})
		}
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("help response added",
		zap.String("help_request_id", helpRequestID),
		zap.String("response_id", resp.ID),
		zap.String("responder_id", responderID))

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventHelpResponseAdded,
		SubjectID: helpRequestID,
		ActorID:   responderID,
		Payload: events.HelpResponseAddedPayload{
			ResponseID:     resp.ID,
			ResponderID:    responderID,
			MessagePreview: stringPreview(message, 140),
		},
	})
	return resp, nil
}

// ResolveHelpRequest marks an active request resolved.
func (s *HelpRequestService) ResolveHelpRequest(ctx context.Context, actor *domain.User, id string) (*domain.HelpRequest, error) {
	return s.transition(ctx, actor, id, domain.HelpRequestStatusResolved)
}

// CloseHelpRequest marks an active request closed without resolution.
func (s *HelpRequestService) CloseHelpRequest(ctx context.Context, actor *domain.User, id string) (*domain.HelpRequest, error) {
	return s.transition(ctx, actor, id, domain.HelpRequestStatusClosed)
}

func (s *HelpRequestService) transition(ctx context.Context, actor *domain.User, id string, target domain.HelpRequestStatus) (*domain.HelpRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	current, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.RequesterID != actor.ID && !actor.UserType.IsStaff() {
		return nil, apperrors.NewForbidden("only the requester or a moderator can change this request")
	}
	if !current.Status.CanTransitionTo(target) {
		return nil, statusConflict(current.Status, target)
	}

	updated, err := s.requests.UpdateStatus(ctx, current.ID, domain.HelpRequestStatusActive, target)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race with another transition
			return nil, statusConflict(domain.HelpRequestStatusActive, target)
		}
		return nil, apperrors.MapError(err)
	}
	updated.Requester = current.Requester

	s.invalidateBoard(ctx)
	s.logger.Info("help request status changed",
		zap.String("help_request_id", updated.ID),
		zap.String("actor_id", actor.ID),
		zap.String("status", string(target)))

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventHelpRequestStatusChanged,
		SubjectID: updated.ID,
		ActorID:   actor.ID,
		Payload: events.HelpRequestStatusChangedPayload{
			OldStatus: current.Status,
			NewStatus: target,
		},
	})
	return updated, nil
}

// AcceptResponse lets the requester mark a response as the accepted one. Accepting is
// idempotent and does not change the request's status.
func (s *HelpRequestService) AcceptResponse(ctx context.Context, actor *domain.User, helpRequestID, responseID string) (*domain.HelpResponse, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	req, err := s.loadRequest(ctx, helpRequestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != actor.ID {
		return nil, apperrors.NewForbidden("only the requester can accept a response")
	}
	if !isUUID(responseID) {
		return nil, apperrors.NewNotFound("help response", map[string]any{"id": responseID})
	}
	resp, err := s.responses.GetByID(ctx, responseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("help response", map[string]any{"id": responseID})
		}
		return nil, apperrors.MapError(err)
	}
	if resp.HelpRequestID != req.ID {
		return nil, apperrors.NewNotFound("help response", map[string]any{"id": responseID})
	}
	if resp.IsAccepted {
		return resp, nil
	}

	if err := s.responses.MarkAccepted(ctx, resp.ID); err != nil {
		return nil, apperrors.MapError(err)
	}
	resp.IsAccepted = true

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventHelpResponseAccepted,
		SubjectID: req.ID,
		ActorID:   actor.ID,
		Payload: events.HelpResponseAcceptedPayload{
			ResponseID:  resp.ID,
			ResponderID: resp.ResponderID,
		},
	})
	return resp, nil
}

func (s *HelpRequestService) loadRequest(ctx context.Context, id string) (*domain.HelpRequest, error) {
	if !isUUID(id) {
		return nil, apperrors.NewNotFound("help request", map[string]any{"id": id})
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("help request", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return req, nil
}

func (s *HelpRequestService) invalidateBoard(ctx context.Context) {
	if err := s.cache.InvalidateActive(ctx); err != nil {
		s.logger.Warn("help board cache invalidation failed", zap.Error(err))
	}
}

func statusConflict(from, to domain.HelpRequestStatus) error {
	return apperrors.NewConflict("help request is no longer active", map[string]any{
		"status": string(from),
		"target": string(to),
	})
}
