package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/digital-house/community-service/internal/api/http/handlers"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/cache"
	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/observability"
	"github.com/digital-house/community-service/internal/repository/mocks"
	"github.com/digital-house/community-service/internal/service"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testServer struct {
	app           *fiber.App
	users         *mocks.MockUserRepository
	resets        *mocks.MockPasswordResetRepository
	requests      *mocks.MockHelpRequestRepository
	responses     *mocks.MockHelpResponseRepository
	announcements *mocks.MockAnnouncementRepository
	authService   *service.AuthService
}

var allFeatures = config.FeatureFlags{EmergencyEndpoint: true, Announcements: true}

func newTestServer(t *testing.T, flags config.FeatureFlags, redisPing error) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := &testServer{
		users:         mocks.NewMockUserRepository(ctrl),
		resets:        mocks.NewMockPasswordResetRepository(ctrl),
		requests:      mocks.NewMockHelpRequestRepository(ctrl),
		responses:     mocks.NewMockHelpResponseRepository(ctrl),
		announcements: mocks.NewMockAnnouncementRepository(ctrl),
	}
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	s.authService = service.NewAuthService(config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTLMinutes:   60,
		RememberMeTTLHours:      24,
		PasswordResetTTLMinutes: 60,
		BcryptCost:              bcrypt.MinCost,
	}, service.AuthDependencies{
		UserRepo:          s.users,
		PasswordResetRepo: s.resets,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	helpService := service.NewHelpRequestService(service.HelpRequestDependencies{
		RequestRepo:  s.requests,
		ResponseRepo: s.responses,
		Cache:        cache.NewHelpRequestCache(nil, 0),
		Dispatcher:   dispatcher,
		Logger:       logger,
		Config:       config.HelpDeskConfig{DefaultPageSize: 20, MaxPageSize: 100},
	})
	announcementService := service.NewAnnouncementService(s.announcements, dispatcher, logger)

	s.app = NewApp("community-service-test", logger, metrics, time.Second)
	RegisterRoutes(s.app, RouteConfig{
		Health:         handlers.NewHealthHandler("community-service", "test", stubPinger{}, stubPinger{err: redisPing}),
		Auth:           handlers.NewAuthHandler(s.authService, false),
		HelpRequests:   handlers.NewHelpRequestsHandler(helpService, 20),
		Announcements:  handlers.NewAnnouncementsHandler(announcementService),
		Features:       handlers.NewFeaturesHandler(flags),
		AuthMiddleware: auth.NewAuthMiddleware(s.authService.TokenManager(), s.users),
		Flags:          flags,
		Metrics:        metrics,
	})
	return s
}

// login returns a bearer token for user and lets the auth middleware resolve it.
func (s *testServer) login(t *testing.T, user *domain.User) string {
	t.Helper()
	token, _, err := s.authService.TokenManager().GenerateToken(user.ID, user.UserType, false)
	require.NoError(t, err)
	s.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
	return token
}

type response struct {
	status  int
	body    map[string]any
	cookies []string
}

func (r response) errorCode() string {
	e, _ := r.body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func (r response) data() map[string]any {
	d, _ := r.body["data"].(map[string]any)
	return d
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := response{status: resp.StatusCode, cookies: resp.Header.Values(fiber.HeaderSetCookie)}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &out.body))
	}
	return out
}

func member() *domain.User {
	return &domain.User{ID: uuid.NewString(), Email: "m@example.com", FirstName: "Maya", LastName: "Lee", UserType: domain.UserTypeMember}
}

func TestCreateHelpRequestEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	user := member()
	token := s.login(t, user)

	s.requests.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.HelpRequest) error {
			req.ID = uuid.NewString()
			req.CreatedAt = time.Now()
			req.UpdatedAt = req.CreatedAt
			return nil
		})

	res := s.do(t, fiber.MethodPost, "/help-requests", map[string]any{
		"title": "Need ride", "description": "Car broke down", "type": "travel", "location": "Downtown", "urgencyLevel": 3,
		"status": "closed",
	}, token)

	require.Equal(t, fiber.StatusCreated, res.status)
	data := res.data()
	assert.Equal(t, "active", data["status"])
	assert.EqualValues(t, 3, data["urgencyLevel"])
	assert.Equal(t, "Downtown", data["location"])
	assert.Equal(t, user.ID, data["requesterId"])
	assert.Equal(t, "Help request created successfully", res.body["message"])
}

func TestCreateHelpRequestEndpoint_Rejections(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	token := s.login(t, member())

	t.Run("urgency seven is rejected not clamped", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/help-requests", map[string]any{
			"title": "t", "description": "d", "type": "travel", "urgencyLevel": 7,
		}, token)
		assert.Equal(t, fiber.StatusBadRequest, res.status)
		assert.Equal(t, apperrors.CodeValidation, res.errorCode())
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/help-requests", strings.NewReader("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := s.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/help-requests", map[string]any{"title": "t"}, "")
		assert.Equal(t, fiber.StatusUnauthorized, res.status)
		assert.Equal(t, apperrors.CodeUnauthorized, res.errorCode())
	})
}

func TestListHelpRequestsEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	token := s.login(t, member())
	location := "Uptown"
	board := []domain.HelpRequest{
		{ID: "a", Title: "urgent", UrgencyLevel: 5, Status: domain.HelpRequestStatusActive, Requester: &domain.UserSummary{ID: "r1", FirstName: "Ana", Location: &location}},
		{ID: "b", Title: "calm", UrgencyLevel: 1, Status: domain.HelpRequestStatusActive},
	}

	s.requests.EXPECT().ListActive(gomock.Any(), 20, 0).Return(board, nil)
	s.requests.EXPECT().ListActive(gomock.Any(), 5, 10).Return(nil, nil)
	s.requests.EXPECT().ListActive(gomock.Any(), 10, 10).Return(nil, nil)

	res := s.do(t, fiber.MethodGet, "/help-requests", nil, token)
	require.Equal(t, fiber.StatusOK, res.status)
	items := res.body["data"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "a", first["id"])
	requester := first["requester"].(map[string]any)
	assert.Equal(t, "Ana", requester["firstName"])
	assert.Equal(t, "Uptown", requester["location"])

	res = s.do(t, fiber.MethodGet, "/help-requests?limit=5&offset=10", nil, token)
	require.Equal(t, fiber.StatusOK, res.status)
	assert.Empty(t, res.body["data"])

	res = s.do(t, fiber.MethodGet, "/help-requests?page=2&page_size=10", nil, token)
	require.Equal(t, fiber.StatusOK, res.status)
}

func TestGetHelpRequestEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	token := s.login(t, member())
	id := uuid.NewString()

	s.requests.EXPECT().GetByID(gomock.Any(), id).Return(&domain.HelpRequest{ID: id, Status: domain.HelpRequestStatusActive}, nil)
	s.responses.EXPECT().ListByRequest(gomock.Any(), id).Return([]domain.HelpResponse{
		{ID: "r1", HelpRequestID: id, Message: "on my way", Responder: &domain.UserSummary{ID: "u2", FirstName: "Sam"}},
	}, nil)

	res := s.do(t, fiber.MethodGet, "/help-requests/"+id, nil, token)
	require.Equal(t, fiber.StatusOK, res.status)
	data := res.data()
	assert.Equal(t, id, data["id"])
	responses := data["responses"].([]any)
	require.Len(t, responses, 1)
	assert.Equal(t, "on my way", responses[0].(map[string]any)["message"])
	assert.Equal(t, false, responses[0].(map[string]any)["isAccepted"])
}

func TestRespondEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	user := member()
	token := s.login(t, user)
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		s.requests.EXPECT().GetByID(gomock.Any(), id).Return(&domain.HelpRequest{ID: id, Status: domain.HelpRequestStatusActive}, nil)
		s.responses.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.HelpResponse) error {
				assert.Equal(t, user.ID, r.ResponderID)
				assert.False(t, r.IsAccepted)
				r.ID = uuid.NewString()
				return nil
			})

		res := s.do(t, fiber.MethodPost, "/help-requests/"+id+"/respond", map[string]any{"message": "I can help"}, token)
		assert.Equal(t, fiber.StatusCreated, res.status)
		assert.Equal(t, "Response sent successfully", res.body["message"])
	})

	t.Run("empty message", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/help-requests/"+id+"/respond", map[string]any{"message": "   "}, token)
		assert.Equal(t, fiber.StatusBadRequest, res.status)
		assert.Equal(t, apperrors.CodeValidation, res.errorCode())
	})

	t.Run("unknown request", func(t *testing.T) {
		missing := uuid.NewString()
		s.requests.EXPECT().GetByID(gomock.Any(), missing).Return(nil, pgx.ErrNoRows)

		res := s.do(t, fiber.MethodPost, "/help-requests/"+missing+"/respond", map[string]any{"message": "hi"}, token)
		assert.Equal(t, fiber.StatusNotFound, res.status)
		assert.Equal(t, apperrors.CodeNotFound, res.errorCode())
	})

	t.Run("malformed id", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/help-requests/not-a-uuid/respond", map[string]any{"message": "hi"}, token)
		assert.Equal(t, fiber.StatusNotFound, res.status)
	})
}

func TestEmergencyEndpoint(t *testing.T) {
	t.Run("enabled forces urgency and default type", func(t *testing.T) {
		s := newTestServer(t, allFeatures, nil)
		token := s.login(t, member())
		s.requests.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.HelpRequest) error {
				req.ID = uuid.NewString()
				return nil
			})

		res := s.do(t, fiber.MethodPost, "/help-requests/emergency", map[string]any{
			"title": "Fall", "description": "Neighbour fell", "urgencyLevel": 1,
		}, token)
		require.Equal(t, fiber.StatusCreated, res.status)
		assert.EqualValues(t, domain.EmergencyUrgencyLevel, res.data()["urgencyLevel"])
		assert.Equal(t, "medical", res.data()["type"])
	})

	t.Run("disabled answers not found", func(t *testing.T) {
		s := newTestServer(t, config.FeatureFlags{Announcements: true}, nil)
		token := s.login(t, member())

		res := s.do(t, fiber.MethodPost, "/help-requests/emergency", map[string]any{"title": "x", "description": "y"}, token)
		assert.Equal(t, fiber.StatusNotFound, res.status)
		assert.Equal(t, apperrors.CodeNotFound, res.errorCode())
	})
}

func TestResolveEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	requester := member()
	stranger := member()
	moderator := &domain.User{ID: uuid.NewString(), UserType: domain.UserTypeModerator}
	id := uuid.NewString()
	active := &domain.HelpRequest{ID: id, RequesterID: requester.ID, Status: domain.HelpRequestStatusActive}

	s.requests.EXPECT().GetByID(gomock.Any(), id).Return(active, nil).Times(3)

	res := s.do(t, fiber.MethodPost, "/help-requests/"+id+"/resolve", nil, s.login(t, stranger))
	assert.Equal(t, fiber.StatusForbidden, res.status)

	s.requests.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.HelpRequestStatusActive, domain.HelpRequestStatusClosed).
		Return(&domain.HelpRequest{ID: id, RequesterID: requester.ID, Status: domain.HelpRequestStatusClosed}, nil)
	res = s.do(t, fiber.MethodPost, "/help-requests/"+id+"/close", nil, s.login(t, moderator))
	require.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "closed", res.data()["status"])

	s.requests.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.HelpRequestStatusActive, domain.HelpRequestStatusResolved).
		Return(nil, pgx.ErrNoRows)
	res = s.do(t, fiber.MethodPost, "/help-requests/"+id+"/resolve", nil, s.login(t, requester))
	assert.Equal(t, fiber.StatusConflict, res.status)
	assert.Equal(t, apperrors.CodeConflict, res.errorCode())
}

func TestAcceptEndpoint(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	requester := member()
	token := s.login(t, requester)
	id := uuid.NewString()
	responseID := uuid.NewString()

	s.requests.EXPECT().GetByID(gomock.Any(), id).Return(&domain.HelpRequest{ID: id, RequesterID: requester.ID, Status: domain.HelpRequestStatusActive}, nil)
	s.responses.EXPECT().GetByID(gomock.Any(), responseID).Return(&domain.HelpResponse{ID: responseID, HelpRequestID: id}, nil)
	s.responses.EXPECT().MarkAccepted(gomock.Any(), responseID).Return(nil)

	res := s.do(t, fiber.MethodPost, "/help-requests/"+id+"/responses/"+responseID+"/accept", nil, token)
	require.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, true, res.data()["isAccepted"])
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)

	t.Run("register sets cookie", func(t *testing.T) {
		s.users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, pgx.ErrNoRows)
		s.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				u.ID = uuid.NewString()
				return nil
			})

		res := s.do(t, fiber.MethodPost, "/auth/register", map[string]any{
			"email": "new@example.com", "password": "longenough", "firstName": "New", "lastName": "Member",
		}, "")
		require.Equal(t, fiber.StatusCreated, res.status)
		assert.NotEmpty(t, res.data()["token"])
		user := res.data()["user"].(map[string]any)
		assert.Equal(t, "member", user["userType"])
		assert.NotContains(t, user, "passwordHash")
		require.NotEmpty(t, res.cookies)
		assert.Contains(t, res.cookies[0], auth.CookieName+"=")
		assert.Contains(t, strings.ToLower(res.cookies[0]), "httponly")
	})

	t.Run("register validation", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/auth/register", map[string]any{"email": "bad", "password": "short"}, "")
		assert.Equal(t, fiber.StatusBadRequest, res.status)
		details := res.body["error"].(map[string]any)["details"].(map[string]any)
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "password")
		assert.Contains(t, details, "firstName")
	})

	t.Run("login with bad credentials", func(t *testing.T) {
		s.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, pgx.ErrNoRows)
		res := s.do(t, fiber.MethodPost, "/auth/login", map[string]any{"email": "ghost@example.com", "password": "whatever"}, "")
		assert.Equal(t, fiber.StatusUnauthorized, res.status)
	})

	t.Run("cookie authenticates current user", func(t *testing.T) {
		user := member()
		token := s.login(t, user)
		req := httptest.NewRequest(fiber.MethodGet, "/auth/user", nil)
		req.Header.Set(fiber.HeaderCookie, auth.CookieName+"="+token)
		resp, err := s.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		res := s.do(t, fiber.MethodPost, "/auth/logout", nil, "")
		require.Equal(t, fiber.StatusOK, res.status)
		require.NotEmpty(t, res.cookies)
		assert.Contains(t, res.cookies[0], auth.CookieName+"=;")
	})

	t.Run("forgot password never reveals accounts", func(t *testing.T) {
		s.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, pgx.ErrNoRows)
		res := s.do(t, fiber.MethodPost, "/auth/forgot-password", map[string]any{"email": "ghost@example.com"}, "")
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.NotEmpty(t, res.body["message"])
	})

	t.Run("validate reset token", func(t *testing.T) {
		s.resets.EXPECT().GetByToken(gomock.Any(), "nope").Return(nil, pgx.ErrNoRows)
		res := s.do(t, fiber.MethodGet, "/auth/validate-reset-token?token=nope", nil, "")
		require.Equal(t, fiber.StatusOK, res.status)
		assert.Equal(t, false, res.data()["valid"])
	})
}

func TestAnnouncementEndpoints(t *testing.T) {
	t.Run("public listing", func(t *testing.T) {
		s := newTestServer(t, allFeatures, nil)
		s.announcements.EXPECT().ListActive(gomock.Any()).Return([]domain.Announcement{{ID: "a1", Title: "Hello", IsActive: true}}, nil)

		res := s.do(t, fiber.MethodGet, "/announcements", nil, "")
		require.Equal(t, fiber.StatusOK, res.status)
		assert.Len(t, res.body["data"], 1)
	})

	t.Run("members cannot post", func(t *testing.T) {
		s := newTestServer(t, allFeatures, nil)
		res := s.do(t, fiber.MethodPost, "/announcements", map[string]any{"title": "x", "content": "y"}, s.login(t, member()))
		assert.Equal(t, fiber.StatusForbidden, res.status)
	})

	t.Run("moderators can post", func(t *testing.T) {
		s := newTestServer(t, allFeatures, nil)
		mod := &domain.User{ID: uuid.NewString(), FirstName: "Mo", UserType: domain.UserTypeModerator}
		s.announcements.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res := s.do(t, fiber.MethodPost, "/announcements", map[string]any{"title": "x", "content": "y", "priority": "high"}, s.login(t, mod))
		require.Equal(t, fiber.StatusCreated, res.status)
		assert.Equal(t, "high", res.data()["priority"])
	})

	t.Run("feature off", func(t *testing.T) {
		s := newTestServer(t, config.FeatureFlags{EmergencyEndpoint: true}, nil)
		res := s.do(t, fiber.MethodGet, "/announcements", nil, "")
		assert.Equal(t, fiber.StatusNotFound, res.status)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t, config.FeatureFlags{EmergencyEndpoint: true, V2: true}, errors.New("connection refused"))

	res := s.do(t, fiber.MethodGet, "/features", nil, "")
	require.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, map[string]any{"emergencyEndpoint": true, "announcements": false, "v2": true}, res.data())

	res = s.do(t, fiber.MethodGet, "/health/live", nil, "")
	assert.Equal(t, fiber.StatusOK, res.status)

	res = s.do(t, fiber.MethodGet, "/health/ready", nil, "")
	assert.Equal(t, fiber.StatusServiceUnavailable, res.status)
	details := res.body["error"].(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "ok", details["postgres"])
	assert.Equal(t, "connection refused", details["redis"])

	req := httptest.NewRequest(fiber.MethodGet, "/metrics", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "community_http_requests_total")
}

func TestErrorEnvelope(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)
	s.app.Get("/boom", func(*fiber.Ctx) error { panic("kaboom") })
	s.app.Get("/db-down", func(*fiber.Ctx) error { return errors.New("dial tcp: connection refused") })

	res := s.do(t, fiber.MethodGet, "/nowhere", nil, "")
	assert.Equal(t, fiber.StatusNotFound, res.status)
	assert.Equal(t, apperrors.CodeNotFound, res.errorCode())

	res = s.do(t, fiber.MethodGet, "/boom", nil, "")
	assert.Equal(t, fiber.StatusInternalServerError, res.status)
	assert.Equal(t, "internal server error", res.body["error"].(map[string]any)["message"])

	res = s.do(t, fiber.MethodGet, "/db-down", nil, "")
	assert.Equal(t, fiber.StatusInternalServerError, res.status)
	assert.NotContains(t, res.body["error"].(map[string]any)["message"], "dial tcp")
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, allFeatures, nil)

	resp, err := s.app.Test(httptest.NewRequest(fiber.MethodGet, "/health/live", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest(fiber.MethodGet, "/health/live", nil)
	req.Header.Set(fiber.HeaderXRequestID, "caller-id")
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "caller-id", resp.Header.Get(fiber.HeaderXRequestID))
}
