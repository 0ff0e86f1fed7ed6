package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/api/http/handlers"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	HelpRequests   *handlers.HelpRequestsHandler
	Announcements  *handlers.AnnouncementsHandler
	Features       *handlers.FeaturesHandler
	AuthMiddleware *auth.AuthMiddleware
	Flags          config.FeatureFlags
	Metrics        *observability.Metrics
}

// NewApp builds the fiber app with the shared error envelope and global middlewares.
func NewApp(appName string, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ErrorHandler:          NewErrorHandler(logger, metrics),
	})
	RegisterMiddlewares(app, logger, metrics, timeout)
	return app
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
	app.Get("/features", cfg.Features.List)

	requireAuth := cfg.AuthMiddleware.Handle

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Get("/validate-reset-token", cfg.Auth.ValidateResetToken)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)
	authGroup.Get("/user", requireAuth, cfg.Auth.CurrentUser)
	authGroup.Post("/password/change", requireAuth, cfg.Auth.ChangePassword)

	help := app.Group("/help-requests", requireAuth)
	help.Post("/", cfg.HelpRequests.Create)
	help.Get("/", cfg.HelpRequests.List)
	help.Get("/mine", cfg.HelpRequests.ListMine)
	help.Post("/emergency", RequireFeature(cfg.Flags.EmergencyEndpoint), cfg.HelpRequests.CreateEmergency)
	help.Get("/:id", cfg.HelpRequests.Get)
	help.Post("/:id/respond", cfg.HelpRequests.Respond)
	help.Post("/:id/resolve", cfg.HelpRequests.Resolve)
	help.Post("/:id/close", cfg.HelpRequests.Close)
	help.Post("/:id/responses/:responseId/accept", cfg.HelpRequests.AcceptResponse)

	announcements := app.Group("/announcements", RequireFeature(cfg.Flags.Announcements))
	announcements.Get("/", cfg.Announcements.ListActive)
	staff := announcements.Group("", requireAuth, auth.RequireStaff())
	staff.Get("/all", cfg.Announcements.ListAll)
	staff.Post("/", cfg.Announcements.Create)
	staff.Put("/:id", cfg.Announcements.Update)
	staff.Delete("/:id", cfg.Announcements.Delete)
}
