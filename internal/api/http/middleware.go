package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/observability"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// Order matters: the request logger wraps the error middleware so it records the rendered status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err != nil {
				err = writeError(c, err, logger, metrics)
			}
		}()
		return c.Next()
	}
}

// NewErrorHandler renders errors raised before the middleware chain runs (body too large,
// malformed request line) with the same envelope.
func NewErrorHandler(logger *zap.Logger, metrics *observability.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, err, logger, metrics)
	}
}

func writeError(c *fiber.Ctx, err error, logger *zap.Logger, metrics *observability.Metrics) error {
	var domainErr *apperrors.DomainError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		domainErr = apperrors.FromStatus(fiberErr.Code, fiberErr.Message)
	} else {
		domainErr = apperrors.ToDomainError(err)
	}

	route := c.Path()
	if r := c.Route(); r != nil && r.Path != "/" {
		route = r.Path
	}
	metrics.RecordError(route, c.Method(), domainErr.Code)

	body := fiber.Map{
		"code":    domainErr.Code,
		"message": domainErr.Message,
	}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
		fields := []zap.Field{zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(domainErr)}
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}
		logger.Error("request failed", fields...)
	}
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": body})
}

// RequireFeature hides a route group behind a server-side flag. Disabled features answer
// NOT_FOUND as if the route did not exist.
func RequireFeature(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return apperrors.NewNotFound("route", nil)
		}
		return c.Next()
	}
}
