package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/digital-house/community-service/internal/config"
)

// FeaturesHandler publishes the server-side feature flags so clients render the same
// surface the server enforces.
type FeaturesHandler struct {
	flags config.FeatureFlags
}

func NewFeaturesHandler(flags config.FeatureFlags) *FeaturesHandler {
	return &FeaturesHandler{flags: flags}
}

// List GET /features.
func (h *FeaturesHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.flags})
}
