package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/postmuse/backend/internal/dto"
	"github.com/postmuse/backend/internal/models"
	"github.com/postmuse/backend/internal/services"
)

// APIKeyRequired resolves the bearer credential (the raw API key) to its
// user and enforces the free-tier quota before the handler runs. The
// resolved user is stored in Locals for the request's lifetime.
func APIKeyRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := bearerToken(c.Get("Authorization"))
		user, err := authService.Authorize(apiKey)
		if err != nil {
			if errors.Is(err, services.ErrQuotaExceeded) {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
					Error: true, Message: "Free tier limit reached",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid API key",
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by APIKeyRequired.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
