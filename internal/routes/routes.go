package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/postmuse/backend/internal/handlers"
	"github.com/postmuse/backend/internal/middleware"
	"github.com/postmuse/backend/internal/services"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	draftHandler *handlers.DraftHandler,
	generateHandler *handlers.GenerateHandler,
	webhookHandler *handlers.WebhookHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General per-IP limiter. Login deliberately carries no extra
	// attempt limiting or lockout.
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public
	api.Post("/user", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Billing provider auth via shared secret, no bearer
	api.Post("/webhooks/billing", webhookHandler.HandleBilling)

	// Bearer-protected (raw API key), applied per route so the public
	// routes above stay untouched. Quota is enforced in the middleware,
	// so a maxed-out free account is locked out of all of these, not
	// just posting.
	apiKey := middleware.APIKeyRequired(authService)
	api.Get("/user", apiKey, authHandler.UserInfo)
	api.Post("/post", apiKey, postHandler.Create)
	api.Delete("/post/:id", apiKey, postHandler.Delete)
	api.Post("/draft", apiKey, draftHandler.Save)
	api.Get("/drafts", apiKey, draftHandler.List)
	api.Post("/generate", apiKey, generateHandler.Generate)
}
