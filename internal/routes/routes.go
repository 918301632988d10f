package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers bundles everything the route table dispatches to.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	User      *handlers.UserHandler
	Report    *handlers.ReportHandler
	Inbox     *handlers.InboxHandler
	Dashboard *handlers.DashboardHandler
	FAQ       *handlers.FAQHandler
	Health    *handlers.HealthHandler
}

// Limits are requests per minute per IP. Zero disables the limiter.
type Limits struct {
	API   int
	Login int
}

var DefaultLimits = Limits{API: 120, Login: 10}

func Setup(app *fiber.App, cfg *config.Config, auth middleware.SessionAuthorizer, h Handlers, limits Limits) {
	api := app.Group("/api")
	if limits.API > 0 {
		api.Use(rateLimiter(limits.API))
	}

	api.Get("/health", h.Health.Check)
	api.Get("/faqs", h.FAQ.List)

	login := []fiber.Handler{h.Auth.Login}
	if limits.Login > 0 {
		login = append([]fiber.Handler{rateLimiter(limits.Login)}, login...)
	}
	api.Post("/auth/login", login...)

	// Guards go on each route so public routes never see the JWT middleware.
	session := middleware.Protected(cfg, auth)
	guard := func(hs ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, session...), hs...)
	}
	managers := middleware.RoleRequired(models.RoleAdmin, models.RoleMaster)
	staff := middleware.RoleRequired(models.RoleStaff)

	api.Post("/auth/logout", guard(h.Auth.Logout)...)
	api.Get("/auth/me", guard(h.Auth.Me)...)
	api.Put("/profile", guard(h.Profile.Update)...)

	api.Get("/users", guard(managers, h.User.List)...)
	api.Get("/users/assignable", guard(managers, h.User.Assignable)...)
	api.Post("/users", guard(managers, h.User.Create)...)
	api.Put("/users/:id", guard(managers, h.User.Update)...)
	api.Delete("/users/:id", guard(managers, h.User.Delete)...)

	api.Get("/reports", guard(h.Report.List)...)
	api.Get("/reports/:id", guard(h.Report.Get)...)
	api.Post("/reports", guard(staff, h.Report.Create)...)
	api.Patch("/reports/:id", guard(managers, h.Report.Update)...)

	api.Get("/notifications", guard(h.Inbox.Notifications)...)
	api.Put("/notifications/:id/read", guard(h.Inbox.MarkRead)...)
	api.Get("/chat", guard(h.Inbox.Messages)...)
	api.Post("/chat", guard(h.Inbox.Send)...)

	api.Get("/dashboard", guard(h.Dashboard.Get)...)
}

func rateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
