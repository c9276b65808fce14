package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/pmtrack/backend/internal/config"
	"github.com/pmtrack/backend/internal/handlers"
	"github.com/pmtrack/backend/internal/middleware"
	"github.com/pmtrack/backend/internal/policy"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	milestoneHandler *handlers.MilestoneHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	jwt := middleware.JWTProtected(cfg)

	// Projects
	projects := api.Group("/projects", jwt)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.Get)
	projects.Post("/", projectHandler.Create)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", middleware.RequirePolicy(policy.OpProjectDelete), projectHandler.Delete)
	projects.Post("/:id/attachments", projectHandler.UploadAttachment)

	// Milestones
	milestones := api.Group("/milestones", jwt)
	milestones.Get("/project/:projectId", milestoneHandler.ListByProject)
	milestones.Get("/:id", milestoneHandler.Get)
	milestones.Post("/", milestoneHandler.Create)
	milestones.Put("/:id", milestoneHandler.Update)
	milestones.Post("/:id/approve", middleware.RequirePolicy(policy.OpMilestoneApprove), milestoneHandler.Approve)
	milestones.Delete("/:id", middleware.RequirePolicy(policy.OpMilestoneDelete), milestoneHandler.Delete)

	// User management — Admin only
	users := api.Group("/users", jwt, middleware.RequirePolicy(policy.OpUserManage))
	users.Get("/", userHandler.List)
	users.Get("/roles", userHandler.ListRoles)
	users.Get("/:id", userHandler.Get)
	users.Post("/", userHandler.Create)
	users.Put("/:id/roles", userHandler.UpdateRoles)
	users.Delete("/:id", userHandler.Delete)
}
