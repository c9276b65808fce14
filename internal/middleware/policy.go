package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/identity"
	"github.com/pmtrack/backend/internal/policy"
)

// RequirePolicy gates a route group on the policy evaluator for operations
// that are purely role-based (no ownership input). Ownership-gated checks
// stay inside the services.
func RequirePolicy(op policy.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := identity.CallerFromContext(c)

		d := policy.Evaluate(caller, op, uuid.Nil)
		if d.Unauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !d.Allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: d.Reason,
			})
		}
		return c.Next()
	}
}
