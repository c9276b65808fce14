package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pmtrack/backend/internal/policy"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := getClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// GetRoles extracts the role claim list from JWT claims in context.
func GetRoles(c *fiber.Ctx) []string {
	claims, err := getClaims(c)
	if err != nil {
		return nil
	}

	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}

// CallerFromContext builds the policy caller for the current request.
// Requests that never passed JWT verification yield an unauthenticated caller.
func CallerFromContext(c *fiber.Ctx) policy.Caller {
	userID, err := GetUserID(c)
	if err != nil {
		return policy.Caller{}
	}
	return policy.Caller{
		ID:            userID,
		Roles:         GetRoles(c),
		Authenticated: true,
	}
}

func getClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
