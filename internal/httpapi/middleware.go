package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"authkit/auth"
)

// RequireAuth guards a route with the bearer strategy. The raw token is read
// from the authorization header as-is; clients send the token string without
// a scheme prefix. On success the resolved identity is attached to the
// request context, on rejection the request short-circuits with 401 and the
// handler never runs.
func RequireAuth(auther *auth.Authenticator, logger auth.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)

		identity, err := auther.Verify(c.UserContext(), auth.StrategyBearer, auth.Credentials{Token: raw})
		if err != nil {
			if !auth.IsAuthRejected(err) {
				logger.Error("bearer verification error", "error", err)
				return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternal})
			}
			return unauthorized(c)
		}

		c.SetUserContext(auth.WithContext(c.UserContext(), identity))

		return c.Next()
	}
}
