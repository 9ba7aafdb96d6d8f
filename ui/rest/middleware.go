package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rozanhaisyam/wablas-api-bolt/config"
)

// RequireAuth rejects JSON endpoints until a credential is configured.
func RequireAuth(store *config.GatewayStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.Authenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return c.Next()
	}
}
