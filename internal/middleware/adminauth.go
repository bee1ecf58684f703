package middleware

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const (
	adminUsernameHeader = "X-Admin-Username"
	adminPasswordHeader = "X-Admin-Password"
)

// AdminAuthenticator verifies administrator credentials against the document.
type AdminAuthenticator func(ctx context.Context, username, password string) error

// AdminGuard protects administrator routes. The portal has no session or
// token mechanism, so each request re-sends the credential pair in headers
// and the guard checks it against the stored administrator record.
func AdminGuard(authenticate AdminAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Get(adminUsernameHeader)
		password := c.Get(adminPasswordHeader)
		if username == "" || password == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing admin credentials")
		}
		if err := authenticate(c.UserContext(), username, password); err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return c.Next()
	}
}
