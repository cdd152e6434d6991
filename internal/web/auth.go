package web

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/web/handler"
	"github.com/linkdeck/linkdeck/internal/web/handler/admin/editor"
	analyticsapi "github.com/linkdeck/linkdeck/internal/web/handler/api/analytics"
)

// TokenCookie carries the admin token between editor page loads and its API
// calls once it was presented via the token query parameter.
const TokenCookie = "linkdeck_token"

// TokenMiddleware guards the editor and the API behind the configured admin
// token. With no token configured everything stays open (single-user setups
// behind their own perimeter). The public page and the tracker's visit POST
// are always open.
func TokenMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := cfg.Webserver.AdminToken
		if token == "" || !isGuarded(c) {
			return c.Next()
		}

		// a token in the query is persisted as a cookie so the editor's
		// fetches inherit it
		if q := c.Query("token"); q != "" {
			if !tokenMatch(q, token) {
				return fiber.ErrUnauthorized
			}

			c.Cookie(&fiber.Cookie{
				Name:     TokenCookie,
				Value:    q,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteStrictMode,
			})

			return c.Next()
		}

		if tokenMatch(presentedToken(c), token) {
			return c.Next()
		}

		return fiber.ErrUnauthorized
	}
}

// isGuarded reports whether the request needs the admin token.
func isGuarded(c *fiber.Ctx) bool {
	p := c.Path()

	if strings.HasPrefix(p, editor.Path) {
		return true
	}

	if strings.HasPrefix(p, handler.APIPath) {
		// the tracker records visits unauthenticated
		if p == analyticsapi.Path && c.Method() == fiber.MethodPost {
			return false
		}

		return true
	}

	return false
}

// presentedToken extracts the token from the Authorization header or the
// cookie set on a previous visit.
func presentedToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return rest
	}

	return c.Cookies(TokenCookie)
}

func tokenMatch(presented, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}
