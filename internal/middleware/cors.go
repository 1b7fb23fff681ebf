package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v3"
)

// AllowedMethods is advertised to browsers in preflight responses.
const AllowedMethods = "GET, POST, PATCH, DELETE"

// OriginAllowed reports whether a request with the given Origin header may be
// answered cross-origin. An empty origin is a same-origin or non-browser request.
func OriginAllowed(origin string, accepted []string) bool {
	return origin == "" || slices.Contains(accepted, origin)
}

// CORS echoes the request Origin back in Access-Control-Allow-Origin when it
// belongs to the accepted list. Other origins get no header and the browser
// enforces the same-origin policy itself.
func CORS(accepted []string) fiber.Handler {
	return func(c fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin != "" && OriginAllowed(origin, accepted) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Append(fiber.HeaderVary, fiber.HeaderOrigin)
		}
		return c.Next()
	}
}

// Preflight answers OPTIONS requests for a single movie.
func Preflight(accepted []string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if OriginAllowed(c.Get(fiber.HeaderOrigin), accepted) {
			c.Set(fiber.HeaderAccessControlAllowMethods, AllowedMethods)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
