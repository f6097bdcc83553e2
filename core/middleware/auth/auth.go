package auth

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the API key middleware.
type Config struct {
	// ApiKey is the shared secret; an empty key disables the check.
	ApiKey string
}

// Header is the request header carrying the API key.
const Header = "X-API-Key"

// New creates a middleware that rejects requests without the configured API
// key. With no key configured the middleware is a pass-through, which keeps
// local single-player setups friction-free.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
