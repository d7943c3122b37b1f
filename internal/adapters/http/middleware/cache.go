package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets public cache headers for successful GET responses
func CacheControl(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			seconds := strconv.Itoa(int(maxAge.Seconds()))
			c.Set("Cache-Control", "public, max-age="+seconds)
		}

		return err
	}
}

// CatalogCache returns cache middleware for the unit catalog and the
// event board, which only change through admin actions (5 minute cache)
func CatalogCache() fiber.Handler {
	return CacheControl(5 * time.Minute)
}

// NoCacheHeaders sets no-cache headers
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}

// PrivateCacheHeaders sets private cache headers (for user-specific data)
func PrivateCacheHeaders(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			seconds := strconv.Itoa(int(maxAge.Seconds()))
			c.Set("Cache-Control", "private, max-age="+seconds)
		}

		return err
	}
}
