package handlers

import (
	"github.com/a2n2k3p4/lesson-payments/config"
	"github.com/gofiber/fiber/v2"
)

const (
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// CORSHeaders returns the headers attached to every response.
func CORSHeaders(origin string) map[string]string {
	if origin == "" {
		origin = config.DefaultCORSOrigin
	}
	return map[string]string{
		fiber.HeaderAccessControlAllowOrigin:  origin,
		fiber.HeaderAccessControlAllowMethods: corsAllowMethods,
		fiber.HeaderAccessControlAllowHeaders: corsAllowHeaders,
	}
}

// CORS sets the CORS headers before the route runs, so errors and pre-flight
// answers carry them too. fiber's cors middleware only sends allow-methods on
// pre-flight and answers it with 204, which browsers here do not expect.
func CORS(cfg func() config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for k, v := range CORSHeaders(cfg().CORSAllowedOrigin) {
			c.Set(k, v)
		}
		return c.Next()
	}
}
