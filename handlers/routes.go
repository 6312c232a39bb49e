package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const PaymentIntentPath = "/api/create-payment-intent"

// NewApp wires the payment routes into a Fiber app.
func NewApp(h *PaymentHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(CORS(h.Config))

	app.Get("/health", h.Health)
	// every method lands in the handler, which answers 405 itself
	app.All(PaymentIntentPath, h.CreatePaymentIntent)

	return app
}
