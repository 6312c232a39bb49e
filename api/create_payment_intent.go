// Package handler is the Vercel serverless function for /api/create-payment-intent.
package handler

import (
	"net/http"

	"github.com/a2n2k3p4/lesson-payments/config"
	"github.com/a2n2k3p4/lesson-payments/handlers"
)

var paymentHandler = handlers.NewPaymentHandler(config.Load(), handlers.StripeProviderFactory)

// Handler is the entry point Vercel calls for every request.
func Handler(w http.ResponseWriter, r *http.Request) {
	paymentHandler.ServeHTTP(w, r)
}
