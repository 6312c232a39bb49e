package main

import (
	"log"

	"github.com/a2n2k3p4/lesson-payments/config"
	"github.com/a2n2k3p4/lesson-payments/handlers"
)

func main() {
	cfg := config.Load()

	// Secret is read per request; warn early so a bad deploy is visible in logs.
	if cfg().StripeSecretKey == "" {
		log.Println("STRIPE_SECRET_KEY is not set; payment intent requests will fail")
	}

	paymentHandler := handlers.NewPaymentHandler(cfg, handlers.StripeProviderFactory)
	app := handlers.NewApp(paymentHandler)

	port := cfg().Port
	log.Printf("Server running on http://localhost:%s", port)
	log.Fatal(app.Listen(":" + port))
}
