package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/a2n2k3p4/lesson-payments/config"
	"github.com/a2n2k3p4/lesson-payments/handlers"
)

func main() {
	paymentHandler := handlers.NewPaymentHandler(config.Load(), handlers.StripeProviderFactory)
	lambda.Start(paymentHandler.HandleAPIGateway)
}
