// Package payments talks to the payment provider on behalf of the HTTP handlers.
package payments

import (
	"context"
	"errors"
)

// ChargeRequest is what the handler asks the provider to create.
type ChargeRequest struct {
	Amount                  int64  // minor units, always > 0
	Currency                string // ISO 4217, lower case
	AutomaticPaymentMethods bool
	Metadata                map[string]string
}

// ChargeResult is the part of the created payment intent the caller needs.
type ChargeResult struct {
	ID           string
	ClientSecret string
}

// Provider creates payment intents. Implementations must not retry on their own.
type Provider interface {
	CreatePaymentIntent(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ErrMissingClientSecret is returned when the provider answers without a secret.
var ErrMissingClientSecret = errors.New("payment intent has no client_secret")
