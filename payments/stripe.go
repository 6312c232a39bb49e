package payments

import (
	"context"
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeConfig configures a StripeProvider.
type StripeConfig struct {
	SecretKey  string
	APIBase    string       // empty means api.stripe.com
	HTTPClient *http.Client // nil means stripe-go's default client
}

// StripeProvider creates PaymentIntents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(cfg StripeConfig) *StripeProvider {
	noRetries := int64(0)
	backendConfig := func() *stripe.BackendConfig {
		return &stripe.BackendConfig{
			HTTPClient:        cfg.HTTPClient,
			MaxNetworkRetries: &noRetries,
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
		}
	}

	apiConfig := backendConfig()
	if cfg.APIBase != "" {
		apiConfig.URL = stripe.String(cfg.APIBase)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, apiConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig()),
	}
	return &StripeProvider{api: client.New(cfg.SecretKey, backends)}
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	if req.AutomaticPaymentMethods {
		params.AutomaticPaymentMethods = &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		}
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	if pi.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}
	return &ChargeResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ErrorMessage extracts the message shown to the caller. Stripe API errors
// carry a human readable Msg; anything else falls back to Error().
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.Msg
	}
	return err.Error()
}
