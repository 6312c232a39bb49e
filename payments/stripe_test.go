package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stripeRecorder struct {
	mu    sync.Mutex
	form  url.Values
	calls int
}

func (r *stripeRecorder) Form() url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.form
}

func (r *stripeRecorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newStripeTestServer(t *testing.T, status int, body string) (*httptest.Server, *stripeRecorder) {
	t.Helper()

	rec := &stripeRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())

		rec.mu.Lock()
		rec.calls++
		rec.form = r.PostForm
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestStripeProviderCreatePaymentIntent(t *testing.T) {
	srv, rec := newStripeTestServer(t, http.StatusOK, `{
		"id": "pi_123",
		"object": "payment_intent",
		"amount": 6000,
		"currency": "pln",
		"client_secret": "pi_123_secret_abc"
	}`)

	provider := NewStripeProvider(StripeConfig{SecretKey: "sk_test_123", APIBase: srv.URL})
	res, err := provider.CreatePaymentIntent(context.Background(), ChargeRequest{
		Amount:                  6000,
		Currency:                "pln",
		AutomaticPaymentMethods: true,
		Metadata: map[string]string{
			"packageCode": "trial",
			"subject":     "Math",
			"lessons":     "",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", res.ID)
	assert.Equal(t, "pi_123_secret_abc", res.ClientSecret)
	assert.Equal(t, 1, rec.Calls())

	form := rec.Form()
	assert.Equal(t, "6000", form.Get("amount"))
	assert.Equal(t, "pln", form.Get("currency"))
	assert.Equal(t, "true", form.Get("automatic_payment_methods[enabled]"))
	assert.Equal(t, "trial", form.Get("metadata[packageCode]"))
	assert.Equal(t, "Math", form.Get("metadata[subject]"))
}

func TestStripeProviderCardDeclined(t *testing.T) {
	srv, rec := newStripeTestServer(t, http.StatusPaymentRequired, `{
		"error": {
			"type": "card_error",
			"code": "card_declined",
			"message": "Your card was declined."
		}
	}`)

	provider := NewStripeProvider(StripeConfig{SecretKey: "sk_test_123", APIBase: srv.URL})
	_, err := provider.CreatePaymentIntent(context.Background(), ChargeRequest{
		Amount:                  11000,
		Currency:                "pln",
		AutomaticPaymentMethods: true,
	})
	require.Error(t, err)

	assert.Equal(t, "Your card was declined.", ErrorMessage(err))
	assert.Equal(t, 1, rec.Calls())
}

func TestStripeProviderMissingClientSecret(t *testing.T) {
	srv, _ := newStripeTestServer(t, http.StatusOK, `{"id":"pi_456","object":"payment_intent"}`)

	provider := NewStripeProvider(StripeConfig{SecretKey: "sk_test_123", APIBase: srv.URL})
	_, err := provider.CreatePaymentIntent(context.Background(), ChargeRequest{Amount: 1, Currency: "pln"})

	require.ErrorIs(t, err, ErrMissingClientSecret)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "card_declined", ErrorMessage(errors.New("card_declined")))
	assert.Equal(t, "", ErrorMessage(errors.New("")))
}
