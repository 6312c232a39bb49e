package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeHTTP(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		h := newLambdaHandler(nil, &fakeProvider{})
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, PaymentIntentPath, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("method not allowed", func(t *testing.T) {
		h := newLambdaHandler(testEnv, &fakeProvider{})
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PaymentIntentPath, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		provider := &fakeProvider{}
		h := newLambdaHandler(testEnv, provider)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, PaymentIntentPath, strings.NewReader(`{"packageCode":"trial"}`))
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"client_secret":"pi_test_secret"}`, w.Body.String())
		reqs := provider.Requests()
		require.Len(t, reqs, 1)
		assert.EqualValues(t, 6000, reqs[0].Amount)
	})
}
