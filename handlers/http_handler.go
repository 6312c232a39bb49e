package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// ServeHTTP serves the payment intent endpoint on plain net/http, for
// platforms such as Vercel that hand the function a ResponseWriter.
func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for k, v := range CORSHeaders(h.Config().CORSAllowedOrigin) {
		w.Header().Set(k, v)
	}

	res := h.handle(r.Context(), r.Method, func() ([]byte, error) {
		if r.Body == nil {
			return nil, nil
		}
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return body, nil
	})

	if res.Body == nil {
		w.WriteHeader(res.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	if err := json.NewEncoder(w).Encode(res.Body); err != nil {
		log.Printf("create-payment-intent: write response: %v", err)
	}
}
