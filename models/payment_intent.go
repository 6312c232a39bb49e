package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrency is used when the request does not name one.
const DefaultCurrency = "pln"

// PaymentIntentRequest is the payload from the booking frontend.
type PaymentIntentRequest struct {
	Amount      Amount            `json:"amount"`                // minor units (100 grosz = 1 PLN)
	Currency    string            `json:"currency,omitempty"`    // "pln"
	Metadata    Metadata          `json:"metadata,omitempty"`    // free-form, attached to the PaymentIntent
	PackageCode string            `json:"packageCode,omitempty"` // key into the price table, e.g. "single60"
	Subject     string            `json:"subject,omitempty"`
	Lessons     Lessons           `json:"lessons,omitempty"` // number or string
}

// PaymentIntentResponse is returned on success.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ParsePaymentIntentRequest decodes a request body. An empty body or JSON null
// yields an empty request. A body that is itself a JSON string is unwrapped
// and its content decoded as the request object.
func ParsePaymentIntentRequest(body []byte) (PaymentIntentRequest, error) {
	var req PaymentIntentRequest

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return req, nil
	}
	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
		return ParsePaymentIntentRequest([]byte(inner))
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

// Amount holds an optional charge amount in minor units. The frontend sends
// either a JSON number or a numeric string.
type Amount struct {
	Value int64
	Set   bool
}

// Positive reports whether an amount was sent and is usable for a charge.
func (a Amount) Positive() bool {
	return a.Set && a.Value > 0
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch vv := v.(type) {
	case float64:
		if vv != math.Trunc(vv) {
			return fmt.Errorf("amount must be a whole number of minor units, got %v", vv)
		}
		if vv >= math.MaxInt64 || vv < math.MinInt64 {
			return fmt.Errorf("amount out of range: %v", vv)
		}
		a.Value = int64(vv)
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %q", vv)
		}
		a.Value = n
	case bool:
		// false behaves like an absent amount; true is not a quantity.
		if vv {
			return fmt.Errorf("unexpected type for amount: %T", vv)
		}
		return nil
	default:
		return fmt.Errorf("unexpected type for amount: %T", vv)
	}
	a.Set = true
	return nil
}

// Metadata is caller supplied PaymentIntent metadata. Stripe stores strings
// only, so numbers and booleans are kept in their string form.
type Metadata map[string]string

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}

	md := make(Metadata, len(raw))
	for k, v := range raw {
		switch vv := v.(type) {
		case nil:
			md[k] = ""
		case string:
			md[k] = vv
		case float64:
			md[k] = strconv.FormatFloat(vv, 'f', -1, 64)
		case bool:
			md[k] = strconv.FormatBool(vv)
		default:
			return fmt.Errorf("unexpected type for metadata %q: %T", k, vv)
		}
	}
	*m = md
	return nil
}

// Lessons is the number of lessons in the booking, kept in the string form
// that ends up in PaymentIntent metadata.
type Lessons string

func (l *Lessons) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch vv := v.(type) {
	case nil:
		*l = ""
	case float64:
		if vv == 0 {
			*l = ""
			return nil
		}
		*l = Lessons(strconv.FormatFloat(vv, 'f', -1, 64))
	case string:
		*l = Lessons(vv)
	default:
		return fmt.Errorf("unexpected type for lessons: %T", vv)
	}
	return nil
}

func (l Lessons) String() string {
	return string(l)
}
