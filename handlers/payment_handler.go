package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a2n2k3p4/lesson-payments/config"
	"github.com/a2n2k3p4/lesson-payments/models"
	"github.com/a2n2k3p4/lesson-payments/payments"
	"github.com/gofiber/fiber/v2"
)

const (
	errMethodNotAllowed = "Method not allowed"
	errMissingSecretKey = "Missing STRIPE_SECRET_KEY"
	errUnresolvedAmount = "Missing amount or unsupported packageCode"
	errServer           = "server_error"
)

// ProviderFactory builds a payment provider for one request.
type ProviderFactory func(cfg config.Config) payments.Provider

// StripeProviderFactory creates a Stripe client from the request's config.
func StripeProviderFactory(cfg config.Config) payments.Provider {
	return payments.NewStripeProvider(payments.StripeConfig{
		SecretKey: cfg.StripeSecretKey,
		APIBase:   cfg.StripeAPIBase,
	})
}

type PaymentHandler struct {
	Config      func() config.Config
	NewProvider ProviderFactory
}

func NewPaymentHandler(cfg func() config.Config, newProvider ProviderFactory) *PaymentHandler {
	return &PaymentHandler{Config: cfg, NewProvider: newProvider}
}

// Result is a transport independent response. A nil Body means no body.
type Result struct {
	Status int
	Body   interface{}
}

func errorResult(status int, msg string) Result {
	return Result{Status: status, Body: models.ErrorResponse{Error: msg}}
}

func (h *PaymentHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// CreatePaymentIntent is the Fiber entry point for /api/create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	res := h.Handle(c.UserContext(), c.Method(), c.Body())
	c.Status(res.Status)
	if res.Body == nil {
		return nil
	}
	return c.JSON(res.Body)
}

// Handle runs one request through pre-flight, method, credential and amount
// checks and, if all pass, exactly one provider call.
func (h *PaymentHandler) Handle(ctx context.Context, method string, body []byte) Result {
	return h.handle(ctx, method, func() ([]byte, error) { return body, nil })
}

// handle reads the body only once the request is known to be a POST with
// credentials configured, so body errors surface as server errors.
func (h *PaymentHandler) handle(ctx context.Context, method string, readBody func() ([]byte, error)) (res Result) {
	switch method {
	case http.MethodOptions:
		return Result{Status: http.StatusOK}
	case http.MethodPost:
	default:
		return errorResult(http.StatusMethodNotAllowed, errMethodNotAllowed)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("create-payment-intent: panic: %v", r)
			res = errorResult(http.StatusInternalServerError, errServer)
		}
	}()

	cfg := h.Config()
	if cfg.StripeSecretKey == "" {
		return errorResult(http.StatusInternalServerError, errMissingSecretKey)
	}

	body, err := readBody()
	if err != nil {
		return internalError(err)
	}
	res, err = h.createPaymentIntent(ctx, cfg, body)
	if err != nil {
		return internalError(err)
	}
	return res
}

func (h *PaymentHandler) createPaymentIntent(ctx context.Context, cfg config.Config, body []byte) (Result, error) {
	req, err := models.ParsePaymentIntentRequest(body)
	if err != nil {
		return Result{}, err
	}

	amount, ok := resolveAmount(req)
	if !ok {
		log.Printf("create-payment-intent: no amount and unsupported packageCode %q (known: %s)",
			req.PackageCode, strings.Join(models.PackageCodes(), ", "))
		return errorResult(http.StatusBadRequest, errUnresolvedAmount), nil
	}

	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	provider := h.NewProvider(cfg)
	pi, err := provider.CreatePaymentIntent(ctx, payments.ChargeRequest{
		Amount:                  amount,
		Currency:                currency,
		AutomaticPaymentMethods: true,
		Metadata:                buildMetadata(req),
	})
	if err != nil {
		return Result{}, err
	}
	if pi == nil {
		return Result{}, payments.ErrMissingClientSecret
	}
	log.Printf("create-payment-intent: created %s amount=%d currency=%s", pi.ID, amount, currency)

	return Result{
		Status: http.StatusOK,
		Body:   models.PaymentIntentResponse{ClientSecret: pi.ClientSecret},
	}, nil
}

// resolveAmount prefers an explicit positive amount over the package price.
func resolveAmount(req models.PaymentIntentRequest) (int64, bool) {
	if req.Amount.Positive() {
		return req.Amount.Value, true
	}
	if req.PackageCode != "" {
		return models.PackagePrice(req.PackageCode)
	}
	return 0, false
}

// buildMetadata copies caller metadata and then sets the booking fields,
// which always win over caller keys of the same name.
func buildMetadata(req models.PaymentIntentRequest) map[string]string {
	md := make(map[string]string, len(req.Metadata)+3)
	for k, v := range req.Metadata {
		md[k] = v
	}
	md["packageCode"] = req.PackageCode
	md["subject"] = req.Subject
	md["lessons"] = req.Lessons.String()
	return md
}

func internalError(err error) Result {
	log.Printf("create-payment-intent: %v", err)

	msg := payments.ErrorMessage(err)
	if msg == "" {
		msg = errServer
	}
	return errorResult(http.StatusInternalServerError, msg)
}
