package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofiber/fiber/v2"
)

// HandleAPIGateway serves the payment intent endpoint behind an API Gateway
// HTTP API (payload format 2.0).
func (h *PaymentHandler) HandleAPIGateway(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	res := h.handleAPIGateway(ctx, request)

	headers := CORSHeaders(h.Config().CORSAllowedOrigin)
	response := events.APIGatewayV2HTTPResponse{
		StatusCode: res.Status,
		Headers:    headers,
	}
	if res.Body == nil {
		return response, nil
	}

	body, err := json.Marshal(res.Body)
	if err != nil {
		res = internalError(fmt.Errorf("encode response: %w", err))
		body, _ = json.Marshal(res.Body)
		response.StatusCode = res.Status
	}
	headers[fiber.HeaderContentType] = fiber.MIMEApplicationJSON
	response.Body = string(body)
	return response, nil
}

func (h *PaymentHandler) handleAPIGateway(ctx context.Context, request events.APIGatewayV2HTTPRequest) Result {
	return h.handle(ctx, request.RequestContext.HTTP.Method, func() ([]byte, error) {
		if !request.IsBase64Encoded {
			return []byte(request.Body), nil
		}
		body, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return nil, fmt.Errorf("decode request body: %w", err)
		}
		return body, nil
	})
}
