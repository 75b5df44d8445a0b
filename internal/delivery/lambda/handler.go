// Package lambda serves the event operations as API Gateway proxy integrations.
package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"eventmanager/internal/delivery/respond"
	"eventmanager/internal/domain"
)

// API Gateway resource templates routed by Handle.
const (
	ResourceEvents = "/events"
	ResourceEvent  = "/event/{id}"
)

// Handler adapts API Gateway proxy requests to the event service.
type Handler struct {
	Logger  *slog.Logger
	Service domain.EventService
}

// NewHandler returns a Handler that logs through logger.
func NewHandler(logger *slog.Logger, svc domain.EventService) *Handler {
	return &Handler{Logger: logger, Service: svc}
}

// Handle dispatches on resource and method so a single function can back every route.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.Resource {
	case ResourceEvents:
		switch req.HTTPMethod {
		case http.MethodPost:
			return h.Submit(ctx, req)
		case http.MethodGet:
			return h.ListAll(ctx, req)
		}
	case ResourceEvent:
		switch req.HTTPMethod {
		case http.MethodGet:
			return h.GetByID(ctx, req)
		case http.MethodDelete:
			return h.DeleteByID(ctx, req)
		}
	default:
		return h.write(ctx, respond.Response{
			Status: http.StatusNotFound,
			Body:   respond.ErrorBody{Code: respond.ErrCodeNotFound, Message: "no route for " + req.Resource},
		}), nil
	}
	return h.write(ctx, respond.Response{
		Status: http.StatusMethodNotAllowed,
		Body:   respond.ErrorBody{Code: respond.ErrCodeBadRequest, Message: req.HTTPMethod + " not allowed on " + req.Resource},
	}), nil
}

func (h *Handler) Submit(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return h.fail(ctx, req, domain.NewValidationError("request body is not valid base64")), nil
		}
		body = decoded
	}
	event, err := h.Service.Submit(ctx, body)
	if err != nil {
		return h.fail(ctx, req, err), nil
	}
	return h.write(ctx, respond.Submitted(event)), nil
}

func (h *Handler) ListAll(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	list, err := h.Service.ListAll(ctx)
	if err != nil {
		return h.fail(ctx, req, err), nil
	}
	return h.write(ctx, respond.Listed(list)), nil
}

func (h *Handler) GetByID(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	event, err := h.Service.GetByID(ctx, req.PathParameters["id"])
	if err != nil {
		return h.fail(ctx, req, err), nil
	}
	return h.write(ctx, respond.Fetched(event)), nil
}

func (h *Handler) DeleteByID(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.PathParameters["id"]
	if err := h.Service.DeleteByID(ctx, id); err != nil {
		return h.fail(ctx, req, err), nil
	}
	return h.write(ctx, respond.Deleted(id)), nil
}

func (h *Handler) fail(ctx context.Context, req events.APIGatewayProxyRequest, err error) events.APIGatewayProxyResponse {
	resp := respond.Error(err)
	if resp.Status >= http.StatusInternalServerError {
		h.Logger.ErrorContext(ctx, "request failed", "resource", req.Resource, "method", req.HTTPMethod, "err", err)
	}
	return h.write(ctx, resp)
}

func (h *Handler) write(ctx context.Context, resp respond.Response) events.APIGatewayProxyResponse {
	body, err := json.Marshal(resp.Body)
	if err != nil {
		h.Logger.ErrorContext(ctx, "encode response", "err", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"code":"internal_error","message":"Internal server error."}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.Status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
