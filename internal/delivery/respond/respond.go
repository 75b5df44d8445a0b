// Package respond turns EventService results into status codes and JSON bodies.
// The HTTP and Lambda transports both write what it returns.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"eventmanager/internal/domain"
)

// Error codes carried in ErrorBody.Code.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// Response is a status code plus the value to encode as the JSON body.
type Response struct {
	Status int
	Body   any
}

// ErrorBody is returned for every failed request.
// swagger:model ErrorBody
type ErrorBody struct {
	Code    string `json:"code" example:"bad_request"`
	Message string `json:"message" example:"fullname is required"`
}

// SubmitBody acknowledges a stored event.
type SubmitBody struct {
	Message string `json:"message" example:"Successfully submitted event with name Hugo"`
	EventID string `json:"eventId" example:"6c84fb90-12c4-11e1-840d-7b25c5ee775a"`
}

// ListBody wraps the projected events.
type ListBody struct {
	Events []domain.EventSummary `json:"events"`
}

// DeleteBody acknowledges a delete, whether or not the id existed.
type DeleteBody struct {
	Message string `json:"message" example:"Deleted item with id 6c84fb90-12c4-11e1-840d-7b25c5ee775a"`
	ID      string `json:"id" example:"6c84fb90-12c4-11e1-840d-7b25c5ee775a"`
}

// Submitted acknowledges a stored event with 200 and its id.
func Submitted(e *domain.Event) Response {
	return Response{Status: http.StatusOK, Body: SubmitBody{
		Message: fmt.Sprintf("Successfully submitted event with name %s", e.Fullname),
		EventID: e.ID,
	}}
}

// Listed returns every summary with 200. An empty table gives an empty list.
func Listed(events []domain.EventSummary) Response {
	if events == nil {
		events = []domain.EventSummary{}
	}
	return Response{Status: http.StatusOK, Body: ListBody{Events: events}}
}

// Fetched returns the stored record itself, not wrapped.
func Fetched(e *domain.Event) Response {
	return Response{Status: http.StatusOK, Body: e}
}

// Deleted acknowledges a delete with 200.
func Deleted(id string) Response {
	return Response{Status: http.StatusOK, Body: DeleteBody{
		Message: fmt.Sprintf("Deleted item with id %s", id),
		ID:      id,
	}}
}

// Error maps a service error onto its response. Storage causes never reach the body.
func Error(err error) Response {
	var validationErr *domain.ValidationError
	var storageErr *domain.StorageError
	switch {
	case errors.As(err, &validationErr):
		return errorResponse(http.StatusBadRequest, ErrCodeBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		return errorResponse(http.StatusNotFound, ErrCodeNotFound, "Event not found.")
	case errors.As(err, &storageErr):
		return errorResponse(http.StatusInternalServerError, ErrCodeInternalError, storageErr.Message)
	default:
		return errorResponse(http.StatusInternalServerError, ErrCodeInternalError, "Internal server error.")
	}
}

func errorResponse(status int, code, message string) Response {
	return Response{Status: status, Body: ErrorBody{Code: code, Message: message}}
}
