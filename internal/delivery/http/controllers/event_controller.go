package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/delivery/respond"
	"eventmanager/internal/domain"
)

// SubmitEventRequest documents the POST /events body. The service reads the raw
// JSON so it can report wrong types per field.
type SubmitEventRequest struct {
	Fullname    string      `json:"fullname" example:"Hugo"`
	Description string      `json:"description" example:"Test"`
	Organiser   string      `json:"organiser" example:"Hugo"`
	EventDate   json.Number `json:"event_date" swaggertype:"number" example:"1554129229798"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit an event
// @Description Validates the body, assigns a time-based UUID and stores the event. submittedAt and updatedAt are set by the server.
// @Tags events
// @Accept json
// @Produce json
// @Param event body SubmitEventRequest true "Event data"
// @Success 200 {object} respond.SubmitBody
// @Failure 400 {object} respond.ErrorBody "code: bad_request"
// @Failure 413 {object} respond.ErrorBody "code: bad_request"
// @Failure 500 {object} respond.ErrorBody "code: internal_error"
// @Router /events [post]
func (c *EventController) Submit(w http.ResponseWriter, r *http.Request) {
	body, ok := helpers.ReadBody(w, r)
	if !ok {
		return
	}
	event, err := c.Service.Submit(r.Context(), body)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteResponse(w, respond.Submitted(event))
}

// ListAll godoc
// @Summary List events
// @Description Returns every stored event projected to id, fullname, description, organiser and event_date. Order is unspecified.
// @Tags events
// @Produce json
// @Success 200 {object} respond.ListBody
// @Failure 500 {object} respond.ErrorBody "code: internal_error"
// @Router /events [get]
func (c *EventController) ListAll(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListAll(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteResponse(w, respond.Listed(events))
}

// GetByID godoc
// @Summary Get an event by ID
// @Description Returns the full stored record, including submittedAt and updatedAt.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} respond.ErrorBody "code: bad_request"
// @Failure 404 {object} respond.ErrorBody "code: not_found"
// @Failure 500 {object} respond.ErrorBody "code: internal_error"
// @Router /event/{id} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteResponse(w, respond.Fetched(event))
}

// DeleteByID godoc
// @Summary Delete an event by ID
// @Description Removes the event. Deleting an id that does not exist also succeeds.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} respond.DeleteBody
// @Failure 400 {object} respond.ErrorBody "code: bad_request"
// @Failure 500 {object} respond.ErrorBody "code: internal_error"
// @Router /event/{id} [delete]
func (c *EventController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteByID(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteResponse(w, respond.Deleted(id))
}

func (c *EventController) fail(w http.ResponseWriter, r *http.Request, err error) {
	resp := respond.Error(err)
	if resp.Status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteResponse(w, resp)
}
