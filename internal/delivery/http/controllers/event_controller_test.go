package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanager/internal/delivery/respond"
	"eventmanager/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	submitErr    error
	listErr      error
	getErr       error
	deleteErr    error
	events       []domain.EventSummary
	eventByID    map[string]*domain.Event
	lastPayload  []byte
	lastDeleteID string
	lastGetID    string
}

func (f *fakeEventService) Submit(_ context.Context, payload []byte) (*domain.Event, error) {
	f.lastPayload = payload
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Event{ID: "ev-created", Fullname: "Hugo"}, nil
}

func (f *fakeEventService) ListAll(context.Context) ([]domain.EventSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventService) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.eventByID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) DeleteByID(_ context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body), "error response must be valid JSON")
	return body
}

func TestEventController_Submit(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fakeErr     error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "success",
			body:       `{"fullname":"Hugo","description":"Test","organiser":"Hugo","event_date":1554129229798}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "validation error",
			body:        `{"fullname":42}`,
			fakeErr:     domain.NewValidationError("fullname must be a string"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    respond.ErrCodeBadRequest,
			wantMessage: "fullname must be a string",
		},
		{
			name:        "storage error",
			body:        `{"fullname":"Hugo"}`,
			fakeErr:     &domain.StorageError{Op: domain.OpSubmit, Message: "Unable to submit event with name Hugo", Err: errors.New("db error")},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    respond.ErrCodeInternalError,
			wantMessage: "Unable to submit event with name Hugo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{submitErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.body, string(fake.lastPayload), "raw body is passed through")
			if tt.wantStatus == http.StatusOK {
				var body respond.SubmitBody
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "ev-created", body.EventID)
				assert.Equal(t, "Successfully submitted event with name Hugo", body.Message)
				return
			}
			assert.Equal(t, respond.ErrorBody{Code: tt.wantCode, Message: tt.wantMessage}, decodeError(t, rr))
		})
	}
}

func TestEventController_Submit_BodyTooLarge(t *testing.T) {
	fake := &fakeEventService{}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(make([]byte, 2<<20)))
	rr := httptest.NewRecorder()

	ctrl.Submit(rr, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Nil(t, fake.lastPayload, "service must not be called")
}

func TestEventController_ListAll(t *testing.T) {
	tests := []struct {
		name       string
		events     []domain.EventSummary
		fakeErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "empty",
			wantStatus: http.StatusOK,
			wantBody:   `{"events":[]}`,
		},
		{
			name:       "projected events",
			events:     []domain.EventSummary{{ID: "ev-1", Fullname: "Hugo", Description: "Test", Organiser: "Hugo", EventDate: "1554129229798"}},
			wantStatus: http.StatusOK,
			wantBody:   `{"events":[{"id":"ev-1","fullname":"Hugo","description":"Test","organiser":"Hugo","event_date":1554129229798}]}`,
		},
		{
			name:       "storage error",
			fakeErr:    &domain.StorageError{Op: domain.OpList, Message: "Couldn't list events.", Err: errors.New("db error")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"internal_error","message":"Couldn't list events."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{events: tt.events, listErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			rr := httptest.NewRecorder()

			ctrl.ListAll(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestEventController_GetByID(t *testing.T) {
	stored := &domain.Event{
		ID:          "ev-123",
		Fullname:    "Hugo",
		Description: "Test",
		Organiser:   "Hugo",
		EventDate:   "1554129229798",
		SubmittedAt: 1554129300000,
		UpdatedAt:   1554129300000,
	}

	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", eventID: "ev-123", wantStatus: http.StatusOK},
		{name: "not found", eventID: "ev-missing", wantStatus: http.StatusNotFound, wantCode: respond.ErrCodeNotFound},
		{
			name:       "missing id",
			eventID:    "",
			fakeErr:    domain.NewValidationError("id is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   respond.ErrCodeBadRequest,
		},
		{
			name:       "storage error",
			eventID:    "ev-123",
			fakeErr:    &domain.StorageError{Op: domain.OpFetch, Message: "Couldn't fetch event.", Err: errors.New("db error")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   respond.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{getErr: tt.fakeErr, eventByID: map[string]*domain.Event{"ev-123": stored}}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/event/"+tt.eventID, nil)
			if tt.eventID != "" {
				req.SetPathValue("id", tt.eventID)
			}
			rr := httptest.NewRecorder()

			ctrl.GetByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.eventID, fake.lastGetID)
			if tt.wantStatus == http.StatusOK {
				var got domain.Event
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *stored, got)
				return
			}
			assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
		})
	}
}

func TestEventController_DeleteByID(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			eventID:    "ev-123",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Deleted item with id ev-123","id":"ev-123"}`,
		},
		{
			name:       "storage error",
			eventID:    "ev-123",
			fakeErr:    &domain.StorageError{Op: domain.OpDelete, Message: "Couldn't delete event.", Err: errors.New("db error")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"internal_error","message":"Couldn't delete event."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/event/"+tt.eventID, nil)
			req.SetPathValue("id", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.DeleteByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.eventID, fake.lastDeleteID)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
