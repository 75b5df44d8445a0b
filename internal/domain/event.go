package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Event is a submitted gathering. SubmittedAt and UpdatedAt are milliseconds since the Unix epoch.
// EventDate keeps the submitted JSON number text so any number round-trips unchanged.
type Event struct {
	ID          string      `json:"id" dynamodbav:"id"`
	Fullname    string      `json:"fullname" dynamodbav:"fullname"`
	Description string      `json:"description" dynamodbav:"description"`
	Organiser   string      `json:"organiser" dynamodbav:"organiser"`
	EventDate   json.Number `json:"event_date" dynamodbav:"-"`
	SubmittedAt int64       `json:"submittedAt" dynamodbav:"submittedAt"`
	UpdatedAt   int64       `json:"updatedAt" dynamodbav:"updatedAt"`
}

// EventSummary is the projection returned by list operations. Timestamps are left out.
// EventDate is written as a DynamoDB number attribute by the repository, not by tag.
type EventSummary struct {
	ID          string      `json:"id" dynamodbav:"id"`
	Fullname    string      `json:"fullname" dynamodbav:"fullname"`
	Description string      `json:"description" dynamodbav:"description"`
	Organiser   string      `json:"organiser" dynamodbav:"organiser"`
	EventDate   json.Number `json:"event_date" dynamodbav:"-"`
}

// SummaryAttributes lists the stored attributes that make up an EventSummary, in table order.
var SummaryAttributes = []string{"id", "fullname", "description", "organiser", "event_date"}

// NewEvent returns an Event built from a validated payload. submittedAt and updatedAt are both set to now.
func NewEvent(id string, p EventPayload, now time.Time) *Event {
	ts := now.UnixMilli()
	return &Event{
		ID:          id,
		Fullname:    p.Fullname,
		Description: p.Description,
		Organiser:   p.Organiser,
		EventDate:   p.EventDate,
		SubmittedAt: ts,
		UpdatedAt:   ts,
	}
}

// Summary projects the event onto the list view.
func (e Event) Summary() EventSummary {
	return EventSummary{
		ID:          e.ID,
		Fullname:    e.Fullname,
		Description: e.Description,
		Organiser:   e.Organiser,
		EventDate:   e.EventDate,
	}
}

// EventStore is the key-value table that owns every stored Event.
// Get returns ErrNotFound when no record has the key. Delete does not check existence.
type EventStore interface {
	Put(ctx context.Context, event *Event) error
	Scan(ctx context.Context) ([]EventSummary, error)
	Get(ctx context.Context, id string) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService validates requests and translates them into EventStore calls.
type EventService interface {
	Submit(ctx context.Context, payload []byte) (*Event, error)
	ListAll(ctx context.Context) ([]EventSummary, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	DeleteByID(ctx context.Context, id string) error
}
