package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

const (
	upsertEventQuery = `
		INSERT INTO events (id, fullname, description, organiser, event_date, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			fullname = excluded.fullname,
			description = excluded.description,
			organiser = excluded.organiser,
			event_date = excluded.event_date,
			submitted_at = excluded.submitted_at,
			updated_at = excluded.updated_at
	`
	scanEventsQuery = `
		SELECT id, fullname, description, organiser, event_date
		FROM events
		ORDER BY submitted_at, id
	`
	getEventQuery = `
		SELECT id, fullname, description, organiser, event_date, submitted_at, updated_at
		FROM events
		WHERE id = $1
	`
	deleteEventQuery = `DELETE FROM events WHERE id = $1`
)

type eventStore struct {
	DB *sql.DB

	upsert, scan, get, del string
}

// NewEventStore returns an EventStore over the events table using the dialect's placeholders.
func NewEventStore(db *sql.DB, d Dialect) domain.EventStore {
	return &eventStore{
		DB:     db,
		upsert: d.Rebind(upsertEventQuery),
		scan:   d.Rebind(scanEventsQuery),
		get:    d.Rebind(getEventQuery),
		del:    d.Rebind(deleteEventQuery),
	}
}

func (r *eventStore) Put(ctx context.Context, e *domain.Event) error {
	_, err := r.DB.ExecContext(ctx, r.upsert,
		e.ID, e.Fullname, e.Description, e.Organiser, e.EventDate.String(), e.SubmittedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *eventStore) Scan(ctx context.Context) ([]domain.EventSummary, error) {
	rows, err := r.DB.QueryContext(ctx, r.scan)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()
	events := make([]domain.EventSummary, 0)
	for rows.Next() {
		var (
			e    domain.EventSummary
			date string
		)
		if err := rows.Scan(&e.ID, &e.Fullname, &e.Description, &e.Organiser, &date); err != nil {
			return nil, err
		}
		e.EventDate = json.Number(date)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventStore) Get(ctx context.Context, id string) (*domain.Event, error) {
	e := &domain.Event{}
	var date string
	err := r.DB.QueryRowContext(ctx, r.get, id).Scan(
		&e.ID, &e.Fullname, &e.Description, &e.Organiser, &date, &e.SubmittedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.EventDate = json.Number(date)
	return e, nil
}

// Delete does not report whether a row existed.
func (r *eventStore) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, r.del, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
