package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventmanager/internal/domain"
)

type eventService struct {
	store          domain.EventStore
	logger         *slog.Logger
	contextTimeout time.Duration
	newID          func() (uuid.UUID, error)
	now            func() time.Time
}

// NewEventService returns an EventService backed by store. Each call runs under timeout.
func NewEventService(store domain.EventStore, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		store:          store,
		logger:         logger,
		contextTimeout: timeout,
		newID:          uuid.NewUUID,
		now:            time.Now,
	}
}

func (s *eventService) Submit(ctx context.Context, payload []byte) (*domain.Event, error) {
	p, err := domain.ParseEventPayload(payload)
	if err != nil {
		s.logger.WarnContext(ctx, "validation failed", "err", err)
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate event id: %w", err)
	}
	event := domain.NewEvent(id.String(), p, s.now())

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.logger.DebugContext(ctx, "submitting event", "id", event.ID)
	if err := s.store.Put(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "put event", "id", event.ID, "err", err)
		return nil, &domain.StorageError{
			Op:      domain.OpSubmit,
			Message: fmt.Sprintf("Unable to submit event with name %s", p.Fullname),
			Err:     err,
		}
	}
	return event, nil
}

func (s *eventService) ListAll(ctx context.Context) ([]domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.Scan(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scan events", "err", err)
		return nil, &domain.StorageError{Op: domain.OpList, Message: "Couldn't list events.", Err: err}
	}
	if events == nil {
		events = []domain.EventSummary{}
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.NewValidationError("id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "get event", "id", id, "err", err)
		return nil, &domain.StorageError{Op: domain.OpFetch, Message: "Couldn't fetch event.", Err: err}
	}
	return event, nil
}

func (s *eventService) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "delete event", "id", id, "err", err)
		return &domain.StorageError{Op: domain.OpDelete, Message: "Couldn't delete event.", Err: err}
	}
	return nil
}
