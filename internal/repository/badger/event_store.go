package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"eventmanager/internal/domain"
)

var eventPrefix = []byte("event:")

func eventKey(id string) []byte {
	return append(append([]byte{}, eventPrefix...), id...)
}

// EventStore keeps events in BadgerDB, one JSON value per "event:<id>" key.
type EventStore struct {
	db  *badger.DB
	log *slog.Logger
}

// NewEventStore wraps an open database. The caller owns db and closes it.
func NewEventStore(db *badger.DB, log *slog.Logger) *EventStore {
	return &EventStore{db: db, log: log}
}

// Open opens (or creates) a Badger database at path.
func Open(path string) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return db, nil
}

func (s *EventStore) Put(_ context.Context, e *domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(eventKey(e.ID), data)
	})
}

func (s *EventStore) Scan(ctx context.Context) ([]domain.EventSummary, error) {
	var events []domain.Event
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = eventPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(eventPrefix); it.ValidForPrefix(eventPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(v []byte) error {
				var e domain.Event
				if err := json.Unmarshal(v, &e); err != nil {
					return fmt.Errorf("unmarshal %s: %w", it.Item().Key(), err)
				}
				events = append(events, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	s.log.Debug("scanned events", "count", len(events))
	return lo.Map(events, func(e domain.Event, _ int) domain.EventSummary { return e.Summary() }), nil
}

func (s *EventStore) Get(_ context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(eventKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &e)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return &e, nil
}

// Delete removes the key. Badger writes a tombstone whether or not the key exists.
func (s *EventStore) Delete(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(eventKey(id))
	})
}
