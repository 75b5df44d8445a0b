package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanager/internal/domain"
)

func setupSQLite(t *testing.T) domain.EventStore {
	t.Helper()
	db, err := Open(context.Background(), SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventStore(db, SQLite)
}

func TestSQLiteEventStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t)

	empty, err := store.Scan(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	first := testEvent("ev-1")
	second := testEvent("ev-2")
	second.Fullname = "Conf"
	second.SubmittedAt++
	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	all, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventSummary{first.Summary(), second.Summary()}, all)

	_, err = store.Get(ctx, "ev-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteEventStore_EventDateText(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t)

	for i, date := range []json.Number{"1554129229798.5", "9007199254740993", "1.554129229798E12", "-1"} {
		e := testEvent(fmt.Sprintf("ev-%d", i))
		e.EventDate = date
		require.NoError(t, store.Put(ctx, e))

		got, err := store.Get(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, date, got.EventDate)
	}
}

func TestSQLiteEventStore_PutUpserts(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t)

	e := testEvent("ev-1")
	require.NoError(t, store.Put(ctx, e))
	e.Description = "Updated"
	e.UpdatedAt += 1000
	require.NoError(t, store.Put(ctx, e))

	got, err := store.Get(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, e, got)

	all, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteEventStore_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t)
	require.NoError(t, store.Put(ctx, testEvent("ev-1")))

	require.NoError(t, store.Delete(ctx, "ev-1"))
	require.NoError(t, store.Delete(ctx, "ev-1"))

	_, err := store.Get(ctx, "ev-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	db, err := Open(context.Background(), SQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(context.Background(), db))
}
