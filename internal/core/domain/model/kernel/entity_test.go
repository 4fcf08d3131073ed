package kernel_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kernel.EventBase
	name string
}

func (e testEvent) EventName() string { return e.name }

func newTestEvent(name string) testEvent {
	return testEvent{EventBase: kernel.NewEventBase(), name: name}
}

func TestNewEntity(t *testing.T) {
	t.Run("fresh entity has identity and token but no update timestamp", func(t *testing.T) {
		e := kernel.NewEntity()

		require.NoError(t, e.ID().Validate())
		assert.NotEmpty(t, e.ConcurrencyToken())
		assert.Equal(t, e.ConcurrencyToken(), e.TokenAsLoaded())
		assert.Nil(t, e.UpdatedAt())
		assert.False(t, e.CreatedAt().IsZero())
		assert.Empty(t, e.PendingEvents())
	})
}

func TestRestoreEntity(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC().Add(-time.Minute)

		e, err := kernel.RestoreEntity(id, createdAt, &updatedAt, "token-1")

		require.NoError(t, err)
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, createdAt, e.CreatedAt())
		assert.Equal(t, &updatedAt, e.UpdatedAt())
		assert.Equal(t, "token-1", e.ConcurrencyToken())
		assert.Equal(t, "token-1", e.TokenAsLoaded())
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.RestoreEntity(id, time.Now(), nil, "token-1")

		require.Error(t, err)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := kernel.RestoreEntity(kernel.NewUUID(), time.Now(), nil, "")

		require.Error(t, err)
	})
}

func TestEntity_MarkModified(t *testing.T) {
	t.Run("regenerates token and stamps update time, keeping loaded token", func(t *testing.T) {
		e := kernel.NewEntity()
		loaded := e.TokenAsLoaded()

		e.MarkModified()

		require.NotNil(t, e.UpdatedAt())
		assert.NotEqual(t, loaded, e.ConcurrencyToken())
		assert.Equal(t, loaded, e.TokenAsLoaded())
	})

	t.Run("every mutation produces a distinct token", func(t *testing.T) {
		e := kernel.NewEntity()

		e.MarkModified()
		first := e.ConcurrencyToken()
		e.MarkModified()
		second := e.ConcurrencyToken()

		assert.NotEqual(t, first, second)
	})
}

func TestEntity_Events(t *testing.T) {
	t.Run("records events in order and clears them", func(t *testing.T) {
		e := kernel.NewEntity()

		e.RecordEvent(newTestEvent("first"))
		e.RecordEvent(newTestEvent("second"))

		events := e.PendingEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "first", events[0].EventName())
		assert.Equal(t, "second", events[1].EventName())

		e.ClearPendingEvents()
		assert.Empty(t, e.PendingEvents())
	})

	t.Run("pending events are a copy", func(t *testing.T) {
		e := kernel.NewEntity()
		e.RecordEvent(newTestEvent("only"))

		events := e.PendingEvents()
		events[0] = newTestEvent("overwritten")

		assert.Equal(t, "only", e.PendingEvents()[0].EventName())
	})
}
