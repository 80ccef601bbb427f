package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesMatchingSubscriber(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventAll, 1)
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})

	select {
	case ev := <-ch:
		assert.Equal(t, EventInsert, ev.Type)
	default:
		t.Fatal("expected event delivered")
	}
}

func TestPublishFiltersByTable(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("sales", EventAll, 0)
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})
	assert.Empty(t, ch)
}

func TestPublishFiltersByEventType(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventDelete, 0)
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Table: "appointments", Type: EventUpdate, TeamID: 1})
	assert.Empty(t, ch)

	hub.Publish(Event{Table: "appointments", Type: EventDelete, TeamID: 1})
	assert.Len(t, ch, 1)
}

func TestPublishFiltersByTeam(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventAll, 2)
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})
	assert.Empty(t, ch)

	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 2})
	assert.Len(t, ch, 1)
}

func TestTeamZeroMatchesEveryTeam(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventAll, 0)
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})
	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 7})
	assert.Len(t, ch, 2)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventAll, 0)
	hub.Unsubscribe(id)

	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})
}

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe("appointments", EventAll, 0)
	defer hub.Unsubscribe(id)

	for i := 0; i < subscriptionBuffer+10; i++ {
		hub.Publish(Event{Table: "appointments", Type: EventInsert, TeamID: 1})
	}
	assert.Len(t, ch, subscriptionBuffer)
}
