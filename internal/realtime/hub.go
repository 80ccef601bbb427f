package realtime

import (
	"sync"

	"github.com/google/uuid"
)

const subscriptionBuffer = 64

type subscription struct {
	id     uuid.UUID
	table  string
	event  EventType
	teamID uint // 0 matches every team
	ch     chan Event
}

// Hub fans row-change events out to filtered subscribers. Publishing never
// blocks; a subscriber that falls behind loses events.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]*subscription)}
}

// Subscribe registers interest in changes to a table. Use EventAll for every
// change kind and teamID 0 for every team.
func (h *Hub) Subscribe(table string, event EventType, teamID uint) (uuid.UUID, <-chan Event) {
	sub := &subscription{
		id:     uuid.New(),
		table:  table,
		event:  event,
		teamID: teamID,
		ch:     make(chan Event, subscriptionBuffer),
	}
	h.mu.Lock()
	h.subs[sub.id] = sub
	h.mu.Unlock()
	return sub.id, sub.ch
}

// Unsubscribe removes the subscription and closes its channel.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()
	if ok {
		close(sub.ch)
	}
}

// Publish delivers the event to every matching subscriber.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if sub.table != ev.Table {
			continue
		}
		if sub.event != EventAll && sub.event != ev.Type {
			continue
		}
		if sub.teamID != 0 && sub.teamID != ev.TeamID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}
