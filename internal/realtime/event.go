package realtime

// EventType mirrors the row-change kinds delivered to subscribers.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventAll    EventType = "*"
)

// Event is one row change on a table. Old carries the previous row for
// UPDATE/DELETE, New the current row for INSERT/UPDATE.
type Event struct {
	Table  string    `json:"table"`
	Type   EventType `json:"type"`
	TeamID uint      `json:"teamId"`
	Old    any       `json:"old,omitempty"`
	New    any       `json:"new,omitempty"`
}
