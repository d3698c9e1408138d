package events

import "time"

// EventType names a signal exchanged between the host and the store layer
type EventType string

const (
	// EventFrontReady is emitted by the host once its observers are listening
	EventFrontReady EventType = "front-ready"
	// EventDatabaseStatus carries the outcome of store initialization
	EventDatabaseStatus EventType = "dbstatus"
)

// StatusReady is the DatabaseStatus value reported on successful initialization
const StatusReady = "ready"

// DatabaseStatus is the payload of EventDatabaseStatus: either StatusReady or
// the textual description of the initialization error.
type DatabaseStatus struct {
	Status string `json:"status"`
}

// Ready reports whether the status signals a usable store
func (s DatabaseStatus) Ready() bool {
	return s.Status == StatusReady
}

// Event is a single notification delivered through the bus
type Event struct {
	Type       EventType `json:"event"`
	Payload    any       `json:"payload,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // Monotonically increasing per bus
}

// DatabaseStatusEvent builds an EventDatabaseStatus event
func DatabaseStatusEvent(status string) Event {
	return Event{
		Type:    EventDatabaseStatus,
		Payload: DatabaseStatus{Status: status},
	}
}
