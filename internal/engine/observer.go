package engine

import "time"

// EventType represents different lifecycle phases of parsing and mutation
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"

	EventDecisionStart EventType = "decision_start"
	EventDecisionEnd   EventType = "decision_end"

	EventAddCommit    EventType = "add_commit"
	EventAddCancelled EventType = "add_cancelled"

	EventUpdateCommit    EventType = "update_commit"
	EventUpdateMiss      EventType = "update_miss"
	EventUpdateCancelled EventType = "update_cancelled"

	EventDeleteCommit    EventType = "delete_commit"
	EventDeleteMiss      EventType = "delete_miss"
	EventDeleteCancelled EventType = "delete_cancelled"

	// EventDuplicateID fires when a caller-supplied identity on create
	// collides with an existing row (allow-and-warn policy)
	EventDuplicateID EventType = "duplicate_id"
)

// Event represents a lifecycle event of one engine operation
type Event struct {
	Type      EventType   // Type of event
	OpID      string      // Operation ID for tracing
	RowID     string      // Affected row identity, if any
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., row count, update keys)
}

// Observer interface for event subscribers
// Observers receive events at major parse and mutation phases
type Observer interface {
	OnEvent(event Event)
}
