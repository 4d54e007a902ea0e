// Package events defines the envelope and fan-out hub for search lifecycle
// notifications. Every message a search produces, from the opening
// announcement to the final merged list, travels as one Event serialized to
// JSON.
package events

import (
	"encoding/json"
	"time"
)

// Lifecycle event types emitted over the course of one search.
const (
	TypeSearchStarted   = "search_started"
	TypeJobs            = "jobs"
	TypeProgress        = "progress"
	TypeSourceDone      = "source_done"
	TypeSearchCompleted = "search_completed"
	TypePing            = "ping"
)

// Event is the wire envelope. RequestID ties the event back to the search
// request that produced it; Data is the type-specific payload, already
// encoded so relays never need to understand it.
type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent builds and serializes one envelope. A nil payload produces an
// envelope without a data field.
func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
