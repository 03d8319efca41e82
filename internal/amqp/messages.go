package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Import sources.
const (
	SourceCSV    = "csv"
	SourceDemo   = "demo"
	SourceManual = "manual"
)

// ImportEvent announces that the transaction set changed. It carries only
// counts; consumers read the current set from the store.
type ImportEvent struct {
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	Skipped   int       `json:"skipped"`
	Timestamp time.Time `json:"timestamp"`
}

// NewImportEvent stamps an event with the current time.
func NewImportEvent(source string, count, skipped int) *ImportEvent {
	return &ImportEvent{
		Source:    source,
		Count:     count,
		Skipped:   skipped,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *ImportEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ImportEventFromJSON decodes and checks an event body.
func ImportEventFromJSON(data []byte) (*ImportEvent, error) {
	var ev ImportEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	switch ev.Source {
	case SourceCSV, SourceDemo, SourceManual:
	default:
		return nil, fmt.Errorf("unknown import source %q", ev.Source)
	}
	if ev.Count < 0 || ev.Skipped < 0 {
		return nil, fmt.Errorf("negative counts in import event")
	}
	return &ev, nil
}
