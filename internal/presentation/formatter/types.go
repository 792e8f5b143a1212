package formatter

import (
	"github.com/perfwatch/quicktrace/internal/core/model"
)

// EventRow is the flattened display form of one event in the table,
// CSV and JSON outputs.
type EventRow struct {
	EventID     string  `json:"event_id"`
	Type        string  `json:"type"`
	Transaction string  `json:"transaction"`
	Project     string  `json:"project"`
	Timestamp   string  `json:"timestamp"`
	DurationMs  float64 `json:"duration_ms"`
	ErrorCount  int     `json:"error_count"`
}

// RowsFromEvents flattens events into display rows, preserving order.
func RowsFromEvents(events []model.Event) []EventRow {
	rows := make([]EventRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, EventRow{
			EventID:     ev.EventID,
			Type:        ev.Type,
			Transaction: ev.Transaction,
			Project:     ev.ProjectSlug,
			Timestamp:   ev.Timestamp,
			DurationMs:  ev.DurationMs,
			ErrorCount:  len(ev.Errors),
		})
	}
	return rows
}
