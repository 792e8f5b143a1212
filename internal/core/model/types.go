package model

// Event is a single monitoring event inside a trace: either a
// transaction (an instrumented operation with a duration) or an error.
type Event struct {
	EventID     string        `json:"event_id"`
	Type        string        `json:"type"`
	Transaction string        `json:"transaction"`
	ProjectSlug string        `json:"project_slug"`
	ParentID    *string       `json:"parent_event_id"`
	Timestamp   string        `json:"timestamp"`
	DurationMs  float64       `json:"duration_ms"`
	Errors      []ErrorRecord `json:"errors,omitempty"`
}

// IsTransaction reports whether the event carries performance data
// rather than being an error event.
func (e *Event) IsTransaction() bool {
	return e.Type == TypeTransaction
}

// ErrorRecord is an error grouped under an issue and attached to one
// owning event. Transaction is the owning event's display name,
// denormalized so error rows can be labeled without a lookup.
type ErrorRecord struct {
	EventID     string `json:"event_id"`
	IssueID     string `json:"issue_id"`
	Title       string `json:"title,omitempty"`
	ProjectSlug string `json:"project_slug,omitempty"`
	Transaction string `json:"transaction,omitempty"`
}

// TracePayload is the exported form of one trace: a flat event list
// with parent links, as produced by the monitoring backend.
type TracePayload struct {
	TraceID string  `json:"trace_id"`
	Events  []Event `json:"events"`
}

// Breadcrumb is a single entry of the activity trail recorded before
// an event was captured.
type Breadcrumb struct {
	Category  string `json:"category"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Artifact is one uploaded release file (source map, bundle, debug
// file) belonging to a release.
type Artifact struct {
	Name        string `json:"name"`
	Dist        string `json:"dist,omitempty"`
	SizeBytes   int64  `json:"size"`
	DateCreated string `json:"date_created"`
}

// FileEvent is emitted by the payload watcher when a watched file
// changes on disk.
type FileEvent struct {
	Path      string
	Operation string
}
