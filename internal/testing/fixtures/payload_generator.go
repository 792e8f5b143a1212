// Package fixtures generates synthetic trace payloads for tests.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/perfwatch/quicktrace/internal/core/model"
)

// PayloadGenerator builds synthetic trace payloads and writes them to
// a test directory.
type PayloadGenerator struct {
	baseDir string
}

func NewPayloadGenerator(baseDir string) *PayloadGenerator {
	return &PayloadGenerator{baseDir: baseDir}
}

// Transaction builds a transaction event with a fresh ID.
func Transaction(name, project string, durationMs float64, parentID *string) model.Event {
	return model.Event{
		EventID:     uuid.NewString(),
		Type:        model.TypeTransaction,
		Transaction: name,
		ProjectSlug: project,
		ParentID:    parentID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		DurationMs:  durationMs,
	}
}

// ErrorOn attaches a fresh error record to an event and returns it.
func ErrorOn(ev *model.Event, title string) model.ErrorRecord {
	rec := model.ErrorRecord{
		EventID:     uuid.NewString(),
		IssueID:     uuid.NewString(),
		Title:       title,
		ProjectSlug: ev.ProjectSlug,
	}
	ev.Errors = append(ev.Errors, rec)
	return rec
}

// Chain builds a linear trace of the given depth rooted at a fresh
// transaction. The returned payload's events are ordered root first.
func Chain(depth int, project string) *model.TracePayload {
	payload := &model.TracePayload{TraceID: uuid.NewString()}
	var parentID *string
	for i := 0; i < depth; i++ {
		ev := Transaction(fmt.Sprintf("/chain/%d", i), project, float64(100+i*25), parentID)
		payload.Events = append(payload.Events, ev)
		id := ev.EventID
		parentID = &id
	}
	return payload
}

// WriteTrace writes a payload as a JSON document and returns its path.
func (g *PayloadGenerator) WriteTrace(name string, payload *model.TracePayload) (string, error) {
	data, err := sonic.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteEvents writes events as a line-delimited stream and returns its
// path.
func (g *PayloadGenerator) WriteEvents(name string, events []model.Event) (string, error) {
	path := filepath.Join(g.baseDir, name+".jsonl")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	for _, ev := range events {
		line, err := sonic.Marshal(ev)
		if err != nil {
			return "", err
		}
		if _, err := file.Write(append(line, '\n')); err != nil {
			return "", err
		}
	}
	return path, nil
}
