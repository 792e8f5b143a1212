package formatter

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/perfwatch/quicktrace/internal/core/model"
)

// captureOutput redirects stdout while fn runs and returns what it
// printed.
func captureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	ferr := fn()
	w.Close()
	os.Stdout = old

	if ferr != nil {
		t.Fatalf("format error = %v", ferr)
	}
	return <-done
}

func sampleRows() []EventRow {
	return []EventRow{
		{
			EventID:     "aaaabbbbccccdddd",
			Type:        "transaction",
			Transaction: "/api/checkout",
			Project:     "backend",
			Timestamp:   "2026-08-01T10:00:00Z",
			DurationMs:  1500,
			ErrorCount:  2,
		},
		{
			EventID:     "eeeeffff00001111",
			Type:        "transaction",
			Transaction: "/api/cart",
			Project:     "frontend",
			Timestamp:   "2026-08-01T10:00:01Z",
			DurationMs:  250,
			ErrorCount:  0,
		},
	}
}

func TestRowsFromEvents(t *testing.T) {
	events := []model.Event{
		{
			EventID:     "ev1",
			Type:        model.TypeTransaction,
			Transaction: "/a",
			ProjectSlug: "backend",
			DurationMs:  100,
			Errors:      []model.ErrorRecord{{EventID: "e1"}},
		},
	}

	rows := RowsFromEvents(events)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	row := rows[0]
	if row.EventID != "ev1" || row.Project != "backend" || row.ErrorCount != 1 {
		t.Errorf("row = %+v", row)
	}
}

func TestTableFormatter(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewTableFormatter().Format(sampleRows())
	})

	for _, want := range []string{
		"Event ID", "Transaction", "Duration",
		"aaaabbbb",      // truncated event ID
		"/api/checkout", // full name fits
		"1.50s",
		"Total", "2 events",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "aaaabbbbcccc") {
		t.Error("event ID not shortened")
	}

	// Every line of the table has the same display width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[1:] {
		if len([]rune(line)) != len([]rune(lines[0])) {
			t.Errorf("ragged table line: %q", line)
		}
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewTableFormatter().Format(nil)
	})
	if !strings.Contains(out, "0 events") {
		t.Errorf("empty table missing total row:\n%s", out)
	}
}

func TestSummaryFormatter(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewSummaryFormatter().Format(sampleRows())
	})

	for _, want := range []string{
		"Trace Events Summary Report",
		"Transactions: 2",
		"Attached Errors: 2",
		"Slowest: /api/checkout (1.50s)",
		"backend", "frontend",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Project list is sorted.
	if strings.Index(out, "backend") > strings.Index(out, "frontend") {
		t.Error("projects out of order")
	}
}

func TestSummaryFormatterEmpty(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewSummaryFormatter().Format(nil)
	})
	if !strings.Contains(out, "No events to summarize") {
		t.Errorf("output = %s", out)
	}
}

func TestCSVFormatter(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewCSVFormatter().Format(sampleRows())
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Event ID,Type,Transaction") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "aaaabbbbccccdddd") || !strings.Contains(lines[1], "1500.00") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestJSONFormatter(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewJSONFormatter().Format(sampleRows())
	})

	for _, want := range []string{
		`"event_id"`, `"aaaabbbbccccdddd"`, `"duration_ms"`, `"error_count"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestBreadcrumbFormatter(t *testing.T) {
	crumbs := []model.Breadcrumb{
		{Category: "http", Level: "info", Message: "GET /api/cart", Timestamp: "10:00:01"},
		{Category: "ui.click", Level: "warning", Message: "checkout button", Timestamp: "10:00:02"},
		{Category: "exception", Level: "error", Message: "payment declined", Timestamp: "10:00:03"},
	}

	out := captureOutput(t, func() error {
		return NewBreadcrumbFormatter().Format(crumbs)
	})

	for _, want := range []string{"Breadcrumbs", "http", "GET /api/cart", "payment declined"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestBreadcrumbFormatterLimit(t *testing.T) {
	var crumbs []model.Breadcrumb
	for i := 0; i < 5; i++ {
		crumbs = append(crumbs, model.Breadcrumb{
			Category: "http", Level: "info", Message: "request",
		})
	}

	f := NewBreadcrumbFormatter()
	f.Limit = 3
	out := captureOutput(t, func() error {
		return f.Format(crumbs)
	})

	if !strings.Contains(out, "2 breadcrumbs not shown") {
		t.Errorf("output missing collapsed tail:\n%s", out)
	}
	if got := strings.Count(out, "request"); got != 3 {
		t.Errorf("shown rows = %d, want 3", got)
	}
}

func TestBreadcrumbFormatterEmpty(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewBreadcrumbFormatter().Format(nil)
	})
	if !strings.Contains(out, "(none recorded)") {
		t.Errorf("output = %s", out)
	}
}

func TestArtifactFormatter(t *testing.T) {
	artifacts := []model.Artifact{
		{Name: "zz-bundle.js", SizeBytes: 2048, DateCreated: "2026-08-01"},
		{Name: "app.js.map", Dist: "prod", SizeBytes: 1024, DateCreated: "2026-08-01"},
	}

	out := captureOutput(t, func() error {
		return NewArtifactFormatter().Format(artifacts)
	})

	for _, want := range []string{"Name", "Dist", "app.js.map", "prod", "none", "2.0 KB", "2 artifacts", "3.0 KB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Sorted by name: app.js.map before zz-bundle.js.
	if strings.Index(out, "app.js.map") > strings.Index(out, "zz-bundle.js") {
		t.Error("artifacts not sorted by name")
	}
}
