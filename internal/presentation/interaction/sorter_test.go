package interaction

import (
	"testing"

	"github.com/perfwatch/quicktrace/internal/core/model"
)

func testEvents() []model.Event {
	return []model.Event{
		{
			EventID:    "a",
			Timestamp:  "2026-08-01T10:00:00Z",
			DurationMs: 300,
			Errors:     []model.ErrorRecord{{EventID: "e1"}},
		},
		{
			EventID:    "b",
			Timestamp:  "2026-08-01T09:00:00Z",
			DurationMs: 100,
		},
		{
			EventID:    "c",
			Timestamp:  "2026-08-01T11:00:00Z",
			DurationMs: 200,
			Errors:     []model.ErrorRecord{{EventID: "e2"}, {EventID: "e3"}},
		},
	}
}

func ids(events []model.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.EventID
	}
	return out
}

func TestEventSorterSort(t *testing.T) {
	tests := []struct {
		name  string
		field SortField
		order SortOrder
		want  []string
	}{
		{name: "time_asc", field: SortByTime, order: SortAscending, want: []string{"b", "a", "c"}},
		{name: "time_desc", field: SortByTime, order: SortDescending, want: []string{"c", "a", "b"}},
		{name: "duration_asc", field: SortByDuration, order: SortAscending, want: []string{"b", "c", "a"}},
		{name: "duration_desc", field: SortByDuration, order: SortDescending, want: []string{"a", "c", "b"}},
		{name: "errors_asc", field: SortByErrors, order: SortAscending, want: []string{"b", "a", "c"}},
		{name: "errors_desc", field: SortByErrors, order: SortDescending, want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := testEvents()
			s := NewEventSorter()
			s.SetField(tt.field)
			s.SetOrder(tt.order)
			s.Sort(events)

			got := ids(events)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEventSorterStable(t *testing.T) {
	events := []model.Event{
		{EventID: "first", DurationMs: 100},
		{EventID: "second", DurationMs: 100},
	}
	s := NewEventSorter()
	s.SetField(SortByDuration)
	s.SetOrder(SortAscending)
	s.Sort(events)

	if events[0].EventID != "first" {
		t.Error("equal keys reordered")
	}
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		value   string
		want    SortField
		wantErr bool
	}{
		{value: "time", want: SortByTime},
		{value: "duration", want: SortByDuration},
		{value: "errors", want: SortByErrors},
		{value: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSortField(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortField(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSortField(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseSortOrder(t *testing.T) {
	if got, err := ParseSortOrder("asc"); err != nil || got != SortAscending {
		t.Errorf("ParseSortOrder(asc) = %v, %v", got, err)
	}
	if got, err := ParseSortOrder("desc"); err != nil || got != SortDescending {
		t.Errorf("ParseSortOrder(desc) = %v, %v", got, err)
	}
	if _, err := ParseSortOrder("sideways"); err == nil {
		t.Error("ParseSortOrder(sideways) expected error")
	}
}
