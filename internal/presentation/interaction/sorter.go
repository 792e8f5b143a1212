package interaction

import (
	"fmt"
	"sort"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/util"
)

// SortField represents the field to sort events by
type SortField int

const (
	SortByTime SortField = iota
	SortByDuration
	SortByErrors
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// EventSorter handles sorting of event rows in the data table
type EventSorter struct {
	field SortField
	order SortOrder
}

// NewEventSorter creates a new event sorter
func NewEventSorter() *EventSorter {
	return &EventSorter{
		field: SortByTime,
		order: SortDescending,
	}
}

// SetField updates the sort field
func (s *EventSorter) SetField(field SortField) {
	s.field = field
}

// SetOrder updates the sort order
func (s *EventSorter) SetOrder(order SortOrder) {
	s.order = order
}

// Sort sorts the events based on current settings
func (s *EventSorter) Sort(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		var less bool

		switch s.field {
		case SortByTime:
			less = util.ParseTimestamp(events[i].Timestamp).Before(util.ParseTimestamp(events[j].Timestamp))
		case SortByDuration:
			less = events[i].DurationMs < events[j].DurationMs
		case SortByErrors:
			less = len(events[i].Errors) < len(events[j].Errors)
		}

		if s.order == SortDescending {
			return !less
		}
		return less
	})
}

// ParseSortField maps a CLI flag value to a sort field
func ParseSortField(value string) (SortField, error) {
	switch value {
	case "time":
		return SortByTime, nil
	case "duration":
		return SortByDuration, nil
	case "errors":
		return SortByErrors, nil
	default:
		return SortByTime, fmt.Errorf("unknown sort field %q (expected time, duration, errors)", value)
	}
}

// ParseSortOrder maps a CLI flag value to a sort order
func ParseSortOrder(value string) (SortOrder, error) {
	switch value {
	case "asc":
		return SortAscending, nil
	case "desc":
		return SortDescending, nil
	default:
		return SortDescending, fmt.Errorf("unknown sort order %q (expected asc, desc)", value)
	}
}
