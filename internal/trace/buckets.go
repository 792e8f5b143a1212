package trace

import (
	"errors"

	"github.com/perfwatch/quicktrace/internal/core/model"
)

// ErrTraceIncomplete marks a payload that cannot be partitioned around
// the current event: the event is missing, a parent link dangles, or
// the links form a cycle. Callers render the unknown marker instead of
// propagating it.
var ErrTraceIncomplete = errors.New("trace payload incomplete")

// Buckets is the current event's neighborhood partitioned by trace
// topology. Root and Parent are absent when the current event is at or
// near the top of the trace.
type Buckets struct {
	Current     model.Event
	Root        *model.Event
	Ancestors   []model.Event
	Parent      *model.Event
	Children    []model.Event
	Descendants []model.Event
}

// BuildBuckets partitions a flat event list around the current event.
// The chain above the current event is split into parent, intermediate
// ancestors, and root; when the direct parent is itself the root it is
// reported as root only. Events below are split into direct children
// and deeper descendants, both preserving payload order.
func BuildBuckets(events []model.Event, currentID string) (*Buckets, error) {
	if len(events) == 0 {
		return nil, ErrTraceIncomplete
	}

	byID := make(map[string]*model.Event, len(events))
	for i := range events {
		byID[events[i].EventID] = &events[i]
	}

	current, ok := byID[currentID]
	if !ok {
		return nil, ErrTraceIncomplete
	}

	// Walk upward from the current event. chain[0] is the direct
	// parent, the last element the trace root.
	var chain []*model.Event
	seen := map[string]bool{currentID: true}
	node := current
	for node.ParentID != nil {
		parent, ok := byID[*node.ParentID]
		if !ok {
			return nil, ErrTraceIncomplete
		}
		if seen[parent.EventID] {
			return nil, ErrTraceIncomplete
		}
		seen[parent.EventID] = true
		chain = append(chain, parent)
		node = parent
	}

	b := &Buckets{Current: *current}
	switch len(chain) {
	case 0:
	case 1:
		b.Root = chain[0]
	default:
		b.Parent = chain[0]
		b.Root = chain[len(chain)-1]
		for _, ancestor := range chain[1 : len(chain)-1] {
			b.Ancestors = append(b.Ancestors, *ancestor)
		}
	}

	// Collect the IDs below the current event breadth-first, then pull
	// the events in payload order so display order is stable.
	childIDs := make(map[string]bool)
	descendantIDs := make(map[string]bool)
	frontier := []string{currentID}
	depth := 0
	for len(frontier) > 0 {
		depth++
		var next []string
		for _, id := range frontier {
			for i := range events {
				ev := &events[i]
				if ev.ParentID == nil || *ev.ParentID != id {
					continue
				}
				if seen[ev.EventID] {
					continue
				}
				seen[ev.EventID] = true
				if depth == 1 {
					childIDs[ev.EventID] = true
				} else {
					descendantIDs[ev.EventID] = true
				}
				next = append(next, ev.EventID)
			}
		}
		frontier = next
	}

	for _, ev := range events {
		if childIDs[ev.EventID] {
			b.Children = append(b.Children, ev)
		} else if descendantIDs[ev.EventID] {
			b.Descendants = append(b.Descendants, ev)
		}
	}

	return b, nil
}
