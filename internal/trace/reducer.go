package trace

import (
	"fmt"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/util"
)

// DefaultDropdownCap bounds how many items a dropdown enumerates per
// category before collapsing the rest into one overflow link.
const DefaultDropdownCap = 5

// Hover text for a single-error node. A single transaction gets a
// per-event summary instead.
const singleErrorHover = "View the error for this event"

const itemLabelWidth = 35

// Reducer collapses one bucket of related events into a renderable
// node.
type Reducer struct {
	Resolver TargetResolver
	TraceID  string
	Cap      int
}

func NewReducer(resolver TargetResolver, traceID string) *Reducer {
	return &Reducer{
		Resolver: resolver,
		TraceID:  traceID,
		Cap:      DefaultDropdownCap,
	}
}

// ReduceBucket turns a bucket's events into a node. The current event
// is excluded from the bucket's own items, and errors attached to the
// bucket's events are hoisted ahead of the events themselves,
// deduplicated against the current event's identifier. isCurrent marks
// the current-event slot, which renders label-only when empty instead
// of being omitted.
func (r *Reducer) ReduceBucket(label string, events []model.Event, current *model.Event, isCurrent bool) Node {
	limit := r.Cap
	if limit <= 0 {
		limit = DefaultDropdownCap
	}

	var errs []model.ErrorRecord
	for _, ev := range events {
		for _, rec := range ev.Errors {
			if current != nil && rec.EventID == current.EventID {
				continue
			}
			rec.Transaction = ev.Transaction
			if rec.ProjectSlug == "" {
				rec.ProjectSlug = ev.ProjectSlug
			}
			errs = append(errs, rec)
		}
	}

	var kept []model.Event
	for _, ev := range events {
		if current != nil && ev.EventID == current.EventID {
			continue
		}
		kept = append(kept, ev)
	}

	emphasis := EmphasisNeutral
	if isCurrent {
		emphasis = EmphasisCurrent
	}
	if len(errs) > 0 || (isCurrent && current != nil && !current.IsTransaction()) {
		emphasis = EmphasisWarning
	}

	total := len(errs) + len(kept)
	switch {
	case total == 0:
		return Node{Kind: NodeEmpty, Label: label, Emphasis: emphasis}

	case total == 1:
		link := &Link{Label: label}
		if len(errs) == 1 {
			link.Target = r.Resolver.ErrorTarget(errs[0])
			link.Hover = singleErrorHover
		} else {
			ev := kept[0]
			link.Target = r.Resolver.TransactionTarget(ev)
			link.Hover = summarizeEvent(ev)
		}
		return Node{Kind: NodeSingle, Label: label, Emphasis: emphasis, Link: link}

	default:
		node := Node{Kind: NodeDropdown, Label: label, Emphasis: emphasis}
		for _, rec := range errs[:min(len(errs), limit)] {
			node.Items = append(node.Items, DropdownItem{
				Label:   util.Truncate(rec.Transaction, itemLabelWidth),
				Project: rec.ProjectSlug,
				Subtext: "error",
				Target:  r.Resolver.ErrorTarget(rec),
			})
		}
		for _, ev := range kept[:min(len(kept), limit)] {
			node.Items = append(node.Items, DropdownItem{
				Label:   util.Truncate(ev.Transaction, itemLabelWidth),
				Project: ev.ProjectSlug,
				Subtext: util.FormatDurationMs(ev.DurationMs, 2, true),
				Target:  r.Resolver.TransactionTarget(ev),
			})
		}
		if len(errs) > limit || len(kept) > limit {
			node.Overflow = r.overflowLink(len(errs), len(kept), limit)
		}
		return node
	}
}

// overflowLink aggregates the items beyond the cap into one link. The
// noun follows which category overflowed: only errors, only
// transactions, or both.
func (r *Reducer) overflowLink(errCount, evCount, limit int) *Link {
	hidden := 0
	if errCount > limit {
		hidden += errCount - limit
	}
	if evCount > limit {
		hidden += evCount - limit
	}

	var phrase string
	switch {
	case errCount > limit && evCount > limit:
		phrase = util.Pluralize(hidden, "event", "events")
	case errCount > limit:
		phrase = util.Pluralize(hidden, "error", "errors")
	default:
		phrase = util.Pluralize(hidden, "transaction", "transactions")
	}

	return &Link{
		Target: r.Resolver.TraceTarget(r.TraceID),
		Label:  fmt.Sprintf("View %s more", phrase),
	}
}

func summarizeEvent(ev model.Event) string {
	return fmt.Sprintf("%s (%s)", ev.Transaction, util.FormatDurationMs(ev.DurationMs, 2, true))
}
