package trace

import (
	"github.com/perfwatch/quicktrace/internal/core/model"
)

// Assembler produces the full quick-trace sequence from partitioned
// buckets. MissingService may be nil, in which case the placeholder is
// never emitted.
type Assembler struct {
	Reducer        *Reducer
	MissingService *MissingServiceFlag
}

func NewAssembler(reducer *Reducer, flag *MissingServiceFlag) *Assembler {
	return &Assembler{Reducer: reducer, MissingService: flag}
}

// AssembleFrom renders the partition result, mapping any upstream
// parse failure to a single unknown marker instead of an error.
func (a *Assembler) AssembleFrom(b *Buckets, err error) []Entry {
	if err != nil || b == nil {
		return []Entry{{Kind: EntryUnknown}}
	}
	return a.Assemble(b)
}

// Assemble emits the fixed node order: root, ancestors, parent,
// current, optional missing-service placeholder, children,
// descendants. Optional buckets that reduce to nothing are skipped
// along with their connectors; only the current slot is always
// rendered, label-only when empty.
func (a *Assembler) Assemble(b *Buckets) []Entry {
	current := b.Current
	var entries []Entry

	reduce := func(label string, events []model.Event) Node {
		return a.Reducer.ReduceBucket(label, events, &current, false)
	}

	if b.Root != nil {
		if node := reduce(LabelRoot, []model.Event{*b.Root}); node.Kind != NodeEmpty {
			entries = append(entries,
				Entry{Kind: EntryNode, Node: &node},
				Entry{Kind: EntryConnector})
		}
	}
	if len(b.Ancestors) > 0 {
		if node := reduce(LabelAncestors, b.Ancestors); node.Kind != NodeEmpty {
			entries = append(entries,
				Entry{Kind: EntryNode, Node: &node},
				Entry{Kind: EntryConnector})
		}
	}
	if b.Parent != nil {
		if node := reduce(LabelParent, []model.Event{*b.Parent}); node.Kind != NodeEmpty {
			entries = append(entries,
				Entry{Kind: EntryNode, Node: &node},
				Entry{Kind: EntryConnector})
		}
	}

	currentNode := a.Reducer.ReduceBucket(LabelCurrent, []model.Event{current}, &current, true)
	entries = append(entries, Entry{Kind: EntryNode, Node: &currentNode})

	childrenNode := reduce(LabelChildren, b.Children)
	descendantsNode := reduce(LabelDescendants, b.Descendants)

	if a.showMissingService(&current, childrenNode, descendantsNode) {
		entries = append(entries, Entry{Kind: EntryMissingService})
	}

	if childrenNode.Kind != NodeEmpty {
		entries = append(entries,
			Entry{Kind: EntryConnector},
			Entry{Kind: EntryNode, Node: &childrenNode})
	}
	if descendantsNode.Kind != NodeEmpty {
		entries = append(entries,
			Entry{Kind: EntryConnector},
			Entry{Kind: EntryNode, Node: &descendantsNode})
	}

	return entries
}

// showMissingService gates the placeholder: only a transaction with
// nothing below it suggests an uninstrumented downstream service, and
// a dismissal hides it for good.
func (a *Assembler) showMissingService(current *model.Event, children, descendants Node) bool {
	if a.MissingService == nil || !a.MissingService.Visible() {
		return false
	}
	if !current.IsTransaction() {
		return false
	}
	return children.Kind == NodeEmpty && descendants.Kind == NodeEmpty
}
