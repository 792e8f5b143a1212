// Package trace builds the quick-trace view model: given the event a
// user is inspecting and its relatives partitioned by trace topology,
// it produces the ordered node sequence the renderer draws.
package trace

// NodeKind tags the variant a bucket collapsed into.
type NodeKind int

const (
	// NodeEmpty is a label-only node with nothing to link to.
	NodeEmpty NodeKind = iota
	// NodeSingle links directly to the bucket's only item.
	NodeSingle
	// NodeDropdown enumerates up to the cap per category, with an
	// optional aggregate overflow link for the rest.
	NodeDropdown
)

// Emphasis is the visual weight a node is drawn with.
type Emphasis int

const (
	EmphasisNeutral Emphasis = iota
	EmphasisCurrent
	EmphasisWarning
)

// Target is a navigable destination inside the monitoring UI.
type Target struct {
	Path string
}

// Link pairs a target with its display label and hover text.
type Link struct {
	Target Target
	Label  string
	Hover  string
}

// DropdownItem is one enumerated choice inside a dropdown node.
type DropdownItem struct {
	Label   string
	Project string
	Subtext string
	Target  Target
}

// Node summarizes one bucket as a single renderable unit.
type Node struct {
	Kind     NodeKind
	Label    string
	Emphasis Emphasis

	// Link is set for NodeSingle.
	Link *Link
	// Items and Overflow are set for NodeDropdown.
	Items    []DropdownItem
	Overflow *Link
}

// EntryKind tags the elements of the assembled sequence.
type EntryKind int

const (
	// EntryNode wraps a bucket node.
	EntryNode EntryKind = iota
	// EntryConnector is a pure visual separator carrying no data.
	EntryConnector
	// EntryMissingService is the dismissible placeholder suggesting an
	// uninstrumented downstream service.
	EntryMissingService
	// EntryUnknown marks a trace that could not be assembled.
	EntryUnknown
)

// Entry is one element of the assembled quick-trace sequence.
type Entry struct {
	Kind EntryKind
	Node *Node
}

// Bucket labels in display form.
const (
	LabelRoot        = "Root"
	LabelAncestors   = "Ancestors"
	LabelParent      = "Parent"
	LabelCurrent     = "This Event"
	LabelChildren    = "Children"
	LabelDescendants = "Descendants"
)
