// Package render draws the assembled quick-trace sequence as terminal
// output: one strip of nodes joined by connectors, optionally followed
// by the expanded dropdown bodies.
package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/perfwatch/quicktrace/internal/trace"
)

const (
	connectorGlyph    = "──"
	unknownMarker     = "—"
	missingService    = "«missing service»"
	defaultWidth      = 120
	dropdownIndicator = " ▾"
)

// Renderer turns trace entries into printable text.
type Renderer struct {
	// Width bounds the strip; zero means autodetect from the terminal.
	Width int
	// ShowDropdowns expands dropdown nodes below the strip.
	ShowDropdowns bool
}

func NewRenderer() *Renderer {
	width := defaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &Renderer{Width: width}
}

// Render produces the full output for an assembled sequence.
func (r *Renderer) Render(entries []trace.Entry) string {
	var segments []string
	var bodies []string

	for _, entry := range entries {
		switch entry.Kind {
		case trace.EntryConnector:
			segments = append(segments, styleConnector.Render(connectorGlyph))
		case trace.EntryUnknown:
			segments = append(segments, styleSubtext.Render(unknownMarker))
		case trace.EntryMissingService:
			segments = append(segments, stylePlaceholder.Render(missingService))
		case trace.EntryNode:
			segments = append(segments, r.renderNode(entry.Node))
			if r.ShowDropdowns && entry.Node.Kind == trace.NodeDropdown {
				bodies = append(bodies, r.renderDropdownBody(entry.Node))
			}
		}
	}

	out := strings.Join(segments, " ")
	if len(bodies) > 0 {
		rule := styleConnector.Render(strings.Repeat("─", min(r.width(), 78)))
		out += "\n" + rule + "\n" + strings.Join(bodies, "\n")
	}
	return out
}

func (r *Renderer) renderNode(node *trace.Node) string {
	style := styleNeutral
	switch node.Emphasis {
	case trace.EmphasisCurrent:
		style = styleCurrent
	case trace.EmphasisWarning:
		style = styleWarning
	}

	switch node.Kind {
	case trace.NodeSingle:
		text := style.Render(node.Label)
		if node.Link != nil && node.Link.Hover != "" {
			text += " " + styleSubtext.Render("("+node.Link.Hover+")")
		}
		return text
	case trace.NodeDropdown:
		count := len(node.Items)
		if node.Overflow != nil {
			count++
		}
		return style.Render(fmt.Sprintf("%s (%d)", node.Label, count)) + styleSubtext.Render(dropdownIndicator)
	default:
		return style.Render(node.Label)
	}
}

func (r *Renderer) renderDropdownBody(node *trace.Node) string {
	var lines []string
	lines = append(lines, styleSubtext.Render(node.Label+":"))
	for _, item := range node.Items {
		lines = append(lines, fmt.Sprintf("  • %s %s %s",
			styleBadge.Render(item.Project),
			item.Label,
			styleSubtext.Render("("+item.Subtext+")")))
	}
	if node.Overflow != nil {
		lines = append(lines, fmt.Sprintf("  %s %s",
			styleSubtext.Render("↳"),
			node.Overflow.Label+" → "+node.Overflow.Target.Path))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return defaultWidth
}
