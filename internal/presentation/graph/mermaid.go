// Package graph renders the coach page element tree as a Mermaid
// flowchart, which is handy for documenting the page structure and for
// eyeballing the current selection state.
package graph

import (
	"fmt"
	"strings"

	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// Overlay contains dynamic state to visualize on the graph.
type Overlay struct {
	ActiveChips []string
	CurrentView string
}

// GenerateMermaid produces Mermaid flowchart syntax for the element tree.
// It applies semantic styling:
// - Chip: ([Stadium])
// - Value-carrying input: [/Parallelogram/]
// - Button (click handler, no children): [[Subroutine]]
// - Default: [Rectangle]
// Hidden sections connect with dotted arrows.
func GenerateMermaid(doc *ui.Document, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	anon := 0
	names := map[*ui.Element]string{}
	nameOf := func(el *ui.Element) string {
		if n, ok := names[el]; ok {
			return n
		}
		n := sanitizeMermaidID(el.ID())
		if n == "" {
			anon++
			n = fmt.Sprintf("el%d", anon)
		}
		names[el] = n
		return n
	}

	var walk func(el *ui.Element)
	walk = func(el *ui.Element) {
		safeID := nameOf(el)

		opener, closer := "[", "]"
		switch {
		case el.HasClass(ui.ClassChip):
			opener, closer = "([", "])"
		case el.Value() != "" || el.ID() == "chatInput" || el.ID() == "injuries_details":
			opener, closer = "[/", "/]"
		case len(el.Children()) == 0 && strings.HasSuffix(el.ID(), "Btn"):
			opener, closer = "[[", "]]"
		}

		label := el.ID()
		if label == "" {
			if v, ok := el.Attr(ui.AttrValue); ok {
				label = v
			} else {
				label = safeID
			}
		}
		if el.Value() != "" {
			label = fmt.Sprintf("%s = %s", label, el.Value())
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, child := range el.Children() {
			arrow := "-->"
			if child.Hidden() {
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, nameOf(child)))
			walk(child)
		}
	}

	names[doc.Root()] = "page"
	walk(doc.Root())

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef active fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.ActiveChips {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s active;\n", safeID))
			}
		}
		if overlay.CurrentView != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentView)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
