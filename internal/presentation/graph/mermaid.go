package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/canopy/pkg/component"
)

// GenerateMermaid produces a Mermaid flowchart syntax string for a
// component tree. It applies semantic styling:
// - Container: ((Circle))
// - Leaf: [Rectangle]
// Node identifiers are assigned in depth-first pre-order, so output is
// deterministic for a given tree shape.
func GenerateMermaid(root component.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[component.Node]string)
	next := 0
	component.Walk(root, func(n component.Node, _ int) bool {
		id := fmt.Sprintf("n%d", next)
		next++
		ids[n] = id

		if n.IsContainer() {
			sb.WriteString(fmt.Sprintf("    %s((\"Branch\"))\n", id))
		} else {
			label := component.DefaultLeafText
			if l, ok := n.(*component.Leaf); ok && l.Payload() != "" {
				label = sanitizeMermaidLabel(l.Payload())
			}
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
		}

		if p := n.Parent(); p != nil {
			if pid, ok := ids[component.Node(p)]; ok {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", pid, id))
			}
		}
		return true
	})

	return sb.String()
}

// sanitizeMermaidLabel keeps payloads from breaking out of the quoted
// Mermaid label.
func sanitizeMermaidLabel(label string) string {
	label = strings.ReplaceAll(label, "\"", "'")
	label = strings.ReplaceAll(label, "\n", " ")
	return label
}
