package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/canopy"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Summary formats a render result and tree stats as markdown, ready for
// the glamour renderer or for plain output.
func Summary(result string, stats canopy.Stats) string {
	var sb strings.Builder
	sb.WriteString("# Result\n\n")
	sb.WriteString("```\n" + result + "\n```\n\n")
	sb.WriteString(fmt.Sprintf("**Nodes:** %d (%d leaves, %d branches) | **Depth:** %d\n",
		stats.Nodes, stats.Leaves, stats.Branches, stats.Depth))
	return sb.String()
}
