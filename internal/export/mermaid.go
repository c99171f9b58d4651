package export

import (
	"fmt"
	"strings"
)

// Mermaid produces a left-to-right Mermaid flowchart. Accepting states are
// drawn as double circles, the initial state is highlighted with a class.
func Mermaid(g Graph, opts Options) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states, ids := nodeIDs(g)
	initial := -1
	for i, s := range states {
		label := string(s)
		if opts.HideLabels {
			label = " "
		}
		opener, closer := "((", "))"
		if g.IsFinal(s) {
			opener, closer = "(((", ")))"
		}
		if g.IsInitial(s) {
			initial = i
		}
		sb.WriteString(fmt.Sprintf("    s%d%s\"%s\"%s\n", i, opener, sanitizeMermaidLabel(label), closer))
	}

	for _, t := range g.Transitions() {
		sb.WriteString(fmt.Sprintf("    s%d -- \"%s\" --> s%d\n", ids[t.From], sanitizeMermaidLabel(t.When.String()), ids[t.To]))
	}

	if initial >= 0 {
		sb.WriteString("\n    classDef initial fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class s%d initial;\n", initial))
	}
	return sb.String()
}

func sanitizeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
