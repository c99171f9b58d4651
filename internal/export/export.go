// Package export writes finished automata as DOT, Mermaid, JSON or text and
// drives an external Graphviz renderer. It only reads automata through Graph.
package export

import (
	"fmt"
	"io"
	"strings"

	"regexfa/regexlib"
)

// Graph is the read-only query surface of a finished automaton.
type Graph interface {
	States() []regexlib.State
	IsInitial(s regexlib.State) bool
	IsFinal(s regexlib.State) bool
	Transitions() []regexlib.Transition
	Alphabet() []rune
	Kind() regexlib.Kind
	String() string
}

var _ Graph = (*regexlib.Automaton)(nil)

// Format names an output encoding.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
	FormatText    Format = "text"
)

// Formats lists the supported formats.
var Formats = []Format{FormatDOT, FormatMermaid, FormatJSON, FormatText}

// ParseFormat validates a format name; "" means DOT.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if f == "" {
		return FormatDOT, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Options tune the graph formats.
type Options struct {
	// HideLabels drops state names from DOT and Mermaid nodes.
	HideLabels bool
}

// Write encodes g in the requested format.
func Write(w io.Writer, g Graph, f Format, opts Options) error {
	switch f {
	case FormatDOT, "":
		return WriteDOT(w, g, opts)
	case FormatMermaid:
		_, err := io.WriteString(w, Mermaid(g, opts))
		return err
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatText:
		_, err := fmt.Fprintln(w, g.String())
		return err
	}
	return fmt.Errorf("unknown export format %q", f)
}

// nodeIDs numbers states in their model order: q0, q1, ...
func nodeIDs(g Graph) ([]regexlib.State, map[regexlib.State]int) {
	states := g.States()
	ids := make(map[regexlib.State]int, len(states))
	for i, s := range states {
		ids[s] = i
	}
	return states, ids
}
