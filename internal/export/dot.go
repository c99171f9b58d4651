package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"regexfa/regexlib"
)

// WriteDOT prints a Graphviz description of g. States are renamed q0, q1, ...
// in model order and keep their real name as label. The initial state is
// blue and accepting states get a double border.
func WriteDOT(w io.Writer, g Graph, opts Options) error {
	bw := bufio.NewWriter(w)
	name := "nfae"
	if g.Kind() == regexlib.KindDFA {
		name = "dfa"
	}
	fmt.Fprintf(bw, "digraph %s {\n", name)
	fmt.Fprintln(bw, "    rankdir=LR;")

	states, ids := nodeIDs(g)
	for i, s := range states {
		style := dotStyle(g.IsInitial(s), g.IsFinal(s))
		if opts.HideLabels {
			fmt.Fprintf(bw, "    q%d%s\n", i, style)
		} else {
			fmt.Fprintf(bw, "    q%d[label=\"%s\"]%s\n", i, escapeDOT(string(s)), style)
		}
	}
	for _, t := range g.Transitions() {
		fmt.Fprintf(bw, "    q%d -> q%d[label=\"%s\"]\n", ids[t.From], ids[t.To], escapeDOT(t.When.String()))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotStyle(initial, final bool) string {
	switch {
	case initial && final:
		return "[color=blue][peripheries=2]"
	case initial:
		return "[color=blue]"
	case final:
		return "[peripheries=2]"
	}
	return ""
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeDOT(s string) string { return dotEscaper.Replace(s) }
