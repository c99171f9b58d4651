// Package tui prints match verdicts, walker traces and reports for a terminal.
package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"

	"regexfa/regexlib"
)

// Printer colours its output according to the profile of the underlying
// writer; plain writers (files, buffers) get no escape codes.
type Printer struct {
	out *termenv.Output
}

func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

func (p *Printer) color(s, hex string) termenv.Style {
	return p.out.String(s).Foreground(p.out.Color(hex))
}

// Verdict prints one line: the quoted input and whether it was accepted.
func (p *Printer) Verdict(input string, accepted bool) {
	word := p.color("rejected", "#f87171")
	if accepted {
		word = p.color("accepted", "#4ade80").Bold()
	}
	fmt.Fprintf(p.out, "%-20s %s\n", strconv.Quote(input), word)
}

// Trace prints the walker's steps, one per line, and where it stopped.
func (p *Printer) Trace(w *regexlib.Walker) {
	for _, s := range w.Trace() {
		fmt.Fprintf(p.out, "  %s --%s--> %s\n", s.From, p.color(string(s.When), "#818cf8"), s.To)
	}
	pos, ok := w.Position()
	switch {
	case !ok:
		fmt.Fprintf(p.out, "  %s\n", p.color("stuck: no transition", "#f87171"))
	case w.Accepting():
		fmt.Fprintf(p.out, "  halt in %s (accepting)\n", pos)
	default:
		fmt.Fprintf(p.out, "  halt in %s\n", pos)
	}
}

// Shortest prints the shortest accepted word, or notes an empty language.
func (p *Printer) Shortest(word string, ok bool) {
	if !ok {
		fmt.Fprintln(p.out, p.color("language is empty", "#fbbf24"))
		return
	}
	fmt.Fprintf(p.out, "shortest accepted: %s\n", strconv.Quote(word))
}
