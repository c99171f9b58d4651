package tui

import "fmt"

// PrintBanner writes the program name and version in a gradient.
func (p *Printer) PrintBanner(version string) {
	s1 := p.color("  regex", "#818cf8")
	s2 := p.color(" -> ", "#c084fc")
	s3 := p.color("ε-NFA", "#e879f9")
	s4 := p.color(" -> ", "#f472b6")
	s5 := p.color("DFA", "#fb7185")

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s%s%s%s%s\n", s1, s2, s3, s4, s5)
	fmt.Fprintf(p.out, "  regexfa %s\n", version)
	fmt.Fprintln(p.out)
}
