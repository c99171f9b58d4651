package regexlib

import (
	"fmt"
	"strings"
)

// Mode selects how far Compile goes.
type Mode int

const (
	ModeNFA Mode = iota // stop after Thompson's construction
	ModeDFA             // also determinize
)

func (m Mode) String() string {
	if m == ModeDFA {
		return "dfa"
	}
	return "nfa"
}

// ParseMode accepts "nfa" or "dfa" (case-insensitive); "" means ModeNFA.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "nfa":
		return ModeNFA, nil
	case "dfa":
		return ModeDFA, nil
	}
	return ModeNFA, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Regex is a compiled pattern: its tree, its NFA and, in ModeDFA, its DFA.
type Regex struct {
	pattern string
	mode    Mode
	tree    *Node
	nfa     *Automaton
	dfa     *Automaton
}

// Compile runs the pipeline on pattern. It cannot fail; see Parse.
func Compile(pattern string, mode Mode) *Regex {
	re, _ := CompileLimit(pattern, mode, 0)
	return re
}

// CompileLimit is Compile with a cap on the number of DFA states. It fails
// with ErrTooManyStates only in ModeDFA; maxStates <= 0 means no cap.
func CompileLimit(pattern string, mode Mode, maxStates int) (*Regex, error) {
	tree := Parse(pattern)
	re := &Regex{pattern: pattern, mode: mode, tree: tree, nfa: BuildNFA(tree)}
	if mode == ModeDFA {
		dfa, err := DeterminizeLimit(re.nfa, maxStates)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		re.dfa = dfa
	}
	return re, nil
}

func (r *Regex) Pattern() string { return r.pattern }
func (r *Regex) Mode() Mode      { return r.mode }
func (r *Regex) Tree() *Node     { return r.tree }
func (r *Regex) NFA() *Automaton { return r.nfa }

// DFA is nil unless the pattern was compiled in ModeDFA.
func (r *Regex) DFA() *Automaton { return r.dfa }

// Automaton is the final product of the pipeline.
func (r *Regex) Automaton() *Automaton {
	if r.dfa != nil {
		return r.dfa
	}
	return r.nfa
}

// Match reports whether the whole input is in the pattern's language.
func (r *Regex) Match(input string) bool {
	if r.dfa != nil {
		return NewWalker(r.dfa).Run(input)
	}
	return Accepts(r.nfa, input)
}

// Stats summarizes the size of an automaton.
type Stats struct {
	States      int `json:"states"`
	Transitions int `json:"transitions"`
	Alphabet    int `json:"alphabet"`
}

func StatsOf(a *Automaton) Stats {
	return Stats{States: a.Len(), Transitions: a.NumTransitions(), Alphabet: len(a.Alphabet())}
}

func (r *Regex) Stats() Stats { return StatsOf(r.Automaton()) }
