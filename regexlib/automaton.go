package regexlib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// State names one automaton state. Thompson states are named q0, q1, ...;
// determinized states are named after the NFA subset they stand for.
type State string

// Label is what a transition consumes: a literal rune or EpsilonLabel.
type Label rune

// EpsilonLabel marks a transition taken without reading input.
const EpsilonLabel Label = -1

func (l Label) IsEpsilon() bool { return l == EpsilonLabel }

func (l Label) String() string {
	if l == EpsilonLabel {
		return "ε"
	}
	return string(rune(l))
}

// Transition is one (from, when, to) triple of the transition relation.
type Transition struct {
	From State
	When Label
	To   State
}

func (t Transition) String() string {
	return fmt.Sprintf("δ(%s,%s) ⊇ {%s}", t.From, t.When, t.To)
}

// Kind records which construction produced an automaton.
type Kind int

const (
	KindNFA Kind = iota // epsilon-NFA from BuildNFA
	KindDFA             // from Determinize
)

func (k Kind) String() string {
	if k == KindDFA {
		return "DFA"
	}
	return "epsilon-NFA"
}

type edge struct {
	from int
	when Label
}

// Automaton is the state/transition model shared by NFAs and DFAs. It is
// built by a single owner and read-only afterwards.
type Automaton struct {
	kind      Kind
	increment int
	states    []State
	index     map[State]int
	finals    *bitset.BitSet
	initial   int // -1 until SetInitial
	delta     map[edge]*bitset.BitSet
}

// New returns an empty automaton of the given kind.
func New(kind Kind) *Automaton {
	return &Automaton{
		kind:    kind,
		index:   map[State]int{},
		finals:  bitset.New(0),
		initial: -1,
		delta:   map[edge]*bitset.BitSet{},
	}
}

func (a *Automaton) Kind() Kind { return a.kind }

// Len is the number of states.
func (a *Automaton) Len() int { return len(a.states) }

func (a *Automaton) Has(s State) bool {
	_, ok := a.index[s]
	return ok
}

// AddState adds s (a no-op if it exists) and marks it final when final is set.
func (a *Automaton) AddState(s State, final bool) State {
	i, ok := a.index[s]
	if !ok {
		i = len(a.states)
		a.states = append(a.states, s)
		a.index[s] = i
	}
	if final {
		a.finals.Set(uint(i))
	}
	return s
}

// AddStateAuto adds a state named q<n> with the lowest n not yet handed out
// and not already taken by a manually named state.
func (a *Automaton) AddStateAuto(final bool) State {
	for a.Has(autoName(a.increment)) {
		a.increment++
	}
	s := a.AddState(autoName(a.increment), final)
	a.increment++
	return s
}

func autoName(n int) State { return State(fmt.Sprintf("q%d", n)) }

func (a *Automaton) SetInitial(s State) error {
	i, ok := a.index[s]
	if !ok {
		return fmt.Errorf("initial %q: %w", s, ErrUnknownState)
	}
	a.initial = i
	return nil
}

// AddTransition records from --when--> to. Duplicates collapse.
func (a *Automaton) AddTransition(from State, when Label, to State) error {
	fi, ok := a.index[from]
	if !ok {
		return fmt.Errorf("transition from %q: %w", from, ErrUnknownState)
	}
	ti, ok := a.index[to]
	if !ok {
		return fmt.Errorf("transition to %q: %w", to, ErrUnknownState)
	}
	a.link(fi, when, ti)
	return nil
}

func (a *Automaton) link(from int, when Label, to int) {
	k := edge{from, when}
	dst, ok := a.delta[k]
	if !ok {
		dst = bitset.New(uint(len(a.states)))
		a.delta[k] = dst
	}
	dst.Set(uint(to))
}

// States lists every state in insertion order.
func (a *Automaton) States() []State {
	return append([]State(nil), a.states...)
}

func (a *Automaton) Initial() (State, bool) {
	if a.initial < 0 {
		return "", false
	}
	return a.states[a.initial], true
}

func (a *Automaton) IsInitial(s State) bool {
	i, ok := a.index[s]
	return ok && i == a.initial
}

func (a *Automaton) IsFinal(s State) bool {
	i, ok := a.index[s]
	return ok && a.finals.Test(uint(i))
}

func (a *Automaton) Finals() []State { return a.statesOf(a.finals) }

// Targets returns the destinations of from on when.
func (a *Automaton) Targets(from State, when Label) []State {
	i, ok := a.index[from]
	if !ok {
		return nil
	}
	dst, ok := a.delta[edge{i, when}]
	if !ok {
		return nil
	}
	return a.statesOf(dst)
}

// Transitions lists the transition relation ordered by source state, label
// (epsilon first) and destination state.
func (a *Automaton) Transitions() []Transition {
	keys := a.sortedEdges()
	var out []Transition
	for _, k := range keys {
		dst := a.delta[k]
		for j, ok := dst.NextSet(0); ok; j, ok = dst.NextSet(j + 1) {
			out = append(out, Transition{From: a.states[k.from], When: k.when, To: a.states[j]})
		}
	}
	return out
}

// NumTransitions counts (from, when, to) triples.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, dst := range a.delta {
		n += int(dst.Count())
	}
	return n
}

// Alphabet returns the sorted literal symbols used by any transition.
func (a *Automaton) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for k := range a.delta {
		if !k.when.IsEpsilon() {
			seen[rune(k.when)] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateDeterministic checks the DFA invariant: an initial state, no
// epsilon transitions and exactly one destination per (state, symbol) pair
// over the whole alphabet.
func (a *Automaton) ValidateDeterministic() error {
	if a.initial < 0 {
		return fmt.Errorf("%w: %w", ErrNotDeterministic, ErrNoInitialState)
	}
	for _, k := range a.sortedEdges() {
		if k.when.IsEpsilon() {
			return fmt.Errorf("%w: epsilon transition from %s", ErrNotDeterministic, a.states[k.from])
		}
	}
	alphabet := a.Alphabet()
	for i, s := range a.states {
		for _, c := range alphabet {
			var n uint
			if dst, ok := a.delta[edge{i, Label(c)}]; ok {
				n = dst.Count()
			}
			if n != 1 {
				return fmt.Errorf("%w: δ(%s,%c) has %d destinations", ErrNotDeterministic, s, c, n)
			}
		}
	}
	return nil
}

func (a *Automaton) sortedEdges() []edge {
	keys := make([]edge, 0, len(a.delta))
	for k := range a.delta {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].when < keys[j].when
	})
	return keys
}

func (a *Automaton) statesOf(set *bitset.BitSet) []State {
	out := make([]State, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, a.states[i])
	}
	return out
}

// bitsOf interns states into a set of indices, skipping non-members.
func (a *Automaton) bitsOf(states []State) *bitset.BitSet {
	set := bitset.New(uint(len(a.states)))
	for _, s := range states {
		if i, ok := a.index[s]; ok {
			set.Set(uint(i))
		}
	}
	return set
}

// String dumps the automaton:
//
//	[epsilon-NFA]
//	q = {q0, q1}
//	q0 = q0
//	F = {q1}
//	d(q0, a) = q1
func (a *Automaton) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", a.kind)
	fmt.Fprintf(&b, "q = {%s}\n", joinStates(a.states))
	if s, ok := a.Initial(); ok {
		fmt.Fprintf(&b, "q0 = %s\n", s)
	} else {
		b.WriteString("q0 = none\n")
	}
	fmt.Fprintf(&b, "F = {%s}", joinStates(a.Finals()))
	for _, t := range a.Transitions() {
		fmt.Fprintf(&b, "\nd(%s, %s) = %s", t.From, t.When, t.To)
	}
	return b.String()
}

func joinStates(states []State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
