package regexlib

// Accepts simulates a on input by stepping the whole set of active states
// and closing it over epsilon transitions after every rune. It works for
// both NFAs and DFAs.
func Accepts(a *Automaton, input string) bool {
	cur := a.start()
	for _, r := range input {
		cur = a.closureBits(a.move(cur, Label(r)))
		if cur.None() {
			return false
		}
	}
	return a.accepting(cur)
}

// Step is one move recorded by a Walker.
type Step struct {
	From State
	When rune
	To   State
}

// Walker follows a deterministic automaton one rune at a time. On an NFA it
// always takes the first destination and ignores epsilon moves, so use
// Accepts there instead.
type Walker struct {
	a     *Automaton
	pos   int // -1 once stuck or when there is no initial state
	trace []Step
}

func NewWalker(a *Automaton) *Walker {
	return &Walker{a: a, pos: a.initial}
}

// Move consumes r and reports whether a transition existed for it.
func (w *Walker) Move(r rune) bool {
	if w.pos < 0 {
		return false
	}
	dst, ok := w.a.delta[edge{w.pos, Label(r)}]
	if !ok {
		w.pos = -1
		return false
	}
	next, ok := dst.NextSet(0)
	if !ok {
		w.pos = -1
		return false
	}
	w.trace = append(w.trace, Step{From: w.a.states[w.pos], When: r, To: w.a.states[next]})
	w.pos = int(next)
	return true
}

// Run feeds the whole input and reports whether the walker ends accepting.
func (w *Walker) Run(input string) bool {
	for _, r := range input {
		if !w.Move(r) {
			return false
		}
	}
	return w.Accepting()
}

// Position is the current state; ok is false once the walker is stuck.
func (w *Walker) Position() (State, bool) {
	if w.pos < 0 {
		return "", false
	}
	return w.a.states[w.pos], true
}

func (w *Walker) Accepting() bool {
	return w.pos >= 0 && w.a.finals.Test(uint(w.pos))
}

func (w *Walker) Trace() []Step { return w.trace }
