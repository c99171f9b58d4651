package regexlib

// job asks for node to be compiled between the states from and to.
type job struct {
	node     *Node
	from, to State
}

// BuildNFA compiles tree with Thompson's construction. The result has q0 as
// its initial state and q1 as its only accepting state.
//
// Jobs are kept on an explicit stack and pushed in reverse, so states are
// allocated in the same depth-first order a recursive compiler would use.
func BuildNFA(tree *Node) *Automaton {
	nfa := New(KindNFA)
	initial := nfa.AddStateAuto(false)
	end := nfa.AddStateAuto(true)
	nfa.initial = nfa.index[initial]

	stack := []job{{tree, initial, end}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, nfa.expand(j)...)
	}
	return nfa
}

// expand adds the transitions for one node and returns the sub-jobs for its
// operands, last operand first.
func (a *Automaton) expand(j job) []job {
	n := j.node
	switch n.kind {
	case NodeEpsilon:
		a.epsilon(j.from, j.to)
	case NodeSymbol:
		a.connect(j.from, Label(n.ch), j.to)
	case NodeGroup:
		return []job{{n.left, j.from, j.to}}
	case NodeUnion:
		aStart := a.AddStateAuto(false)
		aEnd := a.AddStateAuto(false)
		bStart := a.AddStateAuto(false)
		bEnd := a.AddStateAuto(false)
		a.epsilon(j.from, aStart)
		a.epsilon(j.from, bStart)
		a.epsilon(aEnd, j.to)
		a.epsilon(bEnd, j.to)
		return []job{{n.right, bStart, bEnd}, {n.left, aStart, aEnd}}
	case NodeConcat:
		middle := a.AddStateAuto(false)
		return []job{{n.right, middle, j.to}, {n.left, j.from, middle}}
	case NodeClosure:
		mStart := a.AddStateAuto(false)
		mEnd := a.AddStateAuto(false)
		a.epsilon(j.from, mStart)
		a.epsilon(mEnd, j.to)
		a.epsilon(j.from, j.to)
		a.epsilon(mEnd, mStart)
		return []job{{n.left, mStart, mEnd}}
	}
	return nil
}

func (a *Automaton) epsilon(from, to State) {
	a.connect(from, EpsilonLabel, to)
}

// connect links two states the builder has already allocated.
func (a *Automaton) connect(from State, when Label, to State) {
	a.link(a.index[from], when, a.index[to])
}
