package regexlib

import "github.com/bits-and-blooms/bitset"

// Closure returns every state reachable from s through epsilon transitions,
// s included, in state order. It is empty when s is not a member.
func (a *Automaton) Closure(s State) []State {
	i, ok := a.index[s]
	if !ok {
		return []State{}
	}
	seed := bitset.New(uint(len(a.states)))
	seed.Set(uint(i))
	return a.statesOf(a.closureBits(seed))
}

// ClosureOf is the union of the closures of states. Non-members are ignored.
func (a *Automaton) ClosureOf(states []State) []State {
	return a.statesOf(a.closureBits(a.bitsOf(states)))
}

// closureBits grows seed to its epsilon fixed point. Newly reached states go
// on a work stack, so each epsilon edge is inspected at most once.
func (a *Automaton) closureBits(seed *bitset.BitSet) *bitset.BitSet {
	out := seed.Clone()
	stack := make([]uint, 0, seed.Count())
	for i, ok := seed.NextSet(0); ok; i, ok = seed.NextSet(i + 1) {
		stack = append(stack, i)
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dst, ok := a.delta[edge{int(i), EpsilonLabel}]
		if !ok {
			continue
		}
		for j, ok := dst.NextSet(0); ok; j, ok = dst.NextSet(j + 1) {
			if !out.Test(j) {
				out.Set(j)
				stack = append(stack, j)
			}
		}
	}
	return out
}

// move collects the destinations of every c-transition leaving set.
func (a *Automaton) move(set *bitset.BitSet, c Label) *bitset.BitSet {
	out := bitset.New(uint(len(a.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if dst, ok := a.delta[edge{int(i), c}]; ok {
			out.InPlaceUnion(dst)
		}
	}
	return out
}

// start is the epsilon closure of the initial state, or an empty set.
func (a *Automaton) start() *bitset.BitSet {
	seed := bitset.New(uint(len(a.states)))
	if a.initial >= 0 {
		seed.Set(uint(a.initial))
	}
	return a.closureBits(seed)
}

func (a *Automaton) accepting(set *bitset.BitSet) bool {
	return set.IntersectionCardinality(a.finals) > 0
}
