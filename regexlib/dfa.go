package regexlib

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Determinize runs the subset construction on nfa. Every DFA state stands
// for an epsilon-closed set of NFA states and is named after it, e.g.
// "{q0, q2}". Each (state, symbol) pair gets exactly one transition; a move
// that leads nowhere goes to the dead state "{}".
//
// Only subsets reachable from the initial closure are built. An nfa without
// an initial state yields an empty DFA.
func Determinize(nfa *Automaton) *Automaton {
	dfa, _ := DeterminizeLimit(nfa, 0)
	return dfa
}

// DeterminizeLimit is Determinize with a budget: it stops with
// ErrTooManyStates as soon as the DFA would need more than maxStates states.
// A maxStates of zero or less means no limit.
func DeterminizeLimit(nfa *Automaton, maxStates int) (*Automaton, error) {
	dfa := New(KindDFA)
	if nfa.initial < 0 {
		return dfa, nil
	}
	alphabet := nfa.Alphabet()

	type subset struct {
		set  *bitset.BitSet
		name State
	}
	// Subsets are interned by their bitset key; the name is only a label and
	// gets a suffix when hand-named NFA states make two subsets render alike.
	seen := map[string]State{}
	add := func(set *bitset.BitSet) (State, bool, error) {
		key := subsetKey(set)
		if name, ok := seen[key]; ok {
			return name, false, nil
		}
		if maxStates > 0 && dfa.Len() >= maxStates {
			return "", false, fmt.Errorf("%w: more than %d", ErrTooManyStates, maxStates)
		}
		base := nfa.subsetName(set)
		name := base
		for n := 2; dfa.Has(name); n++ {
			name = State(fmt.Sprintf("%s#%d", base, n))
		}
		dfa.AddState(name, nfa.accepting(set))
		seen[key] = name
		return name, true, nil
	}

	first := nfa.start()
	name, _, err := add(first)
	if err != nil {
		return nil, err
	}
	dfa.initial = dfa.index[name]

	queue := []subset{{first, name}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := dfa.index[cur.name]
		for _, c := range alphabet {
			next := nfa.closureBits(nfa.move(cur.set, Label(c)))
			to, fresh, err := add(next)
			if err != nil {
				return nil, err
			}
			if fresh {
				queue = append(queue, subset{next, to})
			}
			dfa.link(from, Label(c), dfa.index[to])
		}
	}
	return dfa, nil
}

// subsetKey encodes set membership independently of the bitset's capacity.
func subsetKey(set *bitset.BitSet) string {
	words := set.Bytes()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	buf := make([]byte, 0, n*8)
	for _, w := range words[:n] {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// subsetName lists the members of set in state order: "{q0, q3}".
func (a *Automaton) subsetName(set *bitset.BitSet) State {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(joinStates(a.statesOf(set)))
	b.WriteByte('}')
	return State(b.String())
}
