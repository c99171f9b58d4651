package regexlib

import "github.com/bits-and-blooms/bitset"

// ShortestAccepted returns a shortest word accepted by a, preferring smaller
// runes among words of equal length. ok is false when the language is empty.
// The search is breadth-first over epsilon-closed state sets.
func ShortestAccepted(a *Automaton) (string, bool) {
	if a.initial < 0 {
		return "", false
	}
	type node struct {
		set  *bitset.BitSet
		path []rune
	}
	alphabet := a.Alphabet()
	start := a.start()
	visited := map[string]bool{subsetKey(start): true}
	q := []node{{set: start}}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if a.accepting(cur.set) {
			return string(cur.path), true
		}
		for _, c := range alphabet {
			next := a.closureBits(a.move(cur.set, Label(c)))
			if next.None() {
				continue
			}
			key := subsetKey(next)
			if visited[key] {
				continue
			}
			visited[key] = true
			np := append(append([]rune{}, cur.path...), c)
			q = append(q, node{next, np})
		}
	}
	return "", false
}
