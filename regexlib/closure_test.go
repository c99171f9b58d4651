package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosure(t *testing.T) {
	nfa := BuildNFA(Parse("a*"))
	assert.Equal(t, []State{"q0", "q1", "q2"}, nfa.Closure("q0"))
	assert.Equal(t, []State{"q1"}, nfa.Closure("q1"))
	assert.Equal(t, []State{"q1", "q2", "q3"}, nfa.Closure("q3"))
	assert.Equal(t, []State{}, nfa.Closure("q99"))
	assert.Equal(t, []State{"q1", "q2", "q3"}, nfa.ClosureOf([]State{"q3", "q99"}))
}

func TestClosureCycle(t *testing.T) {
	a := New(KindNFA)
	for _, s := range []State{"p", "q", "r", "s"} {
		a.AddState(s, false)
	}
	a.AddTransition("p", EpsilonLabel, "q")
	a.AddTransition("q", EpsilonLabel, "r")
	a.AddTransition("r", EpsilonLabel, "p")
	a.AddTransition("r", 'x', "s")
	assert.Equal(t, []State{"p", "q", "r"}, a.Closure("q"))
	assert.Equal(t, []State{"s"}, a.Closure("s"))
}

func TestClosureIdempotent(t *testing.T) {
	for _, re := range []string{"", "a", "a*", "(ab)*+c", "((a*)*b)*", "a+b+c*", "(a+)*"} {
		nfa := BuildNFA(Parse(re))
		for _, s := range nfa.States() {
			once := nfa.Closure(s)
			assert.Equal(t, once, nfa.ClosureOf(once), "closure of %s in %q", s, re)
			assert.Contains(t, once, s)
		}
	}
}
