package regexlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNFAShapes(t *testing.T) {
	tests := []struct {
		re          string
		states      int
		transitions int
	}{
		{"", 2, 1},
		{"a", 2, 1},
		{"ab", 3, 2},
		{"a+b", 6, 6},
		{"a*", 4, 5},
		{"(a)", 2, 1},
		{"(ab)*", 5, 6},
	}
	for _, tt := range tests {
		nfa := BuildNFA(Parse(tt.re))
		assert.Equal(t, tt.states, nfa.Len(), "states of %q", tt.re)
		assert.Equal(t, tt.transitions, nfa.NumTransitions(), "transitions of %q", tt.re)
		init, ok := nfa.Initial()
		assert.True(t, ok)
		assert.Equal(t, State("q0"), init)
		assert.Equal(t, []State{"q1"}, nfa.Finals())
		assert.Equal(t, KindNFA, nfa.Kind())
	}
}

func TestBuildNFAUnionLayout(t *testing.T) {
	nfa := BuildNFA(Parse("a+b"))
	want := []Transition{
		{"q0", EpsilonLabel, "q2"},
		{"q0", EpsilonLabel, "q4"},
		{"q2", 'a', "q3"},
		{"q3", EpsilonLabel, "q1"},
		{"q4", 'b', "q5"},
		{"q5", EpsilonLabel, "q1"},
	}
	assert.Equal(t, want, nfa.Transitions())
}

// Allocation must follow depth-first order: the left operand's states come
// before the right operand's.
func TestBuildNFAAllocationOrder(t *testing.T) {
	nfa := BuildNFA(Parse("(a+b)+c"))
	// outer union: q2..q5; left group's union: q6..q9; right symbol none
	assert.Equal(t, []State{"q6", "q8"}, nfa.Targets("q2", EpsilonLabel))
	assert.Equal(t, []State{"q7"}, nfa.Targets("q6", 'a'))
	assert.Equal(t, []State{"q9"}, nfa.Targets("q8", 'b'))
	assert.Equal(t, []State{"q5"}, nfa.Targets("q4", 'c'))
}

func TestBuildNFADeepTree(t *testing.T) {
	const n = 50000
	nfa := BuildNFA(Parse(strings.Repeat("a", n)))
	assert.Equal(t, n+1, nfa.Len())

	short := BuildNFA(Parse(strings.Repeat("a", 2000)))
	assert.True(t, Accepts(short, strings.Repeat("a", 2000)))
	assert.False(t, Accepts(short, strings.Repeat("a", 1999)))
}
