package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalker(t *testing.T) {
	dfa := Determinize(BuildNFA(Parse("ab")))
	w := NewWalker(dfa)
	pos, ok := w.Position()
	assert.True(t, ok)
	assert.Equal(t, State("{q0}"), pos)

	assert.True(t, w.Move('a'))
	assert.False(t, w.Accepting())
	assert.True(t, w.Move('b'))
	assert.True(t, w.Accepting())
	assert.Equal(t, []Step{
		{From: "{q0}", When: 'a', To: "{q2}"},
		{From: "{q2}", When: 'b', To: "{q1}"},
	}, w.Trace())

	// into the dead state
	assert.True(t, w.Move('b'))
	pos, _ = w.Position()
	assert.Equal(t, State("{}"), pos)
	assert.False(t, w.Accepting())

	// symbols outside the alphabet stop the walk
	assert.False(t, w.Move('z'))
	_, ok = w.Position()
	assert.False(t, ok)
	assert.False(t, w.Move('a'))
}

func TestWalkerWithoutInitial(t *testing.T) {
	w := NewWalker(New(KindDFA))
	assert.False(t, w.Run(""))
	assert.False(t, Accepts(New(KindNFA), ""))
}

func TestShortestAccepted(t *testing.T) {
	tests := []struct {
		re   string
		want string
	}{
		{"", ""},
		{"a*", ""},
		{"ab", "ab"},
		{"(ab)+(cd)", "ab"},
		{"b+a", "a"},
		{"(a+b)*abb", "abb"},
		{"xyz+q", "q"},
	}
	for _, tt := range tests {
		for _, a := range []*Automaton{Compile(tt.re, ModeDFA).NFA(), Compile(tt.re, ModeDFA).DFA()} {
			got, ok := ShortestAccepted(a)
			assert.True(t, ok, tt.re)
			assert.Equal(t, tt.want, got, tt.re)
		}
	}

	// no accepting state reachable
	a := New(KindNFA)
	p := a.AddStateAuto(false)
	a.AddStateAuto(true)
	a.SetInitial(p)
	_, ok := ShortestAccepted(a)
	assert.False(t, ok)
	_, ok = ShortestAccepted(New(KindDFA))
	assert.False(t, ok)
}
