package regexlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStateAutoSkipsTakenNames(t *testing.T) {
	a := New(KindNFA)
	a.AddState("q1", false)
	assert.Equal(t, State("q0"), a.AddStateAuto(false))
	assert.Equal(t, State("q2"), a.AddStateAuto(true))
	assert.Equal(t, State("q3"), a.AddStateAuto(false))
	assert.Equal(t, []State{"q1", "q0", "q2", "q3"}, a.States())
	assert.Equal(t, []State{"q2"}, a.Finals())
}

func TestAutomatonInvariants(t *testing.T) {
	a := New(KindNFA)
	_, ok := a.Initial()
	assert.False(t, ok)

	err := a.SetInitial("nope")
	assert.True(t, errors.Is(err, ErrUnknownState))

	p := a.AddStateAuto(false)
	q := a.AddStateAuto(true)
	require.NoError(t, a.SetInitial(p))
	assert.ErrorIs(t, a.AddTransition(p, 'x', "missing"), ErrUnknownState)
	assert.ErrorIs(t, a.AddTransition("missing", 'x', q), ErrUnknownState)

	require.NoError(t, a.AddTransition(p, 'x', q))
	require.NoError(t, a.AddTransition(p, 'x', q))
	require.NoError(t, a.AddTransition(p, EpsilonLabel, q))
	assert.Equal(t, 2, a.NumTransitions(), "duplicates collapse")
	assert.Equal(t, []rune{'x'}, a.Alphabet())
	assert.True(t, a.IsInitial(p))
	assert.False(t, a.IsInitial(q))
	assert.True(t, a.IsFinal(q))
	assert.False(t, a.IsFinal("missing"))
}

func TestTransitionsOrder(t *testing.T) {
	nfa := BuildNFA(Parse("a*"))
	want := []Transition{
		{"q0", EpsilonLabel, "q1"},
		{"q0", EpsilonLabel, "q2"},
		{"q2", 'a', "q3"},
		{"q3", EpsilonLabel, "q1"},
		{"q3", EpsilonLabel, "q2"},
	}
	assert.Equal(t, want, nfa.Transitions())
}

func TestAutomatonString(t *testing.T) {
	want := "[epsilon-NFA]\n" +
		"q = {q0, q1, q2}\n" +
		"q0 = q0\n" +
		"F = {q1}\n" +
		"d(q0, a) = q2\n" +
		"d(q2, b) = q1"
	assert.Equal(t, want, BuildNFA(Parse("ab")).String())

	empty := New(KindDFA)
	assert.Equal(t, "[DFA]\nq = {}\nq0 = none\nF = {}", empty.String())
}

func TestTargets(t *testing.T) {
	nfa := BuildNFA(Parse("a+b"))
	assert.Equal(t, []State{"q2", "q4"}, nfa.Targets("q0", EpsilonLabel))
	assert.Equal(t, []State{"q3"}, nfa.Targets("q2", 'a'))
	assert.Nil(t, nfa.Targets("q2", 'b'))
	assert.Nil(t, nfa.Targets("zz", 'a'))
}

func TestValidateDeterministic(t *testing.T) {
	err := New(KindDFA).ValidateDeterministic()
	assert.ErrorIs(t, err, ErrNotDeterministic)
	assert.ErrorIs(t, err, ErrNoInitialState)

	assert.ErrorIs(t, BuildNFA(Parse("a+b")).ValidateDeterministic(), ErrNotDeterministic)

	// partial transition function
	a := New(KindDFA)
	p := a.AddState("p", false)
	q := a.AddState("q", true)
	require.NoError(t, a.SetInitial(p))
	require.NoError(t, a.AddTransition(p, 'a', q))
	assert.ErrorIs(t, a.ValidateDeterministic(), ErrNotDeterministic)

	require.NoError(t, a.AddTransition(q, 'a', q))
	assert.NoError(t, a.ValidateDeterministic())

	// two destinations for one pair
	require.NoError(t, a.AddTransition(q, 'a', p))
	assert.ErrorIs(t, a.ValidateDeterministic(), ErrNotDeterministic)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "ε", EpsilonLabel.String())
	assert.Equal(t, "a", Label('a').String())
	assert.Equal(t, "δ(q0,ε) ⊇ {q1}", Transition{"q0", EpsilonLabel, "q1"}.String())
}
