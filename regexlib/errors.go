package regexlib

import "errors"

// ErrUnknownState is returned when a transition or the initial state refers
// to a state that was never added to the automaton.
var ErrUnknownState = errors.New("unknown state")

// ErrNoInitialState is returned when an operation needs an initial state that was never set.
var ErrNoInitialState = errors.New("no initial state")

// ErrNotDeterministic is returned by ValidateDeterministic.
var ErrNotDeterministic = errors.New("automaton is not deterministic")

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown mode")

// ErrTooManyStates is returned by DeterminizeLimit when the DFA outgrows its budget.
var ErrTooManyStates = errors.New("too many DFA states")
