package export

import (
	"encoding/json"
	"io"
)

// Document is the JSON encoding of an automaton.
type Document struct {
	Kind        string          `json:"kind"`
	States      []StateDoc      `json:"states"`
	Alphabet    []string        `json:"alphabet"`
	Transitions []TransitionDoc `json:"transitions"`
}

type StateDoc struct {
	Name    string `json:"name"`
	Initial bool   `json:"initial,omitempty"`
	Final   bool   `json:"final,omitempty"`
}

type TransitionDoc struct {
	From string `json:"from"`
	When string `json:"when"`
	To   string `json:"to"`
	// Epsilon is set for transitions taken without input; When is then "ε".
	Epsilon bool `json:"epsilon,omitempty"`
}

// NewDocument snapshots g.
func NewDocument(g Graph) Document {
	doc := Document{
		Kind:        g.Kind().String(),
		States:      []StateDoc{},
		Alphabet:    []string{},
		Transitions: []TransitionDoc{},
	}
	for _, s := range g.States() {
		doc.States = append(doc.States, StateDoc{Name: string(s), Initial: g.IsInitial(s), Final: g.IsFinal(s)})
	}
	for _, r := range g.Alphabet() {
		doc.Alphabet = append(doc.Alphabet, string(r))
	}
	for _, t := range g.Transitions() {
		doc.Transitions = append(doc.Transitions, TransitionDoc{
			From:    string(t.From),
			When:    t.When.String(),
			To:      string(t.To),
			Epsilon: t.When.IsEpsilon(),
		})
	}
	return doc
}

// WriteJSON writes g as an indented Document.
func WriteJSON(w io.Writer, g Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(g))
}
