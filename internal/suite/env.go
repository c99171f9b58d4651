package suite

import (
	"fmt"
	"sort"
	"strings"

	"regexfa/regexlib"
)

// Binding is a named, compiled pattern.
type Binding struct {
	Regex *regexlib.Regex
	Mode  regexlib.Mode // automaton reported by show
}

// Environment holds bound patterns. Rebinding a name replaces it.
type Environment struct {
	vars map[string]*Binding
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*Binding)}
}

func (e *Environment) Get(name string) (*Binding, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, b *Binding) {
	e.vars[name] = b
}

// Names lists the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) String() string {
	parts := make([]string, 0, len(e.vars))
	for _, n := range e.Names() {
		parts = append(parts, fmt.Sprintf("%s=%q", n, e.vars[n].Regex.Pattern()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
