// Package suite runs .rfa check scripts: small programs that bind patterns
// and state which words each pattern must accept or reject.
//
//	let ab = "ab" dfa;
//	expect ab accepts "ab";
//	expect ab rejects "a", "b", "";
//	show ab;
package suite

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexfa/regexlib"
)

var (
	ErrUndefined = errors.New("undefined pattern")
	// ErrDisagree means the NFA and the DFA of one pattern gave different
	// verdicts, which is a compiler bug rather than a failed expectation.
	ErrDisagree = errors.New("nfa and dfa disagree")
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Let    *Let    `parser:"@@ ';'"`
	Expect *Expect `parser:"| @@ ';'"`
	Show   *Show   `parser:"| @@ ';'"`
}

type Let struct {
	Pos     lexer.Position
	Name    string `parser:"'let' @Ident '='"`
	Pattern string `parser:"@(String | RawString)"`
	Mode    string `parser:"@('nfa' | 'dfa')?"`
}

type Expect struct {
	Pos    lexer.Position
	Name   string   `parser:"'expect' @Ident"`
	Verb   string   `parser:"@('accepts' | 'rejects')"`
	Inputs []string `parser:"@(String | RawString) (',' @(String | RawString))*"`
}

type Show struct {
	Pos  lexer.Position
	Name string `parser:"'show' @Ident"`
}

var parser = participle.MustBuild[Script](
	participle.Unquote("String", "RawString"),
)

func Parse(data string) (*Script, error) {
	return ParseNamed("input", data)
}

// ParseNamed parses data and reports positions against filename.
func ParseNamed(filename, data string) (*Script, error) {
	return parser.ParseString(filename, data)
}

func (p *Script) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Let != nil:
		return s.Let.Exec(ctx)
	case s.Expect != nil:
		return s.Expect.Exec(ctx)
	case s.Show != nil:
		return s.Show.Exec(ctx)
	}
	return nil
}

func (l *Let) Exec(ctx *Context) error {
	mode, err := regexlib.ParseMode(l.Mode)
	if err != nil {
		return fmt.Errorf("%s: %w", l.Pos, err)
	}
	// Both automata are always built so every expectation can cross-check them.
	re := regexlib.Compile(l.Pattern, regexlib.ModeDFA)
	ctx.Env.Set(l.Name, &Binding{Regex: re, Mode: mode})
	ctx.logger().Debug("bound pattern",
		"name", l.Name,
		"pattern", l.Pattern,
		"mode", mode,
		"nfa_states", re.NFA().Len(),
		"dfa_states", re.DFA().Len(),
	)
	return nil
}

func (e *Expect) Exec(ctx *Context) error {
	b, ok := ctx.Env.Get(e.Name)
	if !ok {
		return fmt.Errorf("%s: %q: %w", e.Pos, e.Name, ErrUndefined)
	}
	want := e.Verb == "accepts"
	for _, in := range e.Inputs {
		nfaOK := regexlib.Accepts(b.Regex.NFA(), in)
		dfaOK := regexlib.NewWalker(b.Regex.DFA()).Run(in)
		if nfaOK != dfaOK {
			return fmt.Errorf("%s: pattern %q on %q (nfa=%t, dfa=%t): %w",
				e.Pos, b.Regex.Pattern(), in, nfaOK, dfaOK, ErrDisagree)
		}
		ctx.Report.Add(Result{
			Pos:     e.Pos,
			Name:    e.Name,
			Pattern: b.Regex.Pattern(),
			Input:   in,
			Want:    want,
			Got:     dfaOK,
		})
	}
	return nil
}

func (s *Show) Exec(ctx *Context) error {
	b, ok := ctx.Env.Get(s.Name)
	if !ok {
		return fmt.Errorf("%s: %q: %w", s.Pos, s.Name, ErrUndefined)
	}
	re := b.Regex
	a := re.NFA()
	if b.Mode == regexlib.ModeDFA {
		a = re.DFA()
	}
	st := regexlib.StatsOf(a)
	fmt.Fprintf(ctx.out(), "%s = %q\n", s.Name, re.Pattern())
	fmt.Fprintf(ctx.out(), "  tree: %s\n", re.Tree())
	fmt.Fprintf(ctx.out(), "  %s: %d states, %d transitions, alphabet %d\n",
		a.Kind(), st.States, st.Transitions, st.Alphabet)
	if word, ok := regexlib.ShortestAccepted(a); ok {
		fmt.Fprintf(ctx.out(), "  shortest: %q\n", word)
	} else {
		fmt.Fprintln(ctx.out(), "  shortest: none")
	}
	return nil
}
