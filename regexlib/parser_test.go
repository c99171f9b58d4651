package regexlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRendering(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "ε"},
		{"a", "a"},
		{"ab", "[a].[b]"},
		{"abc", "[[a].[b]].[c]"},
		{"a+b", "[a]+[b]"},
		{"a+b+c", "[a]+[[b]+[c]]"},
		{"a*", "<a>"},
		{"a**", "<<a>>"},
		{"ab*", "[a].[<b>]"},
		{"abc*", "[[a].[b]].[<c>]"},
		{"a+b*", "[a]+[<b>]"},
		{"ab+c*d", "[[a].[b]]+[[<c>].[d]]"},
		{"(ab)*", "<([a].[b])>"},
		{"(ab)+(cd)", "[([a].[b])]+[([c].[d])]"},
		{"(a+b)c", "[([a]+[b])].[c]"},
		{"a(b)", "[a].[(b)]"},
		{"(a)(b)", "[(a)].[(b)]"},
		{"((a)b)", "[(a)].[b]"},
		{"((ab))", "[a].[b]"},
		{"(a)", "a"},
		{"()", "ε"},
		{"a()", "[a].[(ε)]"},
		{"a+", "[a]+[ε]"},
		{"+a", "[ε]+[a]"},
		{"*", "<ε>"},
		{"a+*b", "[a]+[[<ε>].[b]]"},
		{"é+ü", "[é]+[ü]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in).String())
		})
	}
}

func TestParseMalformed(t *testing.T) {
	// unbalanced input never fails, it is absorbed
	assert.Equal(t, "[a].[b]", Parse("(ab").String())
	assert.Equal(t, "a", Parse("a)b").String())
	assert.Equal(t, "[a].[b]", Parse("ab)c(d").String())
	assert.Equal(t, "[a].[(b)]", Parse("a(b").String())
	assert.Equal(t, "ε", Parse(")").String())
}

func TestParseSymbol(t *testing.T) {
	for _, r := range "azAZ09.?|[]{}\\#ε" {
		n := Parse(string(r))
		require.Equal(t, NodeSymbol, n.Kind(), "rune %q", r)
		assert.Equal(t, r, n.Rune())
	}
}

func TestParseTree(t *testing.T) {
	want := Union(
		Group(Concat(Symbol('a'), Symbol('b'))),
		Concat(Symbol('c'), Closure(Symbol('d'))),
	)
	got := Parse("(ab)+cd*")
	assert.True(t, want.Equal(got), "got %s", got)
	assert.False(t, want.Equal(Parse("(ab)+cd")))
	assert.Equal(t, NodeUnion, got.Kind())
	assert.Equal(t, NodeGroup, got.Left().Kind())
	assert.Equal(t, NodeClosure, got.Right().Right().Kind())
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 100000
	in := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	assert.Equal(t, "a", Parse(in).String())

	long := Parse(strings.Repeat("ab", depth/2))
	assert.Equal(t, depth, long.Depth())

	unclosed := Parse(strings.Repeat("(a", 1000))
	assert.Equal(t, NodeConcat, unclosed.Kind())
}
