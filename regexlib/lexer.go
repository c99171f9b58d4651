package regexlib

import "strings"

// token is either a literal rune or a nested group of tokens.
type token struct {
	ch    rune
	group *tokenGroup // non-nil for a parenthesized group
}

type tokenGroup struct {
	tokens []token
}

func (t token) isGroup() bool { return t.group != nil }

// tokenize splits the input into nested token groups. '(' opens a group and
// ')' closes the innermost one. An unmatched '(' swallows the rest of the
// input; an unmatched ')' ends the top-level group and everything after it is
// dropped. Runs in one pass, nesting is tracked on an explicit stack.
func tokenize(input string) *tokenGroup {
	root := &tokenGroup{}
	stack := []*tokenGroup{root}
	for _, r := range input {
		cur := stack[len(stack)-1]
		switch r {
		case '(':
			g := &tokenGroup{}
			cur.tokens = append(cur.tokens, token{group: g})
			stack = append(stack, g)
		case ')':
			if len(stack) == 1 {
				return root
			}
			stack = stack[:len(stack)-1]
		default:
			cur.tokens = append(cur.tokens, token{ch: r})
		}
	}
	return root
}

// flatten replaces every group whose only member is another group with that
// inner group's contents. Children are handled before their parents so
// chains of redundant parentheses collapse in one pass.
func flatten(root *tokenGroup) {
	var order []*tokenGroup
	stack := []*tokenGroup{root}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, g)
		for _, t := range g.tokens {
			if t.isGroup() {
				stack = append(stack, t.group)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		g := order[i]
		if len(g.tokens) == 1 && g.tokens[0].isGroup() {
			g.tokens = g.tokens[0].group.tokens
		}
	}
}

// String renders the group as "(a,b,(c))", for debugging.
func (g *tokenGroup) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range g.tokens {
		if i > 0 {
			b.WriteByte(',')
		}
		if t.isGroup() {
			b.WriteString(t.group.String())
		} else {
			b.WriteRune(t.ch)
		}
	}
	b.WriteByte(')')
	return b.String()
}
