package regexlib

// Parse turns a regular expression into an expression tree. It accepts any
// input: unbalanced parentheses are absorbed as described on tokenize, and
// every rune other than '(', ')', '+' and '*' is a literal symbol.
//
// Concatenation is implicit and left-associative. '+' is a union whose right
// side is everything left at its nesting level. '*' applies to the right
// operand of a preceding union or concatenation, or to the whole running
// expression otherwise.
func Parse(text string) *Node {
	root := tokenize(text)
	flatten(root)
	return build(root)
}

// frame is the builder state for one nesting level.
type frame struct {
	tokens []token
	pos    int
	// segs holds the operands already closed off by '+'
	segs []*Node
	exp  *Node
}

func newFrame(g *tokenGroup) *frame {
	return &frame{tokens: g.tokens, exp: Epsilon()}
}

// finish folds the '+'-separated operands into right-nested unions.
func (f *frame) finish() *Node {
	res := f.exp
	for i := len(f.segs) - 1; i >= 0; i-- {
		res = Union(f.segs[i], res)
	}
	return res
}

func build(root *tokenGroup) *Node {
	stack := []*frame{newFrame(root)}
	for {
		f := stack[len(stack)-1]
		if f.pos == len(f.tokens) {
			stack = stack[:len(stack)-1]
			n := f.finish()
			if len(stack) == 0 {
				return n
			}
			parent := stack[len(stack)-1]
			parent.exp = attach(parent.exp, Group(n))
			continue
		}

		t := f.tokens[f.pos]
		f.pos++
		if t.isGroup() {
			stack = append(stack, newFrame(t.group))
			continue
		}
		switch t.ch {
		case '+':
			f.segs = append(f.segs, f.exp)
			f.exp = Epsilon()
		case '*':
			f.exp = applyClosure(f.exp)
		default:
			f.exp = attach(f.exp, Symbol(t.ch))
		}
	}
}

// attach appends n to the running expression by implicit concatenation.
func attach(exp, n *Node) *Node {
	if exp.kind == NodeEpsilon {
		return n
	}
	return Concat(exp, n)
}

func applyClosure(exp *Node) *Node {
	if exp.isBinary() {
		return exp.withRight(Closure(exp.right))
	}
	return Closure(exp)
}
