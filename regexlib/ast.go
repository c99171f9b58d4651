package regexlib

import "strings"

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	NodeEpsilon NodeKind = iota // ε
	NodeSymbol
	NodeGroup   // ( ... )
	NodeUnion   // a+b
	NodeConcat  // ab
	NodeClosure // a*
)

func (k NodeKind) String() string {
	switch k {
	case NodeEpsilon:
		return "epsilon"
	case NodeSymbol:
		return "symbol"
	case NodeGroup:
		return "group"
	case NodeUnion:
		return "union"
	case NodeConcat:
		return "concat"
	case NodeClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Node is one vertex of a parsed expression tree. Composite nodes own their
// children; a tree is never mutated after the parser returns it.
type Node struct {
	kind  NodeKind
	left  *Node // operand of Group/Closure, left operand of Union/Concat
	right *Node
	ch    rune // for NodeSymbol
}

// Constructors for the six tree variants.
func Epsilon() *Node            { return &Node{kind: NodeEpsilon} }
func Symbol(r rune) *Node       { return &Node{kind: NodeSymbol, ch: r} }
func Group(inner *Node) *Node   { return &Node{kind: NodeGroup, left: inner} }
func Union(a, b *Node) *Node    { return &Node{kind: NodeUnion, left: a, right: b} }
func Concat(a, b *Node) *Node   { return &Node{kind: NodeConcat, left: a, right: b} }
func Closure(inner *Node) *Node { return &Node{kind: NodeClosure, left: inner} }

func (n *Node) Kind() NodeKind { return n.kind }

// Rune is the literal matched by a NodeSymbol.
func (n *Node) Rune() rune { return n.ch }

// Left is the left operand of a Union or Concat, and the operand of a Group or Closure.
func (n *Node) Left() *Node { return n.left }

func (n *Node) Right() *Node { return n.right }

func (n *Node) isBinary() bool { return n.kind == NodeUnion || n.kind == NodeConcat }

func (n *Node) withRight(r *Node) *Node {
	return &Node{kind: n.kind, left: n.left, right: r}
}

// Equal reports whether two trees have the same shape and symbols.
func (n *Node) Equal(o *Node) bool {
	type pair struct{ a, b *Node }
	stack := []pair{{n, o}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.kind != p.b.kind || p.a.ch != p.b.ch {
			return false
		}
		stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
	}
	return true
}

// Depth returns the height of the tree; a leaf has depth 1.
func (n *Node) Depth() int {
	type item struct {
		n *Node
		d int
	}
	max := 0
	stack := []item{{n, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			continue
		}
		if it.d > max {
			max = it.d
		}
		stack = append(stack, item{it.n.left, it.d + 1}, item{it.n.right, it.d + 1})
	}
	return max
}

// String renders the tree for diagnostics:
// ε, the literal rune, (E), [A]+[B], [A].[B] and <A>.
func (n *Node) String() string {
	var b strings.Builder
	// frames either print a literal chunk or expand a node
	type frame struct {
		n   *Node
		lit string
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			b.WriteString(f.lit)
			continue
		}
		switch f.n.kind {
		case NodeEpsilon:
			b.WriteString("ε")
		case NodeSymbol:
			b.WriteRune(f.n.ch)
		case NodeGroup:
			stack = append(stack, frame{lit: ")"}, frame{n: f.n.left}, frame{lit: "("})
		case NodeUnion, NodeConcat:
			op := "]+["
			if f.n.kind == NodeConcat {
				op = "].["
			}
			stack = append(stack, frame{lit: "]"}, frame{n: f.n.right}, frame{lit: op}, frame{n: f.n.left}, frame{lit: "["})
		case NodeClosure:
			stack = append(stack, frame{lit: ">"}, frame{n: f.n.left}, frame{lit: "<"})
		}
	}
	return b.String()
}
