package molecule

import (
	"strconv"
	"strings"
)

// node is a node in the tree form of a formula: either an element symbol
// leaf or a parenthesized group owning its own subtree, together with the
// multiplier written after it in the source.
type node struct {
	kind nodeKind

	sym  string  // element symbol for nodeSymbol
	tree []*node // owned subtree for nodeGroup

	count int // multiplier, at least 1; 1 when the source omits it
	pos   int // column of the symbol or the opening parenthesis
}

type nodeKind int8

const (
	nodeNone nodeKind = iota
	nodeSymbol
	nodeGroup
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeSymbol:
		return "Symbol"
	case nodeGroup:
		return "Group"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	case nodeSymbol:
		b.WriteString(n.sym)
	case nodeGroup:
		b.WriteByte('(')
		fmttree(b, n.tree)
		b.WriteByte(')')
	default:
		panic("molecule: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
	if n.count != 1 {
		b.WriteString(strconv.Itoa(n.count))
	}
}

func fmttree(b *strings.Builder, tree []*node) {
	for _, n := range tree {
		n.fmt(b)
	}
}
