package molecule

import "strconv"

// Formula = Term { Term }
// Term    = Unit [ Number ]
// Unit    = Symbol | '(' Formula ')'
//
// A Number binds to the Unit immediately before it. A Number with no
// preceding Unit, and any rune that is not part of a Symbol, Number, or
// parenthesis, is rejected; so are unbalanced parentheses and empty
// formulae or groups. Symbols only need the right shape here: "Xx" parses
// even though no element is named Xx. Resolving symbols against the mass
// table is the business of Context.Check and the evaluators.

// Formula is a parsed chemical formula.
type Formula struct {
	// src is the source text the formula was parsed from.
	src string
	// tree is the top-level node sequence, in source order.
	tree []*node
	// syms is the sorted list of distinct symbol tokens in the source.
	syms []string
}

// Parse parses a formula into its tree form. The given options are applied
// in order. Parsing is structural only: symbols missing from the mass
// table parse fine and fail later, during validation or evaluation.
func Parse(formula string, opts ...ParseOption) (*Formula, error) {
	p := parsectx{
		syms:  make(map[string]bool),
		depth: defaultMaxDepth,
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(formula)
	tree, err := parsetree(scan, &p, 0)
	if err != nil {
		return nil, err
	}
	switch tok := scan.next(); tok.kind {
	case tokenEOF:
		if len(tree) == 0 {
			return nil, &EmptyFormulaError{Col: tok.pos}
		}
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("molecule: parse ended on token: " + tok.String())
	}
	f := Formula{
		src:  formula,
		tree: tree,
		syms: make([]string, 0, len(p.syms)),
	}
	for k := range p.syms {
		f.syms = append(f.syms, k)
	}
	sortstrs(f.syms)
	return &f, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(syms []string) {
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && syms[j] < syms[j-1]; j-- {
			syms[j], syms[j-1] = syms[j-1], syms[j]
		}
	}
}

// parsetree parses one nesting level into a node sequence. It stops at a
// close parenthesis or EOF, pushing the ending token back for the caller
// to check.
func parsetree(scan *lexer, p *parsectx, depth int) ([]*node, error) {
	var tree []*node
	for {
		tok := scan.next()
		switch tok.kind {
		case tokenSymbol:
			p.syms[tok.text] = true
			n := &node{kind: nodeSymbol, sym: tok.text, count: 1, pos: tok.pos}
			if err := parsecount(scan, n); err != nil {
				return nil, err
			}
			tree = append(tree, n)
		case tokenOpen:
			if depth+1 > p.depth {
				return nil, &DepthError{Col: tok.pos, Depth: p.depth}
			}
			sub, err := parsetree(scan, p, depth+1)
			if err != nil {
				return nil, err
			}
			end := scan.next()
			if end.kind != tokenClose {
				// parsetree only stops at a close parenthesis or EOF.
				return nil, &BracketError{Col: end.pos, Left: tok.text}
			}
			if len(sub) == 0 {
				return nil, &EmptyFormulaError{Col: end.pos, End: end.text}
			}
			n := &node{kind: nodeGroup, tree: sub, count: 1, pos: tok.pos}
			if err := parsecount(scan, n); err != nil {
				return nil, err
			}
			tree = append(tree, n)
		case tokenNumber, tokenOther:
			return nil, &InvalidTokenError{Col: tok.pos, Text: tok.text}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return tree, nil
		default:
			panic("molecule: unknown token: " + tok.String())
		}
	}
}

// parsecount attaches a multiplier to n if the next token is a digit run.
// The multiplier must be a positive int; in particular an explicit 0 is
// rejected, since the tree never represents a zero count.
func parsecount(scan *lexer, n *node) error {
	tok := scan.next()
	if tok.kind != tokenNumber {
		scan.push(tok)
		return nil
	}
	v, err := strconv.Atoi(tok.text)
	if err != nil || v < 1 {
		return &InvalidTokenError{Col: tok.pos, Text: tok.text}
	}
	n.count = v
	return nil
}

// String returns the source text the formula was parsed from.
func (f *Formula) String() string {
	return f.src
}

// Symbols returns the distinct symbol tokens appearing in the formula, in
// sorted order. The list includes symbols the mass table does not know.
func (f *Formula) Symbols() []string {
	return append(([]string)(nil), f.syms...)
}
