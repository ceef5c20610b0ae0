package molecule

import "strings"

// Check validates a formula's token sequence against the context's table.
// ctx may be nil to use the standard table. Tokens are checked in order and
// the leftmost bad one decides the error: an InvalidTokenError for a
// character that is not part of a symbol, digit run, or parenthesis, an
// UnknownSymbolError for a symbol the table does not know, or an
// EmptyFormulaError when there are no tokens at all. Check does not parse,
// so it accepts unbalanced parentheses; a clean Check means every token is
// resolvable, not that the formula has a tree.
func (ctx *Context) Check(formula string) error {
	toks := tokens(formula)
	if len(toks) == 0 {
		return &EmptyFormulaError{Col: 1}
	}
	for _, tok := range toks {
		switch tok.kind {
		case tokenNumber, tokenOpen, tokenClose:
			// always fine
		case tokenSymbol:
			if _, ok := ctx.lookup(tok.text); !ok {
				return &UnknownSymbolError{Col: tok.pos, Symbol: tok.text}
			}
		default:
			return &InvalidTokenError{Col: tok.pos, Text: tok.text}
		}
	}
	return nil
}

// Clean returns a copy of the formula with every token Check would reject
// removed, keeping the surviving tokens' text in source order. It is a
// best-effort filter: it never fails, but it does not rebalance
// parentheses or promise that the result parses. Callers who need a valid
// formula should Check the result.
func (ctx *Context) Clean(formula string) string {
	var b strings.Builder
	for _, tok := range tokens(formula) {
		switch tok.kind {
		case tokenNumber, tokenOpen, tokenClose:
			b.WriteString(tok.text)
		case tokenSymbol:
			if _, ok := ctx.lookup(tok.text); ok {
				b.WriteString(tok.text)
			}
		}
	}
	return b.String()
}

// Check is a shortcut to validate a formula against the standard table, or
// against a table built from the given options.
func Check(formula string, opts ...ContextOption) error {
	return ctxfor(opts).Check(formula)
}

// Clean is a shortcut to filter a formula against the standard table, or
// against a table built from the given options.
func Clean(formula string, opts ...ContextOption) string {
	return ctxfor(opts).Clean(formula)
}
