package molecule

import "iter"

// Elements enumerates the distinct elements of the formula with their
// total atom counts, in lexicographically ascending symbol order. ctx may
// be nil to use the standard table. Symbols the table does not know are
// structural only and do not appear in the sequence; they surface through
// Check or Mass instead. The sequence is finite and restartable: every
// range over it builds its counts fresh, so independent enumerations of
// the same formula yield identical results.
func (f *Formula) Elements(ctx *Context) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, sym := range f.syms {
			if _, ok := ctx.lookup(sym); !ok {
				continue
			}
			if !yield(sym, counttree(f.tree, sym)) {
				return
			}
		}
	}
}

// Elements is a shortcut to parse a formula and enumerate its elements in
// one call.
func Elements(formula string, opts ...ContextOption) (iter.Seq2[string, int], error) {
	f, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return f.Elements(ctxfor(opts)), nil
}
