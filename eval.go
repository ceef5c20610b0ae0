package molecule

// Context carries the atomic mass table used to resolve element symbols.
// A nil *Context uses the standard table, so most callers never build one.
// A Context is immutable once created and safe to share between goroutines.
type Context struct {
	masses map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	massopt struct {
		sym string
		val float64
	}
	massesopt map[string]float64
)

func (o massopt) ctxOption(ctx *Context) {
	ctx.masses[o.sym] = o.val
}

func (o massesopt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.masses[k] = v
	}
}

// SetMass sets the mass for a single symbol, adding the symbol to the
// table if the standard one does not have it.
func SetMass(symbol string, mass float64) ContextOption {
	return massopt{symbol, mass}
}

// SetMasses sets the masses of any number of symbols.
func SetMasses(masses map[string]float64) ContextOption {
	return massesopt(masses)
}

// NewContext creates an evaluation context. The context starts from the
// standard atomic mass table; options applied in order override or extend
// it. The standard table itself is never modified.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{masses: make(map[string]float64, len(globalmasses))}
	for k, v := range globalmasses {
		ctx.masses[k] = v
	}
	for _, opt := range opts {
		opt.ctxOption(&ctx)
	}
	return &ctx
}

// Lookup returns the mass for an element symbol and whether the context's
// table knows the symbol.
func (ctx *Context) Lookup(symbol string) (float64, bool) {
	return ctx.lookup(symbol)
}

func (ctx *Context) lookup(symbol string) (float64, bool) {
	if ctx == nil {
		v, ok := globalmasses[symbol]
		return v, ok
	}
	v, ok := ctx.masses[symbol]
	return v, ok
}

// ctxfor resolves option lists for the package-level shortcuts. With no
// options the nil context serves, backed by the standard table.
func ctxfor(opts []ContextOption) *Context {
	if len(opts) == 0 {
		return nil
	}
	return NewContext(opts...)
}

// Mass computes the molecular mass of the formula in atomic mass units.
// ctx may be nil to use the standard table. The first symbol missing from
// the table, in depth-first source order, fails with an UnknownSymbolError;
// no rounding is applied to the result.
func (f *Formula) Mass(ctx *Context) (float64, error) {
	return masstree(ctx, f.tree)
}

func masstree(ctx *Context, tree []*node) (float64, error) {
	var sum float64
	for _, n := range tree {
		var m float64
		switch n.kind {
		case nodeSymbol:
			v, ok := ctx.lookup(n.sym)
			if !ok {
				return 0, &UnknownSymbolError{Col: n.pos, Symbol: n.sym}
			}
			m = v
		case nodeGroup:
			v, err := masstree(ctx, n.tree)
			if err != nil {
				return 0, err
			}
			m = v
		default:
			panic("molecule: invalid node kind " + n.kind.String())
		}
		sum += m * float64(n.count)
	}
	return sum, nil
}

// Atoms counts the atoms of one element in the formula. ctx may be nil to
// use the standard table. Querying a symbol the table does not know fails
// with an UnknownSymbolError even when the count would be zero; symbols in
// the formula that merely differ from the query contribute nothing and are
// not resolved.
func (f *Formula) Atoms(ctx *Context, symbol string) (int, error) {
	if _, ok := ctx.lookup(symbol); !ok {
		return 0, &UnknownSymbolError{Symbol: symbol}
	}
	return counttree(f.tree, symbol), nil
}

func counttree(tree []*node, symbol string) int {
	sum := 0
	for _, n := range tree {
		switch n.kind {
		case nodeSymbol:
			if n.sym == symbol {
				sum += n.count
			}
		case nodeGroup:
			sum += counttree(n.tree, symbol) * n.count
		default:
			panic("molecule: invalid node kind " + n.kind.String())
		}
	}
	return sum
}

// Mass is a shortcut to validate, parse, and compute the mass of a formula
// in one call, like Formula.Mass on a fresh parse after Check.
func Mass(formula string, opts ...ContextOption) (float64, error) {
	ctx := ctxfor(opts)
	if err := ctx.Check(formula); err != nil {
		return 0, err
	}
	f, err := Parse(formula)
	if err != nil {
		return 0, err
	}
	return f.Mass(ctx)
}

// Atoms is a shortcut to parse a formula and count one element's atoms in
// one call.
func Atoms(formula, symbol string, opts ...ContextOption) (int, error) {
	ctx := ctxfor(opts)
	if _, ok := ctx.lookup(symbol); !ok {
		return 0, &UnknownSymbolError{Symbol: symbol}
	}
	f, err := Parse(formula)
	if err != nil {
		return 0, err
	}
	return f.Atoms(ctx, symbol)
}
