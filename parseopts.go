package molecule

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// syms is the set of symbol tokens that have been seen this parse.
	syms map[string]bool
	// depth is the nesting depth past which parsing fails.
	depth int
}

type depthopt int

// MaxDepth sets how many levels of nested groups the parser accepts before
// failing with a DepthError. The default is 200. Panics if n is not
// positive.
func MaxDepth(n int) ParseOption {
	if n < 1 {
		panic("molecule: cannot set max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.depth = int(o)
	return p
}

const defaultMaxDepth = 200
