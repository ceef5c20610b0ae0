package molecule

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil
// if the two trees are equal. Positions are not compared. If any node is
// nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind || n.count != m.count {
		return n, m
	}
	switch n.kind {
	case nodeSymbol:
		if n.sym != m.sym {
			return n, m
		}
	case nodeGroup:
		return difftree(n.tree, m.tree)
	}
	return nil, nil
}

func difftree(n, m []*node) (*node, *node) {
	for i := 0; i < len(n) || i < len(m); i++ {
		var a, b *node
		if i < len(n) {
			a = n[i]
		}
		if i < len(m) {
			b = m[i]
		}
		if d, e := a.diff(b); d != nil || e != nil {
			return d, e
		}
	}
	return nil, nil
}

func sym(s string, count int) *node {
	return &node{kind: nodeSymbol, sym: s, count: count}
}

func grp(count int, tree ...*node) *node {
	return &node{kind: nodeGroup, tree: tree, count: count}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree []*node
	}{
		{"single", "H", []*node{sym("H", 1)}},
		{"counted", "H2", []*node{sym("H", 2)}},
		{"two-letter", "He", []*node{sym("He", 1)}},
		{"water", "H2O", []*node{sym("H", 2), sym("O", 1)}},
		{"spaced", "H 2 O", []*node{sym("H", 2), sym("O", 1)}},
		{"group", "(H2O)", []*node{grp(1, sym("H", 2), sym("O", 1))}},
		{"nitrate", "Ca(NO3)2", []*node{
			sym("Ca", 1),
			grp(2, sym("N", 1), sym("O", 3)),
		}},
		{"beryl", "Be3Al2(SiO3)6", []*node{
			sym("Be", 3),
			sym("Al", 2),
			grp(6, sym("Si", 1), sym("O", 3)),
		}},
		{"nested", "((H)2)3", []*node{grp(3, grp(2, sym("H", 1)))}},
		{"adjacent-groups", "(OH)(OH)", []*node{
			grp(1, sym("O", 1), sym("H", 1)),
			grp(1, sym("O", 1), sym("H", 1)),
		}},
		// Structural parsing accepts symbols the table doesn't know.
		{"unresolved", "Xx2", []*node{sym("Xx", 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if d, e := difftree(f.tree, c.tree); d != nil || e != nil {
				t.Errorf("parsing %q: trees differ at %v versus %v", c.src, d, e)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want any
	}{
		{"empty", "", new(*EmptyFormulaError)},
		{"blank", " \t ", new(*EmptyFormulaError)},
		{"empty-group", "()", new(*EmptyFormulaError)},
		{"empty-group-counted", "()2", new(*EmptyFormulaError)},
		{"bare-number", "2", new(*InvalidTokenError)},
		{"number-after-group-open", "(2H)", new(*InvalidTokenError)},
		{"zero-count", "H0", new(*InvalidTokenError)},
		{"huge-count", "H99999999999999999999", new(*InvalidTokenError)},
		{"junk", "H2$O", new(*InvalidTokenError)},
		{"lowercase", "h2o", new(*InvalidTokenError)},
		{"unclosed", "(H2O", new(*BracketError)},
		{"unopened", "H2O)", new(*BracketError)},
		{"reversed", ")(", new(*BracketError)},
		{"nested-unclosed", "Ca(N(O3)2", new(*BracketError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse(c.src)
			if err == nil {
				var b strings.Builder
				fmttree(&b, f.tree)
				t.Fatalf("%q parsed to %s without error", c.src, b.String())
			}
			if !errors.As(err, c.want) {
				t.Errorf("parsing %q: error %#v is not %T", c.src, err, c.want)
			}
			var in InputError
			if !errors.As(err, &in) {
				t.Fatalf("parsing %q: error %#v is not an InputError", c.src, err)
			}
			if in.Pos() < 1 {
				t.Errorf("parsing %q: error position %d is before the input", c.src, in.Pos())
			}
		})
	}
}

func TestParseDepth(t *testing.T) {
	deep := func(n int) string {
		return strings.Repeat("(", n) + "H" + strings.Repeat(")", n)
	}
	if _, err := Parse(deep(defaultMaxDepth)); err != nil {
		t.Errorf("nesting at the limit failed: %v", err)
	}
	_, err := Parse(deep(defaultMaxDepth + 1))
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("nesting past the limit gave %#v, not DepthError", err)
	}
	if de.Depth != defaultMaxDepth {
		t.Errorf("DepthError reports limit %d, not %d", de.Depth, defaultMaxDepth)
	}
	if _, err := Parse(deep(3), MaxDepth(2)); !errors.As(err, &de) {
		t.Errorf("MaxDepth(2) allowed 3 levels: %v", err)
	}
	if _, err := Parse(deep(300), MaxDepth(300)); err != nil {
		t.Errorf("MaxDepth(300) rejected 300 levels: %v", err)
	}
}

func TestSymbols(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"H", []string{"H"}},
		{"HOH", []string{"H", "O"}},
		{"Ca(NO3)2", []string{"Ca", "N", "O"}},
		{"Be3Al2(SiO3)6", []string{"Al", "Be", "O", "Si"}},
		{"XxH", []string{"H", "Xx"}},
	}
	for _, c := range cases {
		f, err := Parse(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if got := f.Symbols(); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q gave wrong symbols: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestFormulaString(t *testing.T) {
	src := "Ca(NO3)2"
	f, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != src {
		t.Errorf("String returned %q, not the source %q", f.String(), src)
	}
}
