package molecule_test

import (
	"testing"

	"github.com/profedbrown/molecule"
)

func FuzzClean(f *testing.F) {
	f.Add("H2O")
	f.Add("H2$O")
	f.Add("Xx(H2O")
	f.Add("αβγ12")
	f.Fuzz(func(t *testing.T, s string) {
		once := molecule.Clean(s)
		twice := molecule.Clean(once)
		if once != twice {
			t.Errorf("cleaning %q is not idempotent: %q then %q", s, once, twice)
		}
	})
}
