package molecule_test

import (
	"fmt"

	"github.com/profedbrown/molecule"
)

func Example() {
	m, err := molecule.Mass("Ca(NO3)2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", m)
	// Output: 164.086
}

func ExampleFormula_Elements() {
	f, err := molecule.Parse("H2SO4")
	if err != nil {
		fmt.Println(err)
		return
	}
	for sym, n := range f.Elements(nil) {
		fmt.Println(sym, n)
	}
	// Output:
	// H 2
	// O 4
	// S 1
}

func ExampleFormula_Atoms() {
	f, err := molecule.Parse("Be3Al2(SiO3)6")
	if err != nil {
		fmt.Println(err)
		return
	}
	n, err := f.Atoms(nil, "O")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 18
}

func ExampleClean() {
	fmt.Println(molecule.Clean("H2$O!"))
	// Output: H2O
}
