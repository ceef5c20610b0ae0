// Package molecule parses chemical formulae and computes molecular masses.
//
// A formula is written the usual way: element symbols, optional counts, and
// parenthesized groups with their own counts, like "Ca(NO3)2". Parsing is
// purely structural; whether every symbol names a real element is checked
// separately, against an atomic mass table that callers can replace or
// extend through a Context.
//
// Parse a formula once and reuse it for mass, per-element atom counts, and
// enumeration of its elements, or use the package-level shortcuts that work
// directly on strings.
package molecule
