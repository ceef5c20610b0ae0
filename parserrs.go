package molecule

import "strconv"

// InvalidTokenError is an error indicating a token that can never be part
// of a formula: a character that is neither a symbol, a digit, nor a
// parenthesis, or a digit run used where no multiplier is allowed. It
// implements InputError.
type InvalidTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token text.
	Text string
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *InvalidTokenError) Pos() int {
	return err.Col
}

// UnknownSymbolError is an error indicating an element-shaped symbol that
// is missing from the atomic mass table. It implements InputError.
type UnknownSymbolError struct {
	// Col is the position of the symbol in the formula, or 0 if the symbol
	// was queried directly rather than read from input.
	Col int
	// Symbol is the unrecognized symbol.
	Symbol string
}

func (err *UnknownSymbolError) Error() string {
	if err.Col <= 0 {
		return "unknown element symbol " + strconv.Quote(err.Symbol)
	}
	return errpos(err.Col, "unknown element symbol "+strconv.Quote(err.Symbol))
}

func (err *UnknownSymbolError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position at which the imbalance was detected.
	Col int
	// Left is the opening parenthesis, or empty if a close had no open.
	Left string
	// Right is the closing parenthesis, or empty if an open had no close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyFormulaError is an error indicating a formula, or a parenthesized
// group, containing no tokens. It implements InputError.
type EmptyFormulaError struct {
	// Col is the position of the token that ended the empty formula, or of
	// the end of the input.
	Col int
	// End is the token that ended the empty formula, if any.
	End string
}

func (err *EmptyFormulaError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "empty formula")
	}
	return errpos(err.Col, "empty group up to "+strconv.Quote(err.End))
}

func (err *EmptyFormulaError) Pos() int {
	return err.Col
}

// DepthError is an error indicating groups nested more deeply than the
// parser's limit. It implements InputError.
type DepthError struct {
	// Col is the position of the opening parenthesis that exceeded the limit.
	Col int
	// Depth is the limit that was exceeded.
	Depth int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "groups nested deeper than "+strconv.Itoa(err.Depth)+" levels")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidTokenError)(nil)
	_ InputError = (*UnknownSymbolError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyFormulaError)(nil)
	_ InputError = (*DepthError)(nil)
)
