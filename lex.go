package molecule

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSymbol is an element symbol shaped token: one uppercase ASCII
	// letter followed by any number of lowercase ones. The symbol need not
	// name a real element; that is the validator's concern.
	tokenSymbol
	// tokenNumber is a run of ASCII digits, used as a multiplier.
	tokenNumber
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenOther is any other non-space rune. The lexer keeps such runes as
	// tokens instead of failing so that invalid input is surfaced by the
	// validator rather than silently dropped.
	tokenOther
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "Symbol"
	case tokenNumber:
		return "Number"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenOther:
		return "Other"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src string
	off int
	col int
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("molecule: double push")
	}
	l.p = tok
}

// next scans the next token from the input. Scanning is total: a rune that
// fits no token class becomes a tokenOther token, never an error. Once the
// input is exhausted, next returns tokenEOF forever.
func (l *lexer) next() lexToken {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok
	}
	for {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if sz == 0 {
			return lexToken{kind: tokenEOF, pos: l.col}
		}
		if unicode.IsSpace(r) {
			l.off += sz
			l.col++
			continue
		}
		tok := lexToken{pos: l.col}
		start := l.off
		l.off += sz
		l.col++
		switch {
		case 'A' <= r && r <= 'Z':
			for {
				r, sz := utf8.DecodeRuneInString(l.src[l.off:])
				if sz == 0 || r < 'a' || 'z' < r {
					break
				}
				l.off += sz
				l.col++
			}
			tok.kind = tokenSymbol
		case '0' <= r && r <= '9':
			for {
				r, sz := utf8.DecodeRuneInString(l.src[l.off:])
				if sz == 0 || r < '0' || '9' < r {
					break
				}
				l.off += sz
				l.col++
			}
			tok.kind = tokenNumber
		case r == '(':
			tok.kind = tokenOpen
		case r == ')':
			tok.kind = tokenClose
		default:
			tok.kind = tokenOther
		}
		tok.text = l.src[start:l.off]
		return tok
	}
}

// tokens scans an entire formula. The trailing EOF token is not included.
func tokens(formula string) []lexToken {
	scan := lex(formula)
	var v []lexToken
	for tok := scan.next(); tok.kind != tokenEOF; tok = scan.next() {
		v = append(v, tok)
	}
	return v
}
