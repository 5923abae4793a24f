package token

import (
	"fmt"

	"github.com/signadot/rjson/debug"
)

// Lexer scans a document one token at a time.
//
// Lexing is fail fast: once a diagnostic has been recorded, no more input
// is scanned and the next token returned is TEOF.
type Lexer struct {
	d     []byte
	i     int
	doc   *PosDoc
	errs  []error
	queue []Token
	eof   bool
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{
		d:   d,
		doc: NewPosDoc(d),
	}
}

// Lex scans all of d.  The returned tokens always end with a TEOF token.
func Lex(d []byte) ([]Token, []error) {
	l := NewLexer(d)
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, l.Errs()
}

// Next returns the next token.  The final token is TEOF; after it has been
// returned, Next returns false.
func (l *Lexer) Next() (Token, bool) {
	for len(l.queue) == 0 {
		if l.eof {
			return Token{}, false
		}
		if l.i >= len(l.d) || len(l.errs) != 0 {
			l.eof = true
			l.emit(TEOF, "")
			break
		}
		l.step()
	}
	tok := l.queue[0]
	l.queue = l.queue[1:]
	if debug.Lex() {
		debug.Logf("lex %s %q at %d\n", tok.Type, tok.Text, tok.Pos.I)
	}
	return tok, true
}

// Err returns the first diagnostic, if any.
func (l *Lexer) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l.errs[0]
}

func (l *Lexer) Errs() []error {
	return l.errs
}

// Doc returns the position document used for the tokens' positions.
func (l *Lexer) Doc() *PosDoc {
	return l.doc
}

func (l *Lexer) step() {
	c := l.current()
	switch {
	case asciiSpace(c):
		for l.i < len(l.d) && asciiSpace(l.d[l.i]) {
			l.i++
		}
	case c == '-' || asciiDigit(c):
		l.numeric()
	case c == '"':
		l.str()
	case asciiAlpha(c):
		l.keyword()
	default:
		l.symbol()
	}
}

func (l *Lexer) numeric() {
	start := l.i
	if l.current() == '-' {
		l.i++
	}
	if !asciiDigit(l.current()) {
		l.emit(TInteger, "")
		l.error(ErrMissingNumber, "", l.i)
		return
	}
	n, float := number(l.d[l.i:])
	l.i += n
	typ := TInteger
	if float {
		typ = TFloat
	}
	l.emit(typ, string(l.d[start:l.i]))
}

func (l *Lexer) str() {
	l.i++
	start := l.i
	for l.current() != '"' {
		if l.current() == '\\' {
			l.i++
			switch c := l.current(); c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
			default:
				l.error(ErrControlChar, fmt.Sprintf("'\\%c'", c), l.i)
			}
			l.i++
			continue
		}
		if l.i >= len(l.d) {
			l.i = len(l.d)
			l.error(ErrMissingQuote, "", l.i)
			return
		}
		l.i++
	}
	l.i++
	l.emit(TString, string(l.d[start:l.i-1]))
}

func (l *Lexer) keyword() {
	start := l.i
	for asciiAlpha(l.current()) {
		l.i++
	}
	word := string(l.d[start:l.i])
	switch word {
	case "true", "false":
		l.emit(TBool, word)
	case "null":
		l.emit(TNull, word)
	default:
		l.error(ErrUnexpectedWord, fmt.Sprintf("%q", word), start)
	}
}

var symbols = map[byte]TokenType{
	'[': TLSquare,
	']': TRSquare,
	'{': TLCurl,
	'}': TRCurl,
	':': TColon,
	',': TComma,
}

func (l *Lexer) symbol() {
	c := l.current()
	typ, ok := symbols[c]
	l.i++
	if !ok {
		l.emit(TError, "")
		l.error(ErrUnexpectedSymbol, fmt.Sprintf("'%c'", c), l.i-1)
		return
	}
	l.emit(typ, string(c))
}

func (l *Lexer) current() byte {
	if l.i < len(l.d) {
		return l.d[l.i]
	}
	return 0
}

func (l *Lexer) emit(typ TokenType, text string) {
	l.queue = append(l.queue, Token{Type: typ, Text: text, Pos: l.doc.Pos(l.i)})
}

func (l *Lexer) error(e error, detail string, at int) {
	l.errs = append(l.errs, NewLexErr(e, detail, l.doc.Pos(at)))
}
