package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"

	"fortio.org/safecast"
)

type parser struct {
	toks  []token.Token
	i     int
	depth int
	diags []*ParseErr
	opts  *parseOpts
}

// Parse parses d into a document tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	toks, lexErrs := token.Lex(d)
	if len(lexErrs) != 0 {
		return nil, &ParseErr{Err: lexErrs[0]}
	}
	p := &parser{toks: toks, opts: pOpts}
	res := p.decide()
	p.match(token.TEOF)
	if len(p.diags) != 0 {
		if debug.Parse() {
			debug.Logf("parse: %d diagnostics, partial tree:\n%v\n", len(p.diags), res)
		}
		return nil, p.diags[0]
	}
	return res, nil
}

func (p *parser) decide() *ir.Node {
	switch p.peek() {
	case token.TLCurl:
		return p.nested(p.parseObject)
	case token.TLSquare:
		return p.nested(p.parseArray)
	default:
		return p.parsePrimitive()
	}
}

func (p *parser) nested(f func() *ir.Node) *ir.Node {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		tok := p.next()
		p.diag(ErrTooDeeplyNested, fmt.Sprintf("(max depth %d)", p.opts.maxDepth), tok.Pos)
		// skip to the end so that enclosing loops terminate
		p.i = len(p.toks) - 1
		return ir.Null()
	}
	return f()
}

func (p *parser) parseObject() *ir.Node {
	open := p.match(token.TLCurl)
	obj := ir.NewObject()
	p.trackPos(obj, open.Pos)
	if p.peek() == token.TRCurl {
		p.match(token.TRCurl)
		return obj
	}
	p.parseMember(obj)
	for p.peek() != token.TEOF && p.peek() != token.TRCurl {
		p.match(token.TComma)
		p.parseMember(obj)
	}
	p.match(token.TRCurl)
	return obj
}

func (p *parser) parseMember(obj *ir.Node) {
	key := p.match(token.TString)
	p.match(token.TColon)
	obj.PutNode(key.Text, p.decide())
}

func (p *parser) parseArray() *ir.Node {
	open := p.match(token.TLSquare)
	arr := ir.NewArray()
	p.trackPos(arr, open.Pos)
	if p.peek() == token.TRSquare {
		p.match(token.TRSquare)
		return arr
	}
	arr.PushNode(p.decide())
	for p.peek() != token.TEOF && p.peek() != token.TRSquare {
		p.match(token.TComma)
		arr.PushNode(p.decide())
	}
	p.match(token.TRSquare)
	return arr
}

func (p *parser) parsePrimitive() *ir.Node {
	tok := p.next()
	var res *ir.Node
	switch tok.Type {
	case token.TString:
		res = ir.FromString(tok.Text)
	case token.TInteger:
		i, err := parseInt(tok.Text)
		if err != nil {
			p.diag(ErrInvalidNumber, fmt.Sprintf("%q (%v)", tok.Text, err), tok.Pos)
		}
		res = ir.FromInt(i)
	case token.TFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.diag(ErrInvalidNumber, fmt.Sprintf("%q (%v)", tok.Text, err), tok.Pos)
		}
		res = ir.FromFloat(f)
	case token.TBool:
		res = ir.FromBool(tok.Text == "true")
	case token.TNull:
		res = ir.Null()
	case token.TEOF:
		// leave the end in place for the enclosing loops
		p.unread()
		p.diag(ErrUnexpectedEnd, "", tok.Pos)
		return ir.Null()
	default:
		p.diag(ErrUnexpectedToken, tok.String(), tok.Pos)
		return ir.Null()
	}
	p.trackPos(res, tok.Pos)
	return res
}

// match consumes the next token.  If it is not of type tt, a diagnostic is
// recorded, the token is put back and an empty token of type tt is
// returned in its place.
func (p *parser) match(tt token.TokenType) token.Token {
	tok := p.next()
	if tok.Type == tt {
		return tok
	}
	if tok.Type == token.TEOF {
		p.diag(ErrUnexpectedEnd, "", tok.Pos)
	} else {
		p.diag(ErrUnexpectedToken, tok.String(), tok.Pos)
	}
	p.unread()
	return token.Token{Type: tt, Pos: tok.Pos}
}

func (p *parser) peek() token.TokenType {
	return p.toks[min(p.i, len(p.toks)-1)].Type
}

// next returns the next token.  The final TEOF token is returned
// repeatedly once reached.
func (p *parser) next() token.Token {
	tok := p.toks[min(p.i, len(p.toks)-1)]
	p.i++
	return tok
}

func (p *parser) unread() {
	p.i--
}

func (p *parser) diag(e error, detail string, pos *token.Pos) {
	if debug.Parse() {
		debug.Logf("parse: %v %s at %d\n", e, detail, pos.I)
	}
	p.diags = append(p.diags, &ParseErr{Err: e, Detail: detail, Pos: pos})
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

// parseInt parses an integer token.  Integer tokens may carry a non
// negative exponent (2e3, 2E+3); they must denote an exact 32 bit integer.
func parseInt(text string) (int32, error) {
	if strings.ContainsAny(text, "eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return 0, fmt.Errorf("%g is not a 32 bit integer", f)
		}
		return int32(f), nil
	}
	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int32](i64)
}
