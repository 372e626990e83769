// Package parse turns arithmetic expression text into expr trees.
//
// The grammar is the usual arithmetic one, lowest precedence first:
//
//	or, and, not, comparisons (== != < <= > >=, chainable),
//	|, ⊕ (xor), &, << >>, + -, * / // %,
//	unary + - ~, power ^ or ** (right-associative),
//	calls f(a, b), then literals, identifiers and parentheses.
//
// The parser accepts more than the evaluator reduces; rejecting names,
// floats, calls and the extra operators is left to expr.Eval so the error
// can name the offending node.
package parse

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/PacifiK2460/python-plotter/pkg/expr"
	"github.com/cockroachdb/errors"
)

// ErrSyntax marks every error returned by Parse and Lex.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports malformed expression text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at offset %d: %s", e.Pos, e.Msg)
}

func syntaxErrorf(pos int, format string, args ...interface{}) error {
	return errors.Mark(&SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}, ErrSyntax)
}

var binaryTokens = map[TokenType]expr.BinaryOp{
	TokenPlus:       expr.OpAdd,
	TokenMinus:      expr.OpSub,
	TokenStar:       expr.OpMul,
	TokenSlash:      expr.OpDiv,
	TokenSlashSlash: expr.OpFloorDiv,
	TokenPercent:    expr.OpMod,
	TokenCaret:      expr.OpPow,
	TokenStarStar:   expr.OpPow,
	TokenXor:        expr.OpXor,
	TokenAmp:        expr.OpBitAnd,
	TokenPipe:       expr.OpBitOr,
	TokenShl:        expr.OpLShift,
	TokenShr:        expr.OpRShift,
}

var compareTokens = map[TokenType]expr.CompareOp{
	TokenEq: expr.OpEq,
	TokenNe: expr.OpNotEq,
	TokenLt: expr.OpLt,
	TokenLe: expr.OpLtE,
	TokenGt: expr.OpGt,
	TokenGe: expr.OpGtE,
}

// binaryLevels lists the left-associative binary levels from loosest to
// tightest.
var binaryLevels = [][]TokenType{
	{TokenPipe},
	{TokenXor},
	{TokenAmp},
	{TokenShl, TokenShr},
	{TokenPlus, TokenMinus},
	{TokenStar, TokenSlash, TokenSlashSlash, TokenPercent},
}

var keywords = map[string]bool{"and": true, "or": true, "not": true}

type parser struct {
	toks []Token
	pos  int
}

// Parse parses src into an expression tree.
func Parse(src string) (expr.Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, syntaxErrorf(0, "empty expression")
	}
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, p.unexpected(tok)
	}
	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) isKeyword(word string) bool {
	tok := p.peek()
	return tok.Type == TokenIdent && tok.Text == word
}

func (p *parser) unexpected(tok Token) error {
	if tok.Type == TokenEOF {
		return syntaxErrorf(tok.Pos, "unexpected end of expression")
	}
	return syntaxErrorf(tok.Pos, "unexpected %q", tok.Text)
}

func (p *parser) parseOr() (expr.Node, error)  { return p.parseBool(expr.OpOr, "or", p.parseAnd) }
func (p *parser) parseAnd() (expr.Node, error) { return p.parseBool(expr.OpAnd, "and", p.parseNot) }

func (p *parser) parseBool(op expr.BoolOp, word string, operand func() (expr.Node, error)) (expr.Node, error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	if !p.isKeyword(word) {
		return first, nil
	}
	values := []expr.Node{first}
	for p.isKeyword(word) {
		p.next()
		v, err := operand()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &expr.BoolNode{Op: op, Values: values}, nil
}

func (p *parser) parseNot() (expr.Node, error) {
	if p.isKeyword("not") {
		p.next()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &expr.UnaryNode{Op: expr.OpNot, Child: child}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (expr.Node, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	var cmp *expr.CompareNode
	for {
		op, ok := compareTokens[p.peek().Type]
		if !ok {
			break
		}
		p.next()
		right, err := p.parseBinary(0)
		if err != nil {
			return nil, err
		}
		if cmp == nil {
			cmp = &expr.CompareNode{Left: left}
		}
		cmp.Ops = append(cmp.Ops, op)
		cmp.Comparators = append(cmp.Comparators, right)
	}
	if cmp == nil {
		return left, nil
	}
	return cmp, nil
}

// parseBinary parses the left-associative level at index level of
// binaryLevels; past the last level it descends to unary operators.
func (p *parser) parseBinary(level int) (expr.Node, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.atLevel(level) {
		op := binaryTokens[p.next().Type]
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &expr.BinaryNode{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) atLevel(level int) bool {
	tt := p.peek().Type
	for _, candidate := range binaryLevels[level] {
		if tt == candidate {
			return true
		}
	}
	return false
}

func (p *parser) parseUnary() (expr.Node, error) {
	var op expr.UnaryOp
	switch p.peek().Type {
	case TokenMinus:
		op = expr.OpNeg
	case TokenPlus:
		op = expr.OpPos
	case TokenTilde:
		op = expr.OpInvert
	default:
		return p.parsePower()
	}
	p.next()
	child, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &expr.UnaryNode{Op: op, Child: child}, nil
}

// parsePower binds tighter than a unary operator on its left (-2^2 is
// -(2^2)) and looser than one on its right (2^-1).
func (p *parser) parsePower() (expr.Node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if tt := p.peek().Type; tt != TokenCaret && tt != TokenStarStar {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &expr.BinaryNode{Op: expr.OpPow, Left: base, Right: exp}, nil
}

func (p *parser) parsePostfix() (expr.Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenLParen {
		p.next()
		call := &expr.CallNode{Func: n}
		if p.peek().Type != TokenRParen {
			for {
				arg, err := p.parseOr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if p.peek().Type != TokenComma {
					break
				}
				p.next()
				if p.peek().Type == TokenRParen {
					break
				}
			}
		}
		if tok := p.next(); tok.Type != TokenRParen {
			return nil, p.closing(tok)
		}
		n = call
	}
	return n, nil
}

func (p *parser) parseAtom() (expr.Node, error) {
	tok := p.next()
	switch tok.Type {
	case TokenInt:
		v, ok := new(big.Int).SetString(tok.Text, 0)
		if !ok {
			return nil, syntaxErrorf(tok.Pos, "invalid integer literal %q", tok.Text)
		}
		return &expr.ConstNode{Val: v}, nil

	case TokenFloat:
		f, err := strconv.ParseFloat(strings.ReplaceAll(tok.Text, "_", ""), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, syntaxErrorf(tok.Pos, "invalid float literal %q", tok.Text)
		}
		return &expr.FloatNode{Val: f, Text: tok.Text}, nil

	case TokenIdent:
		if keywords[tok.Text] {
			return nil, p.unexpected(tok)
		}
		return &expr.NameNode{Name: tok.Text}, nil

	case TokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return nil, p.closing(closing)
		}
		return inner, nil

	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) closing(tok Token) error {
	if tok.Type == TokenEOF {
		return syntaxErrorf(tok.Pos, "'(' was never closed")
	}
	return syntaxErrorf(tok.Pos, "expected ')', found %q", tok.Text)
}
