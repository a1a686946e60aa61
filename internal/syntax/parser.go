package syntax

import (
	"fmt"

	"github.com/gitrdm/gokanlogic/pkg/prolog"
)

// ErrorCategory distinguishes the two parse-failure shapes: unexpected-token
// and unexpected-EOF.
type ErrorCategory int

const (
	UnexpectedToken ErrorCategory = iota
	UnexpectedEOF
)

// ParseError is a categorized parse failure carrying the offending token
// and its source position.
type ParseError struct {
	Category ErrorCategory
	Token    Token
	Context  string
}

func (e *ParseError) Error() string {
	switch e.Category {
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input", e.Context)
	default:
		return fmt.Sprintf("%s: unexpected token %s at line %d, col %d", e.Context, describe(e.Token), e.Token.Line, e.Token.Col)
	}
}

func unexpected(context string, t Token) *ParseError {
	if t.Kind == TokenEOF {
		return &ParseError{Category: UnexpectedEOF, Token: t, Context: context}
	}
	return &ParseError{Category: UnexpectedToken, Token: t, Context: context}
}

// Parser turns a token stream into clauses and terms, following a flat
// grammar with no operator precedence beyond "binop glues two already-
// parsed primaries". It pulls tokens on demand into a one-token lookahead
// buffer.
type Parser struct {
	lex  *Lexer
	tok  Token
	have bool
}

// NewParser constructs a Parser over source text.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src)}
}

func (p *Parser) peek() Token {
	if !p.have {
		p.tok = p.lex.Next()
		p.have = true
	}
	return p.tok
}

func (p *Parser) next() Token {
	t := p.peek()
	p.have = false
	return t
}

func (p *Parser) expect(kind TokenKind, context string) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return t, unexpected(context, t)
	}
	return p.next(), nil
}

// ParseProgram parses a full program: zero or more clauses, each
// terminated by ".".
func (p *Parser) ParseProgram() ([]prolog.Clause, error) {
	var clauses []prolog.Clause
	for p.peek().Kind != TokenEOF {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// ParseQuery parses a single term terminated by "." — the REPL's unit of
// input.
func (p *Parser) ParseQuery() (prolog.Term, error) {
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot, "query"); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) parseClause() (prolog.Clause, error) {
	head, err := p.parseTerm()
	if err != nil {
		return prolog.Clause{}, err
	}

	if p.peek().Kind == TokenRule {
		p.next()
		body, err := p.parseExpr()
		if err != nil {
			return prolog.Clause{}, err
		}
		if _, err := p.expect(TokenDot, "clause"); err != nil {
			return prolog.Clause{}, err
		}
		return prolog.Rule(head, body), nil
	}

	if _, err := p.expect(TokenDot, "clause"); err != nil {
		return prolog.Clause{}, err
	}
	return prolog.Fact(head), nil
}

// parseExpr parses a comma-separated conjunction of terms, right-associated.
func (p *Parser) parseExpr() (prolog.Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenComma {
		return prolog.ExprOf(first), nil
	}
	p.next()
	rest, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &prolog.Conjunct{Left: prolog.ExprOf(first), Right: rest}, nil
}

// parseTerm parses `word(args)?`, a list, an integer, a string, or a
// binary-operator expression, applying the operator right-associatively
// with no precedence beyond "binop glues two already-parsed primaries".
func (p *Parser) parseTerm() (prolog.Term, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if op, ok := p.peekInfixOperator(); ok {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return prolog.NewCompound(op, left, right), nil
	}

	return left, nil
}

// peekInfixOperator reports whether the next token is a binary operator:
// either any TokenOperator (=, \=, >, >=, <, <=, +, -, or a single
// character the lexer does not otherwise recognize, such as * or /) or
// the word "is",
// which the grammar treats as a binop alternative for infix use. A bare
// "is" followed immediately by "(" is instead consumed whole by
// parsePrimary as a functor call and never reaches here.
func (p *Parser) peekInfixOperator() (string, bool) {
	t := p.peek()
	if t.Kind == TokenOperator {
		return t.Text, true
	}
	if t.Kind == TokenWord && t.Text == "is" {
		return "is", true
	}
	return "", false
}

func (p *Parser) parsePrimary() (prolog.Term, error) {
	t := p.peek()
	switch t.Kind {
	case TokenVar:
		p.next()
		return prolog.NewVar(t.Text), nil
	case TokenWord:
		p.next()
		return p.parseWordTail(t.Text)
	case TokenInteger:
		p.next()
		return parseInteger(t.Text), nil
	case TokenString:
		p.next()
		return prolog.NewString(t.Text), nil
	case TokenLBracket:
		return p.parseList()
	default:
		return nil, unexpected("term", t)
	}
}

func (p *Parser) parseWordTail(name string) (prolog.Term, error) {
	if p.peek().Kind != TokenLParen {
		return prolog.NewAtom(name), nil
	}
	p.next()

	var args []prolog.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().Kind == TokenComma {
			p.next()
			continue
		}
		break
	}

	if _, err := p.expect(TokenRParen, "argument list"); err != nil {
		return nil, err
	}
	return prolog.NewCompound(name, args...), nil
}

func (p *Parser) parseList() (prolog.Term, error) {
	p.next() // "["

	if p.peek().Kind == TokenRBracket {
		p.next()
		return prolog.EmptyList, nil
	}

	var elems []prolog.Term
	var tail prolog.Term = prolog.EmptyList

	for {
		elem, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		switch p.peek().Kind {
		case TokenComma:
			p.next()
			continue
		case TokenBar:
			p.next()
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			tail = t
		}
		break
	}

	if _, err := p.expect(TokenRBracket, "list"); err != nil {
		return nil, err
	}

	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = prolog.NewList(elems[i], list)
	}
	return list, nil
}

func parseInteger(text string) prolog.Term {
	neg := false
	i := 0
	if len(text) > 0 && text[0] == '-' {
		neg = true
		i = 1
	}
	var v int64
	for ; i < len(text); i++ {
		v = v*10 + int64(text[i]-'0')
	}
	if neg {
		v = -v
	}
	return prolog.NewInteger(v)
}
