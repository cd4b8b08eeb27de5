package parser

import "github.com/gosuda/algofr/ast"

type Parser struct {
	tokens []Token
	pos    int
}

// NewParser drops NEWLINE tokens; the grammar is statement oriented and
// positions are carried by the remaining tokens.
func NewParser(tokens []Token) *Parser {
	filtered := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != NEWLINE {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		filtered = append(filtered, Token{Kind: EOF, Line: line})
	}
	return &Parser{tokens: filtered}
}

// Parse builds a program from a token sequence.
func Parse(tokens []Token) (*ast.Program, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind Kind) (Token, error) {
	t := p.current()
	if t.Kind != kind {
		return t, &SyntaxError{Line: t.Line, Expected: kind.String(), Got: t.Kind}
	}
	return p.advance(), nil
}

func (p *Parser) Parse() (*ast.Program, error) {
	if _, err := p.expect(DEBUT); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(FIN); err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

func endsBlock(k Kind) bool {
	switch k {
	case FIN, FINSI, FINTANTQUE, FINPOUR, SINON, EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStatements() ([]ast.Statement, error) {
	stmts := []ast.Statement{}
	for !endsBlock(p.current().Kind) {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	t := p.current()
	switch t.Kind {
	case IDENTIFIER:
		return p.parseAssignment()
	case ECRIRE:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.WriteStmt{Expr: e, Line: t.Line}, nil
	case LIRE:
		p.advance()
		id, err := p.expect(IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return ast.ReadStmt{Name: id.Lit, Line: t.Line}, nil
	case SI:
		return p.parseIf()
	case TANTQUE:
		return p.parseWhile()
	case POUR:
		return p.parseFor()
	default:
		return nil, &SyntaxError{Line: t.Line, Expected: "instruction", Got: t.Kind}
	}
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	id, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.AssignStmt{Name: id.Lit, Expr: e, Line: id.Line}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	si := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ALORS); err != nil {
		return nil, err
	}
	then, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Cond: cond, Then: then, Line: si.Line}
	if p.current().Kind == SINON {
		p.advance()
		els, err := p.parseStatements()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
		stmt.HasElse = true
	}
	if _, err := p.expect(FINSI); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	kw := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(FINTANTQUE); err != nil {
		return nil, err
	}
	return ast.WhileStmt{Cond: cond, Body: body, Line: kw.Line}, nil
}

// parseFor reads `Pour id ← start <op> end`. The start bound stops at the
// additive level so the direction operator is left for the loop header.
func (p *Parser) parseFor() (ast.Statement, error) {
	kw := p.advance()
	id, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	switch op := p.current(); op.Kind {
	case LTE, GTE, LT, GT:
		p.advance()
	default:
		return nil, &SyntaxError{Line: op.Line, Expected: "LTE|GTE|LT|GT", Got: op.Kind}
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(FINPOUR); err != nil {
		return nil, err
	}
	return ast.ForStmt{Var: id.Lit, Start: start, End: end, Body: body, Line: kw.Line}, nil
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == OU {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right, Line: op.Line}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == ET {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right, Line: op.Line}
	}
	return left, nil
}

var comparisonOps = map[Kind]ast.Op{
	GT:  ast.OpGT,
	LT:  ast.OpLT,
	EQ:  ast.OpEQ,
	GTE: ast.OpGTE,
	LTE: ast.OpLTE,
}

// parseComparison accepts at most one comparison operator.
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOps[p.current().Kind]
	if !ok {
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{Op: op, Left: left, Right: right, Line: tok.Line}, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch p.current().Kind {
		case PLUS:
			op = ast.OpAdd
		case MINUS:
			op = ast.OpSub
		default:
			return left, nil
		}
		tok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right, Line: tok.Line}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch p.current().Kind {
		case MULTIPLY:
			op = ast.OpMul
		case DIVIDE:
			op = ast.OpDiv
		default:
			return left, nil
		}
		tok := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right, Line: tok.Line}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.current()
	switch t.Kind {
	case NUMBER:
		p.advance()
		return ast.NumberLit{Value: t.Num}, nil
	case STRING:
		p.advance()
		return ast.StringLit{Value: t.Lit}, nil
	case IDENTIFIER:
		p.advance()
		return ast.Ident{Name: t.Lit, Line: t.Line}, nil
	case MINUS:
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Op: ast.OpSub, Left: ast.NumberLit{Value: 0}, Right: operand, Line: t.Line}, nil
	default:
		return nil, &SyntaxError{Line: t.Line, Expected: "expression", Got: t.Kind}
	}
}
