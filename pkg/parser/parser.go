// Package parser converts SQL text into an abstract syntax tree. Tokenize
// turns text into tokens, Parser turns tokens into one statement, and
// Parse combines the two. Both are pure functions of their input: no state
// is shared across calls and the first error aborts the statement.
package parser

import (
	"log/slog"

	"github.com/wnzid/SQLparser/pkg/ast"
	"github.com/wnzid/SQLparser/pkg/token"
	"github.com/wnzid/SQLparser/pkg/xerrors"
)

// Parse tokenizes and parses one complete statement.
func Parse(input string) (ast.Statement, error) {
	slog.Debug("parse statement", slog.String("input", input))

	tokens, err := Tokenize(input)
	if err != nil {
		slog.Debug("tokenize error", slog.String("error", err.Error()))
		return nil, err
	}

	stmt, err := New(tokens).ParseStatement()
	if err != nil {
		slog.Debug("parse error", slog.String("error", err.Error()))
		return nil, err
	}
	return stmt, nil
}

// Parser consumes a token sequence and builds one statement. The cursor
// only moves forward; the grammar needs no backtracking.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a parser over a token sequence, which must end with the EOF
// token [Tokenize] appends.
func New(tokens []token.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		tokens = append(tokens, token.Token{Kind: token.EOF})
	}
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

// next returns the current token and advances the cursor. The cursor never
// moves past the trailing EOF token.
func (p *Parser) next() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expectKeyword(kw token.Keyword) error {
	t := p.peek()
	if !t.Is(kw) {
		if t.Kind == token.EOF {
			return xerrors.Newf(xerrors.UnexpectedEndOfInput, t.Pos, "expected %s", kw)
		}
		return xerrors.Newf(xerrors.UnexpectedToken, t.Pos, "expected %s, found %s", kw, t)
	}
	p.next()
	return nil
}

func (p *Parser) expectSymbol(sym token.Symbol) error {
	t := p.peek()
	if !t.IsSymbol(sym) {
		if t.Kind == token.EOF {
			return xerrors.Newf(xerrors.UnexpectedEndOfInput, t.Pos, "expected %q", sym.String())
		}
		return xerrors.Newf(xerrors.UnexpectedToken, t.Pos, "expected %q, found %s", sym.String(), t)
	}
	p.next()
	return nil
}

// expectEnd consumes an optional statement terminator and requires the end
// of the input after it.
func (p *Parser) expectEnd() error {
	if p.peek().IsSymbol(token.Semicolon) {
		p.next()
	}
	if t := p.peek(); t.Kind != token.EOF {
		return xerrors.Newf(xerrors.TrailingTokens, t.Pos, "unexpected %s after end of statement", t)
	}
	return nil
}

// ParseStatement parses one statement, dispatching on the first token.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	switch t := p.peek(); {
	case t.Is(token.SELECT):
		p.next()
		return p.parseSelect()
	case t.Is(token.CREATE):
		p.next()
		return p.parseCreateTable()
	case t.Kind == token.EOF:
		return nil, xerrors.New(xerrors.UnexpectedEndOfInput, t.Pos, "expected SELECT or CREATE")
	default:
		return nil, xerrors.Newf(xerrors.UnexpectedToken, t.Pos, "expected SELECT or CREATE, found %s", t)
	}
}

func (p *Parser) parseSelect() (ast.Statement, error) {
	if t := p.peek(); t.Is(token.FROM) {
		return nil, xerrors.New(xerrors.EmptyProjectionList, t.Pos, "SELECT requires at least one column")
	}

	columns, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}

	if err = p.expectKeyword(token.FROM); err != nil {
		return nil, err
	}
	t := p.next()
	if t.Kind != token.Ident {
		return nil, xerrors.Newf(xerrors.ExpectedIdentifier, t.Pos, "expected table name, found %s", t)
	}
	stmt := &ast.SelectStatement{Columns: columns, From: t.Text}

	if p.peek().Is(token.WHERE) {
		p.next()
		if stmt.Where, err = p.parseExpression(precNone); err != nil {
			return nil, err
		}
	}

	if p.peek().Is(token.ORDER) {
		p.next()
		if err = p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		if stmt.OrderBy, err = p.parseOrderByList(); err != nil {
			return nil, err
		}
	}

	if err = p.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpressionList parses a comma separated list of expressions.
func (p *Parser) parseExpressionList() ([]ast.Expression, error) {
	var exprs []ast.Expression
	for {
		expr, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.peek().IsSymbol(token.Comma) {
			return exprs, nil
		}
		p.next()
	}
}

// parseOrderByList parses the items of an ORDER BY clause. Each item is an
// expression optionally suffixed by ASC or DESC, ascending by default, and
// is wrapped as a unary operation tagged with the direction.
func (p *Parser) parseOrderByList() ([]ast.Expression, error) {
	var exprs []ast.Expression
	for {
		expr, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}

		dir := ast.OpAsc
		if t := p.peek(); t.Is(token.ASC) {
			p.next()
		} else if t.Is(token.DESC) {
			p.next()
			dir = ast.OpDesc
		}
		exprs = append(exprs, &ast.UnaryOperation{Op: dir, Operand: expr})

		if !p.peek().IsSymbol(token.Comma) {
			return exprs, nil
		}
		p.next()
	}
}

func (p *Parser) parseCreateTable() (ast.Statement, error) {
	if err := p.expectKeyword(token.TABLE); err != nil {
		return nil, err
	}

	t := p.next()
	if t.Kind != token.Ident {
		return nil, xerrors.Newf(xerrors.ExpectedIdentifier, t.Pos, "expected table name, found %s", t)
	}
	stmt := &ast.CreateTableStatement{Name: t.Text}

	if err := p.expectSymbol(token.LeftParen); err != nil {
		return nil, err
	}
	if t := p.peek(); t.IsSymbol(token.RightParen) {
		return nil, xerrors.New(xerrors.EmptyColumnList, t.Pos, "a table requires at least one column")
	}

	for {
		col, err := p.parseColumnDefinition()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)

		t := p.next()
		if t.IsSymbol(token.RightParen) {
			break
		}
		if !t.IsSymbol(token.Comma) {
			if t.Kind == token.EOF {
				return nil, xerrors.New(xerrors.UnexpectedEndOfInput, t.Pos, `expected "," or ")"`)
			}
			return nil, xerrors.Newf(xerrors.UnexpectedToken, t.Pos, `expected "," or ")", found %s`, t)
		}
	}

	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseColumnDefinition() (ast.ColumnDefinition, error) {
	var col ast.ColumnDefinition

	t := p.next()
	if t.Kind != token.Ident {
		return col, xerrors.Newf(xerrors.ExpectedIdentifier, t.Pos, "expected column name, found %s", t)
	}
	col.Name = t.Text

	typ, err := p.parseColumnType()
	if err != nil {
		return col, err
	}
	col.Type = typ

	col.Constraints, err = p.parseConstraints()
	return col, err
}

func (p *Parser) parseColumnType() (ast.ColumnType, error) {
	switch t := p.next(); {
	case t.Is(token.INT):
		return ast.ColumnType{Kind: ast.TypeInt}, nil

	case t.Is(token.BOOL):
		return ast.ColumnType{Kind: ast.TypeBool}, nil

	case t.Is(token.TEXT):
		return ast.ColumnType{Kind: ast.TypeText}, nil

	case t.Is(token.VARCHAR):
		if err := p.expectSymbol(token.LeftParen); err != nil {
			return ast.ColumnType{}, err
		}
		lt := p.next()
		if lt.Kind != token.Number {
			return ast.ColumnType{}, xerrors.Newf(xerrors.UnexpectedToken, lt.Pos,
				"expected VARCHAR length, found %s", lt)
		}
		if err := p.expectSymbol(token.RightParen); err != nil {
			return ast.ColumnType{}, err
		}
		return ast.ColumnType{Kind: ast.TypeVarchar, Length: lt.Number}, nil

	default:
		return ast.ColumnType{}, xerrors.Newf(xerrors.UnexpectedToken, t.Pos,
			"expected column type, found %s", t)
	}
}

// parseConstraints parses zero or more column constraints. The loop stops
// at the first non-keyword token; a keyword which cannot start a
// constraint is an error.
func (p *Parser) parseConstraints() ([]ast.Constraint, error) {
	var constraints []ast.Constraint
	for p.peek().Kind == token.KeywordKind {
		t := p.next()
		switch t.Keyword {
		case token.PRIMARY:
			if err := p.expectKeyword(token.KEY); err != nil {
				return nil, err
			}
			constraints = append(constraints, ast.Constraint{Kind: ast.PrimaryKey})

		case token.NOT:
			if err := p.expectKeyword(token.NULL); err != nil {
				return nil, err
			}
			constraints = append(constraints, ast.Constraint{Kind: ast.NotNull})

		case token.UNIQUE:
			constraints = append(constraints, ast.Constraint{Kind: ast.Unique})

		case token.DEFAULT:
			value, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, ast.Constraint{Kind: ast.Default, Value: value})

		case token.CHECK:
			if err := p.expectSymbol(token.LeftParen); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression(precNone)
			if err != nil {
				return nil, err
			}
			if rt := p.peek(); !rt.IsSymbol(token.RightParen) {
				return nil, xerrors.Newf(xerrors.UnmatchedParenthesis, rt.Pos,
					`expected ")", found %s`, rt)
			}
			p.next()
			constraints = append(constraints, ast.Constraint{Kind: ast.Check, Value: expr})

		default:
			return nil, xerrors.Newf(xerrors.UnknownConstraint, t.Pos,
				"%s cannot start a column constraint", t.Keyword)
		}
	}
	return constraints, nil
}

// parseLiteral parses the literal value of a DEFAULT constraint: a number,
// a string, a boolean, or a sign-prefixed number.
func (p *Parser) parseLiteral() (ast.Expression, error) {
	switch t := p.next(); {
	case t.Kind == token.Number:
		return &ast.NumberLiteral{Value: t.Number}, nil
	case t.Kind == token.String:
		return &ast.StringLiteral{Value: t.Text}, nil
	case t.Is(token.TRUE):
		return &ast.BoolLiteral{Value: true}, nil
	case t.Is(token.FALSE):
		return &ast.BoolLiteral{Value: false}, nil
	case t.IsSymbol(token.Minus) || t.IsSymbol(token.Plus):
		op := ast.OpNeg
		if t.Symbol == token.Plus {
			op = ast.OpPos
		}
		operand, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{Op: op, Operand: operand}, nil
	case t.Kind == token.EOF:
		return nil, xerrors.New(xerrors.UnexpectedEndOfInput, t.Pos, "expected a literal")
	default:
		return nil, xerrors.Newf(xerrors.UnexpectedToken, t.Pos, "expected a literal, found %s", t)
	}
}

// Binding powers of the expression grammar, low to high. Unary operators
// bind tighter than any binary operator.
const (
	precNone = iota
	precOr
	precAnd
	precCompare
	precAdditive
	precMultiplicative
	precUnary
)

// The Pratt loop consults these tables; adding an operator is a table
// entry, not a control flow change. All binary operators are
// left-associative.
var infixSymbols = map[token.Symbol]struct {
	op   ast.Operator
	prec int
}{
	token.Plus:           {ast.OpAdd, precAdditive},
	token.Minus:          {ast.OpSub, precAdditive},
	token.Star:           {ast.OpMul, precMultiplicative},
	token.Slash:          {ast.OpDiv, precMultiplicative},
	token.Equal:          {ast.OpEqual, precCompare},
	token.NotEqual:       {ast.OpNotEqual, precCompare},
	token.LessThan:       {ast.OpLessThan, precCompare},
	token.LessOrEqual:    {ast.OpLessOrEqual, precCompare},
	token.GreaterThan:    {ast.OpGreaterThan, precCompare},
	token.GreaterOrEqual: {ast.OpGreaterOrEqual, precCompare},
}

var infixKeywords = map[token.Keyword]struct {
	op   ast.Operator
	prec int
}{
	token.AND: {ast.OpAnd, precAnd},
	token.OR:  {ast.OpOr, precOr},
}

// infixOf returns the operator and binding power of a binary operator
// token, or ok == false if the token is not a binary operator.
func infixOf(t token.Token) (op ast.Operator, prec int, ok bool) {
	switch t.Kind {
	case token.Operator:
		if in, found := infixSymbols[t.Symbol]; found {
			return in.op, in.prec, true
		}
	case token.KeywordKind:
		if in, found := infixKeywords[t.Keyword]; found {
			return in.op, in.prec, true
		}
	}
	return 0, 0, false
}

// parseExpression parses an expression whose binary operators all bind at
// least as tightly as minPrec. It parses one prefix expression, then folds
// binary operators left to right: the right-hand side of each operator is
// parsed with a threshold one level higher, which makes equal-precedence
// operators group to the left.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		op, prec, ok := infixOf(p.peek())
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperation{Op: op, Left: left, Right: right}
	}
}

// parsePrefix parses a primary expression: a literal, an identifier, a
// parenthesized sub-expression, or a unary operation.
func (p *Parser) parsePrefix() (ast.Expression, error) {
	t := p.next()
	switch t.Kind {
	case token.Number:
		return &ast.NumberLiteral{Value: t.Number}, nil

	case token.String:
		return &ast.StringLiteral{Value: t.Text}, nil

	case token.Ident:
		return &ast.Identifier{Name: t.Text}, nil

	case token.KeywordKind:
		switch t.Keyword {
		case token.TRUE:
			return &ast.BoolLiteral{Value: true}, nil
		case token.FALSE:
			return &ast.BoolLiteral{Value: false}, nil
		case token.NOT:
			return p.parseUnary(ast.OpNot)
		}

	case token.Operator:
		switch t.Symbol {
		case token.Minus:
			return p.parseUnary(ast.OpNeg)
		case token.Plus:
			return p.parseUnary(ast.OpPos)
		}

	case token.Punct:
		if t.Symbol == token.LeftParen {
			expr, err := p.parseExpression(precNone)
			if err != nil {
				return nil, err
			}
			if rt := p.peek(); !rt.IsSymbol(token.RightParen) {
				return nil, xerrors.Newf(xerrors.UnmatchedParenthesis, rt.Pos,
					`expected ")", found %s`, rt)
			}
			p.next()
			return expr, nil
		}

	case token.EOF:
		return nil, xerrors.New(xerrors.UnexpectedEndOfInput, t.Pos, "expected an expression")
	}

	return nil, xerrors.Newf(xerrors.UnexpectedToken, t.Pos, "%s cannot start an expression", t)
}

func (p *Parser) parseUnary(op ast.Operator) (ast.Expression, error) {
	operand, err := p.parseExpression(precUnary)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOperation{Op: op, Operand: operand}, nil
}
