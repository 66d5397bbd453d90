package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnzid/SQLparser/pkg/token"
	"github.com/wnzid/SQLparser/pkg/xerrors"
)

func checkKeyword(t *testing.T, l *Lexer, kw token.Keyword) {
	t.Helper()
	if tok := l.Lex(); !tok.Is(kw) {
		t.Errorf("got %s, want keyword %s", tok, kw)
	}
}

func checkIdent(t *testing.T, l *Lexer, name string) {
	t.Helper()
	if tok := l.Lex(); tok.Kind != token.Ident || tok.Text != name {
		t.Errorf("got %s, want identifier %q", tok, name)
	}
}

func checkNumber(t *testing.T, l *Lexer, val uint64) {
	t.Helper()
	if tok := l.Lex(); tok.Kind != token.Number || tok.Number != val {
		t.Errorf("got %s, want number %d", tok, val)
	}
}

func checkString(t *testing.T, l *Lexer, val string) {
	t.Helper()
	if tok := l.Lex(); tok.Kind != token.String || tok.Text != val {
		t.Errorf("got %s, want string %q", tok, val)
	}
}

func checkSymbol(t *testing.T, l *Lexer, sym token.Symbol) {
	t.Helper()
	if tok := l.Lex(); !tok.IsSymbol(sym) {
		t.Errorf("got %s, want %q", tok, sym.String())
	}
}

func TestLexer(t *testing.T) {
	src := `
-- this is a line comment
/* this is
 a block comment */
SELECT select Selected "literal" 'single'
FROM users WHERE id >= 10 AND name <> 'x' != 'y'
ORDER BY id DESC;
( ) , + - * / = < <= > CREATE TABLE varchar`

	l := NewLexer(strings.NewReader(src))

	checkKeyword(t, l, token.SELECT)
	checkKeyword(t, l, token.SELECT) // keyword match is case-insensitive
	checkIdent(t, l, "Selected")
	checkString(t, l, "literal")
	checkString(t, l, "single")
	checkKeyword(t, l, token.FROM)
	checkIdent(t, l, "users")
	checkKeyword(t, l, token.WHERE)
	checkIdent(t, l, "id")
	checkSymbol(t, l, token.GreaterOrEqual)
	checkNumber(t, l, 10)
	checkKeyword(t, l, token.AND)
	checkIdent(t, l, "name")
	checkSymbol(t, l, token.NotEqual)
	checkString(t, l, "x")
	checkSymbol(t, l, token.NotEqual)
	checkString(t, l, "y")
	checkKeyword(t, l, token.ORDER)
	checkKeyword(t, l, token.BY)
	checkIdent(t, l, "id")
	checkKeyword(t, l, token.DESC)
	checkSymbol(t, l, token.Semicolon)
	checkSymbol(t, l, token.LeftParen)
	checkSymbol(t, l, token.RightParen)
	checkSymbol(t, l, token.Comma)
	checkSymbol(t, l, token.Plus)
	checkSymbol(t, l, token.Minus)
	checkSymbol(t, l, token.Star)
	checkSymbol(t, l, token.Slash)
	checkSymbol(t, l, token.Equal)
	checkSymbol(t, l, token.LessThan)
	checkSymbol(t, l, token.LessOrEqual)
	checkSymbol(t, l, token.GreaterThan)
	checkKeyword(t, l, token.CREATE)
	checkKeyword(t, l, token.TABLE)
	checkKeyword(t, l, token.VARCHAR)

	if tok := l.Lex(); tok.Kind != token.EOF {
		t.Errorf("got %s, want end of input", tok)
	}
	if err := l.Err(); err != nil {
		t.Errorf("unexpected lexer error: %v", err)
	}
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("SELECT id FROM users;")
	require.NoError(t, err)
	require.Len(t, tokens, 6)
	assert.True(tokens[0].Is(token.SELECT))
	assert.Equal(token.Ident, tokens[1].Kind)
	assert.Equal("id", tokens[1].Text)
	assert.True(tokens[2].Is(token.FROM))
	assert.True(tokens[4].IsSymbol(token.Semicolon))
	assert.Equal(token.EOF, tokens[5].Kind)

	// token positions are 0-based offsets and 1-based line/column
	assert.Equal(token.Position{Offset: 7, Line: 1, Column: 8}, tokens[1].Pos)

	tokens, err = Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(token.EOF, tokens[0].Kind)
}

func TestTokenizeErrors(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		input  string
		code   xerrors.Code
		offset int
	}{
		{"SELECT 'abc FROM t;", xerrors.UnterminatedString, 7},
		{`SELECT "abc FROM t;`, xerrors.UnterminatedString, 7},
		{"SELECT 12x FROM t;", xerrors.InvalidNumber, 7},
		{"99999999999999999999999999999999", xerrors.InvalidNumber, 0},
		{"SELECT @ FROM t;", xerrors.UnexpectedCharacter, 7},
		{"a ! b", xerrors.UnexpectedCharacter, 2},
		{"SELECT a /* comment", xerrors.UnexpectedCharacter, 9},
	}

	for _, c := range cases {
		tokens, err := Tokenize(c.input)
		assert.Nil(tokens, c.input)
		assert.Equal(c.code, xerrors.CodeOf(err), c.input)
		assert.Equal(c.offset, xerrors.PositionOf(err).Offset, c.input)
	}
}
