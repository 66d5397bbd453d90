package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/wnzid/SQLparser/pkg/token"
	"github.com/wnzid/SQLparser/pkg/xerrors"
)

// Lexer turns scan results into classified tokens. It records the first
// error only; once Err is non-nil further results are meaningless.
type Lexer struct {
	Scanner
	err error
}

// NewLexer creates and returns a new lexer with source 'src'.
func NewLexer(src io.Reader) *Lexer {
	l := &Lexer{}
	l.Scanner.Error = func(s *Scanner, code xerrors.Code, msg string) {
		l.setErr(code, msg)
	}
	l.Scanner.Init(src)
	return l
}

// Err returns the first error encountered, if any.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) setErr(code xerrors.Code, msg string) {
	if l.err != nil {
		return
	}
	pos := l.Scanner.Position
	if !pos.IsValid() {
		pos = l.Scanner.Pos()
	}
	l.err = xerrors.New(code, pos, msg)
}

func (l *Lexer) ident(pos token.Position) token.Token {
	tt := l.TokenText()
	if kw, ok := token.LookupKeyword(strings.ToUpper(tt)); ok {
		return token.Token{Kind: token.KeywordKind, Pos: pos, Text: tt, Keyword: kw}
	}
	return token.Token{Kind: token.Ident, Pos: pos, Text: tt}
}

func (l *Lexer) number(pos token.Position) token.Token {
	tt := l.TokenText()
	v, err := strconv.ParseUint(tt, 10, 64)
	if err != nil {
		l.setErr(xerrors.InvalidNumber, errors.Unwrap(err).Error())
	}
	return token.Token{Kind: token.Number, Pos: pos, Text: tt, Number: v}
}

func (l *Lexer) str(pos token.Position) token.Token {
	// strip the delimiting quotes; on an unterminated literal the error is
	// already recorded and the closing quote is absent
	tt := l.TokenText()
	quote, tt := tt[0], tt[1:]
	if n := len(tt); n > 0 && tt[n-1] == quote {
		tt = tt[:n-1]
	}
	return token.Token{Kind: token.String, Pos: pos, Text: tt}
}

func symbolToken(pos token.Position, sym token.Symbol) token.Token {
	kind := token.Operator
	if sym.IsPunct() {
		kind = token.Punct
	}
	return token.Token{Kind: kind, Pos: pos, Text: sym.String(), Symbol: sym}
}

// Lex returns the next token, skipping comments. At the end of the source
// it returns an EOF token; on an error it records the error and returns an
// EOF token as well.
func (l *Lexer) Lex() token.Token {
	for {
		sr := l.Scan()
		pos := l.Scanner.Position

		switch sr {
		case ScanResultEOF:
			return token.Token{Kind: token.EOF, Pos: l.Pos()}

		case ScanResultComment:
			continue

		case ScanResultIdent:
			return l.ident(pos)

		case ScanResultInt:
			return l.number(pos)

		case ScanResultString:
			return l.str(pos)

		case '+':
			return symbolToken(pos, token.Plus)

		case '-':
			return symbolToken(pos, token.Minus)

		case '*':
			return symbolToken(pos, token.Star)

		case '/':
			return symbolToken(pos, token.Slash)

		case '=':
			return symbolToken(pos, token.Equal)

		case '(':
			return symbolToken(pos, token.LeftParen)

		case ')':
			return symbolToken(pos, token.RightParen)

		case ',':
			return symbolToken(pos, token.Comma)

		case ';':
			return symbolToken(pos, token.Semicolon)

		case '>':
			if l.Peek() == '=' {
				l.Next()
				return symbolToken(pos, token.GreaterOrEqual)
			}
			return symbolToken(pos, token.GreaterThan)

		case '<':
			if ch := l.Peek(); ch == '=' {
				l.Next()
				return symbolToken(pos, token.LessOrEqual)
			} else if ch == '>' {
				l.Next()
				return symbolToken(pos, token.NotEqual)
			}
			return symbolToken(pos, token.LessThan)

		case '!':
			if l.Peek() == '=' {
				l.Next()
				return symbolToken(pos, token.NotEqual)
			}
			l.setErr(xerrors.UnexpectedCharacter, `"!" is not a valid character`)
			return token.Token{Kind: token.EOF, Pos: pos}

		default:
			l.setErr(xerrors.UnexpectedCharacter,
				strconv.Quote(string(sr))+" is not a valid character")
			return token.Token{Kind: token.EOF, Pos: pos}
		}
	}
}

// Tokenize scans the whole input and returns its tokens, terminated by a
// single EOF token. It is a pure function of the input text: the first
// lexical error aborts the scan and is returned instead.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(strings.NewReader(input))

	var tokens []token.Token
	for {
		t := l.Lex()
		if err := l.Err(); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		if t.Kind == token.EOF {
			return tokens, nil
		}
	}
}
