// Package xerrors defines the error values produced by the tokenizer and
// the parser. Every error carries a machine readable code and the source
// position of the offending token or character.
package xerrors

import (
	"errors"
	"fmt"

	"github.com/wnzid/SQLparser/pkg/token"
)

// Code identifies the category of a tokenize or parse error.
type Code int

const (
	// tokenize-time errors
	UnterminatedString Code = iota + 1
	InvalidNumber
	UnexpectedCharacter

	// parse-time errors
	UnexpectedToken
	ExpectedIdentifier
	EmptyProjectionList
	EmptyColumnList
	UnknownConstraint
	UnmatchedParenthesis
	TrailingTokens
	UnexpectedEndOfInput
)

var codeString = map[Code]string{
	UnterminatedString:   "unterminated string",
	InvalidNumber:        "invalid number",
	UnexpectedCharacter:  "unexpected character",
	UnexpectedToken:      "unexpected token",
	ExpectedIdentifier:   "expected identifier",
	EmptyProjectionList:  "empty projection list",
	EmptyColumnList:      "empty column list",
	UnknownConstraint:    "unknown constraint",
	UnmatchedParenthesis: "unmatched parenthesis",
	TrailingTokens:       "trailing tokens",
	UnexpectedEndOfInput: "unexpected end of input",
}

func (c Code) String() string {
	if s, found := codeString[c]; found {
		return s
	}
	return fmt.Sprintf("error(%d)", int(c))
}

// Error is an error with a code and a source position.
type Error struct {
	Code Code
	Pos  token.Position
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Msg)
}

// New constructs an Error.
func New(code Code, pos token.Position, msg string) error {
	return &Error{Code: code, Pos: pos, Msg: msg}
}

// Newf constructs an Error with a formatted message.
func Newf(code Code, pos token.Position, format string, args ...any) error {
	return &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of err, or 0 if err has none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// PositionOf returns the position of err, or an invalid position if err
// has none.
func PositionOf(err error) token.Position {
	var e *Error
	if errors.As(err, &e) {
		return e.Pos
	}
	return token.Position{}
}
