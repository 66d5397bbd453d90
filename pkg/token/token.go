// Package token defines the lexical tokens of the SQL subset understood by
// this module, along with source positions for error reporting.
package token

import "fmt"

// Position is a value that represents a source position.
// A position is valid if Line > 0.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number, starting at 1 (character count per line)
}

// IsValid reports whether the position is valid.
func (pos Position) IsValid() bool { return pos.Line > 0 }

func (pos Position) String() string {
	s := "<input>"
	if pos.IsValid() {
		s += fmt.Sprintf(":%d:%d", pos.Line, pos.Column)
	}
	return s
}

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Ident
	KeywordKind
	Number
	String
	Operator
	Punct
)

var kindString = map[Kind]string{
	EOF:         "end of input",
	Ident:       "identifier",
	KeywordKind: "keyword",
	Number:      "number",
	String:      "string",
	Operator:    "operator",
	Punct:       "punctuation",
}

func (k Kind) String() string {
	if s, found := kindString[k]; found {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Keyword identifies one of the reserved words. Identifiers are matched
// against the keyword set case-insensitively.
type Keyword int

const (
	SELECT Keyword = iota
	FROM
	WHERE
	CREATE
	TABLE
	ORDER
	BY
	ASC
	DESC
	AND
	OR
	NOT
	TRUE
	FALSE
	PRIMARY
	KEY
	UNIQUE
	DEFAULT
	CHECK
	NULL
	INT
	BOOL
	VARCHAR
	TEXT
)

var keywordString = [...]string{
	SELECT:  "SELECT",
	FROM:    "FROM",
	WHERE:   "WHERE",
	CREATE:  "CREATE",
	TABLE:   "TABLE",
	ORDER:   "ORDER",
	BY:      "BY",
	ASC:     "ASC",
	DESC:    "DESC",
	AND:     "AND",
	OR:      "OR",
	NOT:     "NOT",
	TRUE:    "TRUE",
	FALSE:   "FALSE",
	PRIMARY: "PRIMARY",
	KEY:     "KEY",
	UNIQUE:  "UNIQUE",
	DEFAULT: "DEFAULT",
	CHECK:   "CHECK",
	NULL:    "NULL",
	INT:     "INT",
	BOOL:    "BOOL",
	VARCHAR: "VARCHAR",
	TEXT:    "TEXT",
}

func (kw Keyword) String() string {
	if int(kw) < len(keywordString) {
		return keywordString[kw]
	}
	return fmt.Sprintf("keyword(%d)", int(kw))
}

// keywords maps the upper-cased text of each keyword to its identity.
var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordString))
	for kw, s := range keywordString {
		m[s] = Keyword(kw)
	}
	return m
}()

// LookupKeyword reports whether the upper-cased identifier text is a
// reserved word.
func LookupKeyword(upper string) (Keyword, bool) {
	kw, ok := keywords[upper]
	return kw, ok
}

// Symbol identifies an operator or punctuation token.
type Symbol int

const (
	Plus Symbol = iota
	Minus
	Star
	Slash
	Equal
	NotEqual
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	LeftParen
	RightParen
	Comma
	Semicolon
)

var symbolString = [...]string{
	Plus:           "+",
	Minus:          "-",
	Star:           "*",
	Slash:          "/",
	Equal:          "=",
	NotEqual:       "<>",
	LessThan:       "<",
	LessOrEqual:    "<=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	LeftParen:      "(",
	RightParen:     ")",
	Comma:          ",",
	Semicolon:      ";",
}

func (sym Symbol) String() string {
	if int(sym) < len(symbolString) {
		return symbolString[sym]
	}
	return fmt.Sprintf("symbol(%d)", int(sym))
}

// IsPunct reports whether the symbol is punctuation rather than an operator.
func (sym Symbol) IsPunct() bool {
	switch sym {
	case LeftParen, RightParen, Comma, Semicolon:
		return true
	}
	return false
}

// Token is one classified lexical unit. Tokens are immutable once produced;
// which payload field is meaningful depends on Kind.
type Token struct {
	Kind    Kind
	Pos     Position
	Text    string  // identifier name or string literal content
	Number  uint64  // Kind == Number
	Keyword Keyword // Kind == KeywordKind
	Symbol  Symbol  // Kind == Operator or Punct
}

// String returns a printable description of the token, for error messages.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case KeywordKind:
		return "keyword " + t.Keyword.String()
	case Number:
		return fmt.Sprintf("number %d", t.Number)
	case String:
		return fmt.Sprintf("string %q", t.Text)
	default:
		return fmt.Sprintf("%q", t.Symbol.String())
	}
}

// Is reports whether the token is the given keyword.
func (t Token) Is(kw Keyword) bool {
	return t.Kind == KeywordKind && t.Keyword == kw
}

// IsSymbol reports whether the token is the given operator or punctuation.
func (t Token) IsSymbol(sym Symbol) bool {
	return (t.Kind == Operator || t.Kind == Punct) && t.Symbol == sym
}
