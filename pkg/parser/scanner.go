// The content of this file and the corresponding test cases are based on Go's
// text/scanner, with modifications.

package parser

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/wnzid/SQLparser/pkg/token"
	"github.com/wnzid/SQLparser/pkg/xerrors"
)

// The result of Scan is one of these values or a Unicode character.
const (
	ScanResultEOF = -(iota + 1)
	ScanResultComment
	ScanResultIdent
	ScanResultInt
	ScanResultString
)

var scanResultString = map[rune]string{
	ScanResultEOF:     "EOF",
	ScanResultComment: "comment",
	ScanResultIdent:   "ident",
	ScanResultInt:     "integer",
	ScanResultString:  "string",
}

// TokenString returns a printable string for a scan result or Unicode
// character.
func TokenString(sr rune) string {
	if s, found := scanResultString[sr]; found {
		return s
	}
	return fmt.Sprintf("%q", string(sr))
}

const bufLen = 1024 // at least utf8.UTFMax

// Scanner implements a character level scanner for UTF-8-encoded SQL text.
// It takes an io.Reader providing the source, which then can be tokenized
// through repeated calls to the Scan function. The NUL character is not
// allowed. If the first character in the source is a UTF-8 encoded byte
// order mark (BOM), it is discarded.
type Scanner struct {
	// Input
	src io.Reader

	// Source buffer
	srcBuf [bufLen + 1]byte // +1 for sentinel for common case of s.next()
	srcPos int              // reading position (srcBuf index)
	srcEnd int              // source end (srcBuf index)

	// Source position
	srcBufOffset int // byte offset of srcBuf[0] in source
	line         int // line count
	column       int // character count
	lastLineLen  int // length of last line in characters (for correct column reporting)
	lastCharLen  int // length of last character in bytes

	// Token text buffer
	// Typically, token text is stored completely in srcBuf, but in general
	// the token text's head may be buffered in tokBuf while the token text's
	// tail is stored in srcBuf.
	tokBuf bytes.Buffer // token text head that is not in srcBuf anymore
	tokPos int          // token text tail position (srcBuf index); valid if >= 0
	tokEnd int          // token text tail end (srcBuf index)

	// One character look-ahead
	ch rune // character before current srcPos

	// Error is called for each error encountered with a code from the
	// tokenize-time taxonomy. If no Error function is set, errors are
	// silently counted.
	Error func(s *Scanner, code xerrors.Code, msg string)

	// ErrorCount is incremented by one for each error encountered.
	ErrorCount int

	// Start position of most recently scanned token; set by Scan.
	// Calling Init invalidates the position (Line == 0).
	// If an error is reported and Position is invalid, the scanner is not
	// inside a token. Call Pos to obtain an error position in that case,
	// or to obtain the position immediately after the most recently
	// scanned token.
	token.Position
}

// Init initializes a [Scanner] with a new source and returns s.
// [Scanner.ErrorCount] is set to 0.
func (s *Scanner) Init(src io.Reader) *Scanner {
	s.src = src

	// initialize source buffer
	// (the first call to next() will fill it by calling src.Read)
	s.srcBuf[0] = utf8.RuneSelf // sentinel
	s.srcPos = 0
	s.srcEnd = 0

	// initialize source position
	s.srcBufOffset = 0
	s.line = 1
	s.column = 0
	s.lastLineLen = 0
	s.lastCharLen = 0

	// initialize token text buffer
	// (required for first call to next()).
	s.tokPos = -1

	// initialize one character look-ahead
	s.ch = -2 // no char read yet, not EOF

	// initialize public fields
	s.ErrorCount = 0
	s.Line = 0 // invalidate token position

	return s
}

// next reads and returns the next Unicode character. It is designed such
// that only a minimal amount of work needs to be done in the common ASCII
// case (one test to check for both ASCII and end-of-buffer, and one test
// to check for newlines).
func (s *Scanner) next() rune {
	ch, width := rune(s.srcBuf[s.srcPos]), 1

	if ch >= utf8.RuneSelf {
		// uncommon case: not ASCII or not enough bytes
		for s.srcPos+utf8.UTFMax > s.srcEnd && !utf8.FullRune(s.srcBuf[s.srcPos:s.srcEnd]) {
			// not enough bytes: read some more, but first
			// save away token text if any
			if s.tokPos >= 0 {
				s.tokBuf.Write(s.srcBuf[s.tokPos:s.srcPos])
				s.tokPos = 0
				// s.tokEnd is set by Scan()
			}
			// move unread bytes to beginning of buffer
			copy(s.srcBuf[0:], s.srcBuf[s.srcPos:s.srcEnd])
			s.srcBufOffset += s.srcPos
			// read more bytes
			// (an io.Reader must return io.EOF when it reaches
			// the end of what it is reading - simply returning
			// n == 0 will make this loop retry forever; but the
			// error is in the reader implementation in that case)
			i := s.srcEnd - s.srcPos
			n, err := s.src.Read(s.srcBuf[i:bufLen])
			s.srcPos = 0
			s.srcEnd = i + n
			s.srcBuf[s.srcEnd] = utf8.RuneSelf // sentinel
			if err != nil {
				if err != io.EOF {
					s.error(xerrors.UnexpectedCharacter, err.Error())
				}
				if s.srcEnd == 0 {
					if s.lastCharLen > 0 {
						// previous character was not EOF
						s.column++
					}
					s.lastCharLen = 0
					return ScanResultEOF
				}
				// If err == EOF, we won't be getting more
				// bytes; break to avoid infinite loop. If
				// err is something else, we don't know if
				// we can get more bytes; thus also break.
				break
			}
		}
		// at least one byte
		ch = rune(s.srcBuf[s.srcPos])
		if ch >= utf8.RuneSelf {
			// uncommon case: not ASCII
			ch, width = utf8.DecodeRune(s.srcBuf[s.srcPos:s.srcEnd])
			if ch == utf8.RuneError && width == 1 {
				// advance for correct error position
				s.srcPos += width
				s.lastCharLen = width
				s.column++
				s.error(xerrors.UnexpectedCharacter, "invalid UTF-8 encoding")
				return ch
			}
		}
	}

	// advance
	s.srcPos += width
	s.lastCharLen = width
	s.column++

	// special situations
	switch ch {
	case 0:
		// for compatibility with other tools
		s.error(xerrors.UnexpectedCharacter, "invalid character NUL")
	case '\n':
		s.line++
		s.lastLineLen = s.column
		s.column = 0
	}

	return ch
}

// Next reads and returns the next Unicode character. It returns
// [ScanResultEOF] at the end of the source. Next does not update the
// [Scanner.Position] field; use [Scanner.Pos]() to get the current position.
func (s *Scanner) Next() rune {
	s.tokPos = -1 // don't collect token text
	s.Line = 0    // invalidate token position
	ch := s.Peek()
	if ch != ScanResultEOF {
		s.ch = s.next()
	}
	return ch
}

// Peek returns the next Unicode character in the source without advancing
// the scanner. It returns [ScanResultEOF] if the scanner's position is at
// the last character of the source.
func (s *Scanner) Peek() rune {
	if s.ch == -2 {
		// this code is only run for the very first character
		s.ch = s.next()
		if s.ch == '\uFEFF' {
			s.ch = s.next() // ignore BOM
		}
	}
	return s.ch
}

func (s *Scanner) error(code xerrors.Code, msg string) {
	s.tokEnd = s.srcPos - s.lastCharLen // make sure token text is terminated
	s.ErrorCount++
	if s.Error == nil {
		return
	}
	s.Error(s, code, msg)
}

func (s *Scanner) errorf(code xerrors.Code, format string, args ...any) {
	s.error(code, fmt.Sprintf(format, args...))
}

func isIdentRune(ch rune) bool  { return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch) }
func isDecimal(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isWhitespace(ch rune) bool { return (1<<'\t'|1<<'\n'|1<<'\r'|1<<' ')&(1<<uint(ch)) != 0 }

func (s *Scanner) scanIdentifier() rune {
	// we know the zero'th rune is OK; start scanning at the next one
	ch := s.next()
	for isIdentRune(ch) {
		ch = s.next()
	}
	return ch
}

// scanNumber accepts a decimal integer: a contiguous digit run. A run with
// trailing identifier characters is malformed.
func (s *Scanner) scanNumber(ch rune) rune {
	for isDecimal(ch) {
		ch = s.next()
	}

	hasExtra := false
	for isIdentRune(ch) {
		hasExtra = true
		ch = s.next()
	}
	if hasExtra {
		s.errorf(xerrors.InvalidNumber, "extra character after integer")
	}

	return ch
}

// scanString accepts the content between a pair of matching quotes. There
// is no escape processing; the literal may span multiple lines. Reaching
// the end of the source before the closing quote is an error.
func (s *Scanner) scanString(quote rune) rune {
	ch := s.next() // read character after quote
	for ch != quote {
		if ch < 0 {
			s.error(xerrors.UnterminatedString, "string literal not terminated")
			return ch
		}
		ch = s.next()
	}
	return s.next()
}

func (s *Scanner) scanLineComment() rune {
	ch := s.next() // read character after "--"
	for ch != '\n' && ch >= 0 {
		ch = s.next()
	}
	return ch
}

func (s *Scanner) scanBlockComment() rune {
	ch := s.next() // read character after "/*"
	for {
		if ch < 0 {
			s.error(xerrors.UnexpectedCharacter, "comment not terminated")
			break
		}
		ch0 := ch
		ch = s.next()
		if ch0 == '*' && ch == '/' {
			ch = s.next()
			break
		}
	}
	return ch
}

// Scan reads the next token or Unicode character from source and returns
// it. It returns [ScanResultEOF] at the end of the source. It reports
// scanner errors (read and token errors) by calling s.Error.
func (s *Scanner) Scan() rune {
	ch := s.Peek()

	// reset token text position
	s.tokPos = -1
	s.Line = 0

	// skip white space
	for isWhitespace(ch) {
		ch = s.next()
	}

	// start collecting token text
	s.tokBuf.Reset()
	s.tokPos = s.srcPos - s.lastCharLen

	// set token position
	// (this is a slightly optimized version of the code in Pos())
	s.Offset = s.srcBufOffset + s.tokPos
	if s.column > 0 {
		// common case: last character was not a '\n'
		s.Line = s.line
		s.Column = s.column
	} else {
		// last character was a '\n'
		// (we cannot be at the beginning of the source
		// since we have called next() at least once)
		s.Line = s.line - 1
		s.Column = s.lastLineLen
	}

	// determine token value
	tok := ch
	switch {
	case ch == '_' || unicode.IsLetter(ch):
		ch = s.scanIdentifier()
		tok = ScanResultIdent

	case isDecimal(ch):
		ch = s.scanNumber(ch)
		tok = ScanResultInt

	default:
		switch ch {
		case ScanResultEOF:
			break

		case '-':
			if ch = s.next(); ch == '-' {
				ch = s.scanLineComment()
				tok = ScanResultComment
			}

		case '/':
			if ch = s.next(); ch == '*' {
				ch = s.scanBlockComment()
				tok = ScanResultComment
			}

		case '"', '\'':
			ch = s.scanString(ch)
			tok = ScanResultString

		default:
			ch = s.next()
		}
	}

	// end of token text
	s.tokEnd = s.srcPos - s.lastCharLen

	s.ch = ch
	return tok
}

// Pos returns the position of the character immediately after
// the character or token returned by the last call to [Scanner.Scan].
// Use the [Scanner.Position] field for the start position of the most
// recently scanned token.
func (s *Scanner) Pos() (pos token.Position) {
	pos.Offset = s.srcBufOffset + s.srcPos - s.lastCharLen
	switch {
	case s.column > 0:
		// common case: last character was not a '\n'
		pos.Line = s.line
		pos.Column = s.column
	case s.lastLineLen > 0:
		// last character was a '\n'
		pos.Line = s.line - 1
		pos.Column = s.lastLineLen
	default:
		// at the beginning of the source
		pos.Line = 1
		pos.Column = 1
	}
	return
}

// TokenText returns the string corresponding to the most recently scanned
// token. Valid after calling [Scanner.Scan] and in calls of [Scanner.Error].
func (s *Scanner) TokenText() string {
	if s.tokPos < 0 {
		// no token text
		return ""
	}

	if s.tokEnd < s.tokPos {
		// if EOF was reached, s.tokEnd is set to -1 (s.srcPos == 0)
		s.tokEnd = s.tokPos
	}
	// s.tokEnd >= s.tokPos

	if s.tokBuf.Len() == 0 {
		// common case: the entire token text is still in srcBuf
		return string(s.srcBuf[s.tokPos:s.tokEnd])
	}

	// part of the token text was saved in tokBuf: save the rest in
	// tokBuf as well and return its content
	s.tokBuf.Write(s.srcBuf[s.tokPos:s.tokEnd])
	s.tokPos = s.tokEnd // ensure idempotency of TokenText() call
	return s.tokBuf.String()
}
