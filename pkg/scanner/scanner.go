// Package scanner provides a line-oriented cursor over descriptor file
// text. Parsing in the descriptor grammar never crosses a line boundary
// except through AdvanceLine, so the scanner exposes the current line,
// a zero-based cursor, and maximal-munch token matchers.
package scanner

import "errors"

// MaxLineLen bounds the length of a single input line. Longer lines
// indicate a damaged input and abort the run as an internal error.
const MaxLineLen = 1024

// ErrLineOverrun reports a line exceeding MaxLineLen.
var ErrLineOverrun = errors.New("line length overrun")

// Scanner holds the text of one input file and a cursor into the
// current line. Column diagnostics are 1-based (Pos() + 1).
type Scanner struct {
	lines []string
	next  int    // index into lines of the line after the current one
	buf   string // current line
	line  int    // 1-based number of the current line
	pos   int    // zero-based cursor into buf
}

// New creates a Scanner over the full text of one input file.
func New(input string) *Scanner {
	return &Scanner{lines: splitLines(input)}
}

func splitLines(input string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			lines = append(lines, input[start:i])
			start = i + 1
		}
	}
	if start < len(input) {
		lines = append(lines, input[start:])
	}
	return lines
}

// AdvanceLine moves to the next line that is neither blank nor a
// comment (first non-whitespace byte ';'), resetting the cursor.
// It returns false at end of file. ErrLineOverrun is the only error.
func (s *Scanner) AdvanceLine() (bool, error) {
	for s.next < len(s.lines) {
		buf := s.lines[s.next]
		s.next++
		s.line++
		if len(buf) > MaxLineLen {
			return false, ErrLineOverrun
		}
		s.buf = buf
		s.pos = 0
		s.ConsumeWhitespace()
		if !s.AtEOL() && s.Peek() != ';' {
			return true, nil
		}
	}
	return false, nil
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// Pos returns the zero-based cursor position.
func (s *Scanner) Pos() int { return s.pos }

// SetPos rewinds (or advances) the cursor, used to push back a token.
func (s *Scanner) SetPos(pos int) { s.pos = pos }

// Reset moves the cursor to the start of the current line.
func (s *Scanner) Reset() { s.pos = 0 }

// AtEOL reports whether the cursor is past the last byte of the line.
func (s *Scanner) AtEOL() bool { return s.pos >= len(s.buf) }

// Peek returns the byte under the cursor, or 0 at end of line.
func (s *Scanner) Peek() byte {
	if s.AtEOL() {
		return 0
	}
	return s.buf[s.pos]
}

// Skip advances the cursor over one byte.
func (s *Scanner) Skip() { s.pos++ }

// ConsumeWhitespace advances over spaces and tabs, never past end of
// line.
func (s *Scanner) ConsumeWhitespace() {
	for !s.AtEOL() && (s.buf[s.pos] == ' ' || s.buf[s.pos] == '\t') {
		s.pos++
	}
}

func isIdentByte(ch byte) bool {
	return ch == '_' ||
		'a' <= ch && ch <= 'z' ||
		'A' <= ch && ch <= 'Z' ||
		'0' <= ch && ch <= '9'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// MatchIdentifier consumes a maximal run of alphanumeric or underscore
// bytes. It returns "" without moving the cursor if none are present.
func (s *Scanner) MatchIdentifier() string {
	start := s.pos
	for !s.AtEOL() && isIdentByte(s.buf[s.pos]) {
		s.pos++
	}
	return s.buf[start:s.pos]
}

// MatchInteger consumes an optional leading '-' followed by digits and
// returns the value. On failure the cursor is restored and ok is false.
func (s *Scanner) MatchInteger() (int, bool) {
	start := s.pos
	neg := false
	if s.Peek() == '-' {
		neg = true
		s.pos++
	}
	digits := s.pos
	for !s.AtEOL() && isDigit(s.buf[s.pos]) {
		s.pos++
	}
	if s.pos == digits {
		s.pos = start
		return 0, false
	}
	x := 0
	for _, ch := range []byte(s.buf[digits:s.pos]) {
		x = x*10 + int(ch-'0')
	}
	if neg {
		x = -x
	}
	return x, true
}

// MatchToRightBracket consumes everything up to (not including) the
// next ']' on the line. It fails if the run is empty or no ']' exists.
func (s *Scanner) MatchToRightBracket() (string, bool) {
	start := s.pos
	for !s.AtEOL() && s.buf[s.pos] != ']' {
		s.pos++
	}
	if s.AtEOL() || s.pos == start {
		s.pos = start
		return "", false
	}
	return s.buf[start:s.pos], true
}
