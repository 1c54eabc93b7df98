package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexeme is a segment paired with the segment that follows it.
type Lexeme struct {
	Text string
	Next string

	// Offset is the byte position of Text within the escaped input.
	Offset int
}

func lexemes(segments []string) []Lexeme {
	out := make([]Lexeme, len(segments))
	offset := 0
	for i, s := range segments {
		out[i] = Lexeme{Text: s, Offset: offset}
		if i+1 < len(segments) {
			out[i].Next = segments[i+1]
		}
		offset += len(s)
	}
	return out
}

func (l Lexeme) isLineBreak() bool { return l.Text == lineBreak }
func (l Lexeme) isTick() bool { return l.Text == tick }
func (l Lexeme) isPipe() bool { return l.Text == pipe }
func (l Lexeme) isWhitespace() bool {
	return isWhitespace(l.Text)
}

// count returns how many times r occurs in the lexeme text.
func (l Lexeme) count(r rune) int {
	return strings.Count(l.Text, string(r))
}

func isWhitespace(s string) bool {
	return s == space || s == lineBreak
}

// flanks reports whether s, the segment right after a closing pipe, ends
// an anchor without naming a destination.
func flanks(s string) bool {
	if s == "" || isWhitespace(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '/' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// cursor walks the lexeme stream. Lexemes taken with advance are never
// seen again by the main loop.
type cursor struct {
	lexemes []Lexeme
	pos     int
}

func newCursor(lexemes []Lexeme) *cursor {
	return &cursor{lexemes: lexemes}
}

// advance returns the next lexeme and moves past it.
func (c *cursor) advance() (Lexeme, bool) {
	if c.pos >= len(c.lexemes) {
		return Lexeme{}, false
	}
	l := c.lexemes[c.pos]
	c.pos++
	return l, true
}

// peek returns the next lexeme without consuming it.
func (c *cursor) peek() (Lexeme, bool) {
	return c.peekAt(0)
}

// peekAt looks n lexemes past the next one.
func (c *cursor) peekAt(n int) (Lexeme, bool) {
	i := c.pos + n
	if n < 0 || i >= len(c.lexemes) {
		return Lexeme{}, false
	}
	return c.lexemes[i], true
}
