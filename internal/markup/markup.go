// Package markup renders wiki text to HTML.
//
// The markup is line oriented. A line starting with one to six '#'
// followed by a space is a header, a lone backtick on its own line opens
// and closes a preformatted block, and any other text is a paragraph.
// Inside headers and paragraphs, backticks delimit inline code and pipes
// delimit anchors:
//
//	|Node||               link to Node
//	|Text|Destination|    link Text to Destination
//	Text|Destination|     same, without the leading pipe
//
// Destinations without ':' or '/' are node ids and resolve under /node/.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var (
	// ErrUnclosedHeader is returned when the input ends inside a header.
	ErrUnclosedHeader = errors.New("header not closed before end of input")
	// ErrUnclosedPreFormat is returned when the input ends inside a
	// preformatted block.
	ErrUnclosedPreFormat = errors.New("preformatted block not closed before end of input")
)

// ParseError locates a structural error in the escaped input.
type ParseError struct {
	Err    error
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: %v (opened at offset %d)", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options tune a parse.
type Options struct {
	// ASCIIIdentifiers replaces non-ASCII header ids with a generic one.
	ASCIIIdentifiers bool
}

// Parse escapes text and renders it to an HTML fragment. It holds no
// shared state and is safe for concurrent use. On error no output is
// returned.
func Parse(text string, opts Options) (string, error) {
	tokens, err := Lex(html.EscapeString(text), opts)
	if err != nil {
		return "", err
	}
	return Render(tokens), nil
}

// Lex turns already escaped text into tokens. CRLF line endings are read
// as plain line breaks.
func Lex(escaped string, opts Options) ([]Token, error) {
	escaped = strings.ReplaceAll(escaped, "\r\n", lineBreak)
	if escaped == "" {
		return nil, nil
	}
	return newLexer(lexemes(segment(escaped)), opts).run()
}
