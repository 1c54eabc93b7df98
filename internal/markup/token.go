package markup

import (
	"fmt"
	"strings"
)

// Token is one rendered unit of a parsed document. Block and inline
// delimiters come in separate open and close variants, so a token always
// knows which tag it renders.
type Token interface {
	Render() string
	fmt.Stringer
}

// HeaderOpen starts a header. ID is omitted from the tag when empty.
type HeaderOpen struct {
	Level int
	ID    string
}

func (h HeaderOpen) Render() string {
	if h.ID != "" {
		return fmt.Sprintf(`<h%d id="%s">`, h.Level, h.ID)
	}
	return fmt.Sprintf("<h%d>", h.Level)
}

func (h HeaderOpen) String() string {
	return fmt.Sprintf("level %d open header #%s", h.Level, h.ID)
}

// HeaderClose ends a header of the given level.
type HeaderClose struct {
	Level int
}

func (h HeaderClose) Render() string { return fmt.Sprintf("</h%d>", h.Level) }
func (h HeaderClose) String() string { return fmt.Sprintf("level %d closed header", h.Level) }

type ParagraphOpen struct{}

func (ParagraphOpen) Render() string { return "<p>" }
func (ParagraphOpen) String() string { return "open paragraph" }

type ParagraphClose struct{}

func (ParagraphClose) Render() string { return "</p>" }
func (ParagraphClose) String() string { return "closed paragraph" }

type PreFormatOpen struct{}

func (PreFormatOpen) Render() string { return "<pre>" }
func (PreFormatOpen) String() string { return "open preformat" }

type PreFormatClose struct{}

func (PreFormatClose) Render() string { return "</pre>" }
func (PreFormatClose) String() string { return "closed preformat" }

type CodeOpen struct{}

func (CodeOpen) Render() string { return "<code>" }
func (CodeOpen) String() string { return "open code" }

type CodeClose struct{}

func (CodeClose) Render() string { return "</code>" }
func (CodeClose) String() string { return "closed code" }

// Anchor links Text to Destination.
type Anchor struct {
	Text        string
	Destination string
}

// nodePrefix is prepended to destinations that name a node.
const nodePrefix = "/node/"

// Href resolves the destination. Anything containing a colon or a slash
// is taken as a URL; everything else is a node id.
func (a Anchor) Href() string {
	if strings.ContainsAny(a.Destination, ":/") {
		return a.Destination
	}
	return nodePrefix + a.Destination
}

func (a Anchor) Render() string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, a.Href(), a.Text)
}

func (a Anchor) String() string {
	return fmt.Sprintf("anchor %q to %q", a.Text, a.Destination)
}

type LineBreak struct{}

func (LineBreak) Render() string { return lineBreak }
func (LineBreak) String() string { return "line break" }

// Literal is text passed through unchanged.
type Literal struct {
	Text string
}

func (l Literal) Render() string { return l.Text }
func (l Literal) String() string { return fmt.Sprintf("literal %q", l.Text) }

// Render concatenates the rendered tokens.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Render())
	}
	return b.String()
}
