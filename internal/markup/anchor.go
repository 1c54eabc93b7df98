package markup

import "strings"

type anchorPhase int

const (
	// anchorText gathers the text of a leading anchor up to its pipe.
	anchorText anchorPhase = iota
	// anchorSeparator expects the pipe that ends the anchor text.
	anchorSeparator
	// anchorDestination gathers the destination of a nonleading anchor.
	anchorDestination
)

// anchorCandidate is an anchor under construction. It is reset whenever
// an anchor opens, so no buffered text survives into the next one.
type anchorCandidate struct {
	text    string
	leading bool
	// forced is set by a doubled pipe after the text, which always
	// makes the anchor link to its own text.
	forced bool
	phase  anchorPhase

	buf strings.Builder
	raw strings.Builder
}

func (a *anchorCandidate) reset() {
	a.text = ""
	a.leading = false
	a.forced = false
	a.phase = anchorText
	a.buf.Reset()
	a.raw.Reset()
}

// opensAnchor matches a pipe that starts a word, or a word followed by a
// pipe.
func opensAnchor(lx Lexeme) bool {
	if lx.isPipe() {
		return lx.Next != "" && !isWhitespace(lx.Next)
	}
	return !lx.isWhitespace() && lx.Next == pipe
}

func (l *lexer) openAnchor(lx Lexeme) {
	a := &l.anchor
	a.reset()
	a.raw.WriteString(lx.Text)
	if lx.isPipe() {
		a.leading = true
		a.phase = anchorText
	} else {
		a.text = lx.Text
		a.phase = anchorSeparator
	}
	l.inline = inlineAnchor
}

// stepAnchor feeds one lexeme to the open anchor. Every lexeme is
// consumed: it either extends the candidate or finishes it.
func (l *lexer) stepAnchor(lx Lexeme) bool {
	a := &l.anchor
	a.raw.WriteString(lx.Text)

	switch a.phase {
	case anchorText:
		if lx.isPipe() && a.buf.Len() == 0 {
			l.abandonAnchor()
			return true
		}
		a.buf.WriteString(lx.Text)
		if lx.Next == pipe {
			a.text = a.buf.String()
			a.buf.Reset()
			a.phase = anchorSeparator
		}

	case anchorSeparator:
		switch {
		case !a.forced && strings.HasPrefix(lx.Next, pipe):
			a.forced = true
		case a.forced || flanks(lx.Next):
			l.finishAnchor(a.text)
		case a.leading:
			dest, _ := l.cur.advance()
			l.skipPipe()
			l.finishAnchor(dest.Text)
		default:
			a.phase = anchorDestination
		}

	case anchorDestination:
		a.buf.WriteString(lx.Text)
		switch {
		case lx.Next == pipe:
			l.finishAnchor(a.buf.String())
			l.skipPipe()
		case lx.Next == "" || isWhitespace(lx.Next):
			l.finishAnchor(a.buf.String())
		}
	}
	return true
}

// skipPipe consumes a closing pipe that only terminates the syntax.
func (l *lexer) skipPipe() {
	if next, ok := l.cur.peek(); ok && next.isPipe() {
		l.cur.advance()
	}
}

func (l *lexer) finishAnchor(destination string) {
	l.emit(Anchor{Text: l.anchor.text, Destination: destination})
	l.anchor.reset()
	l.inline = inlineNone
}

// abandonAnchor gives back everything the candidate swallowed as text.
func (l *lexer) abandonAnchor() {
	if l.anchor.raw.Len() > 0 {
		l.emit(Literal{Text: l.anchor.raw.String()})
	}
	l.anchor.reset()
	l.inline = inlineNone
}
