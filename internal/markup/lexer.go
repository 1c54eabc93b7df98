package markup

type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockHeader
	blockPreFormat
)

type inlineKind int

const (
	inlineNone inlineKind = iota
	inlineCode
	inlineAnchor
)

// maxHeaderLevel is the deepest header the markup can express.
const maxHeaderLevel = 6

// lexer holds all per-document state. One lexer serves exactly one parse.
type lexer struct {
	cur  *cursor
	opts Options
	ids  idTable

	block       blockKind
	level       int
	blockOffset int

	inline inlineKind
	anchor anchorCandidate

	tokens []Token
}

func newLexer(lexemes []Lexeme, opts Options) *lexer {
	return &lexer{
		cur:  newCursor(lexemes),
		opts: opts,
		ids:  make(idTable),
	}
}

func (l *lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// run consumes the whole stream and returns the token sequence.
func (l *lexer) run() ([]Token, error) {
	for {
		lx, ok := l.cur.advance()
		if !ok {
			break
		}
		if l.dispatchBlock(lx) {
			continue
		}
		if l.dispatchInline(lx) {
			continue
		}
		l.emit(lexmap.match(lx))
	}
	if err := l.close(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

// dispatchBlock reports whether lx was fully handled at block level.
func (l *lexer) dispatchBlock(lx Lexeme) bool {
	switch l.block {
	case blockNone:
		for _, o := range blockOpeners {
			if o.probe(lx) {
				return o.open(l, lx)
			}
		}
		return false

	case blockPreFormat:
		if closesPreFormat(lx) {
			l.emit(PreFormatClose{})
			l.block = blockNone
			return true
		}
		l.emit(Literal{Text: lx.Text})
		return true

	case blockParagraph:
		if lx.isLineBreak() {
			l.resolveInline()
			l.emit(ParagraphClose{})
			l.block = blockNone
			return true
		}

	case blockHeader:
		if lx.isLineBreak() {
			l.resolveInline()
			l.emit(HeaderClose{Level: l.level})
			l.block = blockNone
			l.level = 0
			return true
		}
	}
	return false
}

// dispatchInline reports whether lx was consumed by an inline span.
func (l *lexer) dispatchInline(lx Lexeme) bool {
	switch l.inline {
	case inlineNone:
		if l.block == blockNone {
			return false
		}
		if lx.isTick() {
			if !l.codeCloses() {
				return false
			}
			l.emit(CodeOpen{})
			l.inline = inlineCode
			return true
		}
		if opensAnchor(lx) {
			l.openAnchor(lx)
			return true
		}

	case inlineCode:
		if lx.isTick() {
			l.emit(CodeClose{})
			l.inline = inlineNone
			return true
		}

	case inlineAnchor:
		return l.stepAnchor(lx)
	}
	return false
}

// codeCloses looks ahead for a closing backtick on the current line.
func (l *lexer) codeCloses() bool {
	for i := 0; ; i++ {
		lx, ok := l.cur.peekAt(i)
		if !ok || lx.isLineBreak() {
			return false
		}
		if lx.isTick() {
			return true
		}
	}
}

// resolveInline settles an inline span left open when its block ends.
func (l *lexer) resolveInline() {
	switch l.inline {
	case inlineCode:
		l.emit(CodeClose{})
	case inlineAnchor:
		l.abandonAnchor()
	}
	l.inline = inlineNone
}

// close checks the end-of-input state. A trailing paragraph is closed
// implicitly; headers and preformatted blocks must be closed explicitly.
func (l *lexer) close() error {
	switch l.block {
	case blockParagraph:
		l.resolveInline()
		l.emit(ParagraphClose{})
	case blockHeader:
		return &ParseError{Err: ErrUnclosedHeader, Offset: l.blockOffset}
	case blockPreFormat:
		return &ParseError{Err: ErrUnclosedPreFormat, Offset: l.blockOffset}
	}
	l.block = blockNone
	return nil
}

// blockOpener starts a block from the lexeme that probes positive. open
// reports whether the lexeme was consumed.
type blockOpener interface {
	probe(Lexeme) bool
	open(*lexer, Lexeme) bool
}

// blockOpeners are tried in order; the first positive probe wins.
var blockOpeners = []blockOpener{
	preFormatOpener{},
	headerOpener{},
	paragraphOpener{},
}

type preFormatOpener struct{}

func (preFormatOpener) probe(lx Lexeme) bool {
	return lx.isTick() && lx.Next == lineBreak
}

func (preFormatOpener) open(l *lexer, lx Lexeme) bool {
	l.block = blockPreFormat
	l.blockOffset = lx.Offset
	l.emit(PreFormatOpen{})
	return true
}

// closesPreFormat matches a lone backtick ending its line or the input.
func closesPreFormat(lx Lexeme) bool {
	return lx.isTick() && (lx.Next == lineBreak || lx.Next == "")
}

type headerOpener struct{}

func (headerOpener) probe(lx Lexeme) bool {
	n := len(lx.Text)
	return n > 0 && n <= maxHeaderLevel && lx.count('#') == n && lx.Next == space
}

func (headerOpener) open(l *lexer, lx Lexeme) bool {
	l.block = blockHeader
	l.level = len(lx.Text)
	l.blockOffset = lx.Offset
	l.emit(HeaderOpen{Level: l.level, ID: l.ids.make(l.titleWord(), l.opts.ASCIIIdentifiers)})

	// The separating space belongs to the marker, not the title.
	if next, ok := l.cur.peek(); ok && next.Text == space {
		l.cur.advance()
	}
	return true
}

// titleWord returns the first word following a header marker on its line.
func (l *lexer) titleWord() string {
	for i := 0; ; i++ {
		lx, ok := l.cur.peekAt(i)
		if !ok || lx.isLineBreak() {
			return ""
		}
		if !isDelimiter(lx.Text) {
			return lx.Text
		}
	}
}

type paragraphOpener struct{}

func (paragraphOpener) probe(lx Lexeme) bool {
	return !lx.isWhitespace()
}

// open starts the paragraph but leaves lx to inline dispatch.
func (paragraphOpener) open(l *lexer, lx Lexeme) bool {
	l.block = blockParagraph
	l.blockOffset = lx.Offset
	l.emit(ParagraphOpen{})
	return false
}

// matcher builds a single token from a single lexeme.
type matcher interface {
	probe(Lexeme) bool
	construct(Lexeme) Token
}

type matchers []matcher

// match returns the token of the first matcher that accepts lx.
func (m matchers) match(lx Lexeme) Token {
	for _, entry := range m {
		if entry.probe(lx) {
			return entry.construct(lx)
		}
	}
	panic("markup: no matcher accepted lexeme " + lx.Text)
}

// lexmap handles whatever the state machine left over. literalMatcher
// accepts everything and must stay last.
var lexmap = matchers{
	lineBreakMatcher{},
	literalMatcher{},
}

type lineBreakMatcher struct{}

func (lineBreakMatcher) probe(lx Lexeme) bool { return lx.isLineBreak() }
func (lineBreakMatcher) construct(Lexeme) Token { return LineBreak{} }

type literalMatcher struct{}

func (literalMatcher) probe(Lexeme) bool { return true }
func (literalMatcher) construct(lx Lexeme) Token { return Literal{Text: lx.Text} }
