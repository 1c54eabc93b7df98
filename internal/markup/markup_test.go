package markup

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
		{
			name:  "Paragraph",
			input: "just some text",
			want:  "<p>just some text</p>",
		},
		{
			name:  "Paragraphs split by blank line",
			input: "first\n\nsecond",
			want:  "<p>first</p>\n<p>second</p>",
		},
		{
			name:  "Escaped input",
			input: `a < b & "c"`,
			want:  "<p>a &lt; b &amp; &#34;c&#34;</p>",
		},
		{
			name:  "Anchor with default destination",
			input: "|Node||",
			want:  `<p><a href="/node/Node">Node</a></p>`,
		},
		{
			name:  "Anchor flanked by whitespace",
			input: "see |Node| now",
			want:  `<p>see <a href="/node/Node">Node</a> now</p>`,
		},
		{
			name:  "Anchor flanked by punctuation",
			input: "|Node|, then",
			want:  `<p><a href="/node/Node">Node</a>, then</p>`,
		},
		{
			name:  "Anchor with leading destination",
			input: "|Node|Destination|",
			want:  `<p><a href="/node/Destination">Node</a></p>`,
		},
		{
			name:  "Anchor with multi-word text",
			input: "|Some Node|Target|",
			want:  `<p><a href="/node/Target">Some Node</a></p>`,
		},
		{
			name:  "Anchor with nonleading destination",
			input: "Go to Node|Destination|, here",
			want:  `<p>Go to <a href="/node/Destination">Node</a>, here</p>`,
		},
		{
			name:  "Nonleading anchor to itself",
			input: "Node| rest",
			want:  `<p><a href="/node/Node">Node</a> rest</p>`,
		},
		{
			name:  "Anchor to URL",
			input: "|Site|https://example.org|",
			want:  `<p><a href="https://example.org">Site</a></p>`,
		},
		{
			name:  "Independent anchors on separate lines",
			input: "|SomeAnchor|\n|SomeOtherAnchor|",
			want: `<p><a href="/node/SomeAnchor">SomeAnchor</a></p>` +
				`<p><a href="/node/SomeOtherAnchor">SomeOtherAnchor</a></p>`,
		},
		{
			name:  "Triple pipe",
			input: "|Node|||",
			want:  `<p><a href="/node/Node">Node</a>|</p>`,
		},
		{
			name:  "Mixed inline forms",
			input: "`this |test|` tries ## to |brea|k|: things",
			want:  `<p><code>this |test|</code> tries ## to <a href="/node/k">brea</a>: things</p>`,
		},
		{
			name:  "Stray pipe",
			input: "a | b",
			want:  "<p>a | b</p>",
		},
		{
			name:  "Unterminated anchor",
			input: "see |this thing",
			want:  "<p>see |this thing</p>",
		},
		{
			name:  "Anchor cut by line break",
			input: "|a b\nplain",
			want:  "<p>|a b</p><p>plain</p>",
		},
		{
			name:  "Unmatched backtick",
			input: "a `b",
			want:  "<p>a `b</p>",
		},
		{
			name:  "Backtick pair does not span lines",
			input: "a `b\nc` d",
			want:  "<p>a `b</p><p>c` d</p>",
		},
		{
			name:  "Header",
			input: "### Deep title\n",
			want:  `<h3 id="Deep">Deep title</h3>`,
		},
		{
			name:  "Header followed by paragraph",
			input: "# Title\n\nBody text",
			want:  `<h1 id="Title">Title</h1>` + "\n<p>Body text</p>",
		},
		{
			name:  "Header with inline code",
			input: "## The `x` var\n",
			want:  `<h2 id="The">The <code>x</code> var</h2>`,
		},
		{
			name:  "Header with anchor",
			input: "# |Home|\n",
			want:  `<h1 id="Home"><a href="/node/Home">Home</a></h1>`,
		},
		{
			name:  "Too many hashes",
			input: "####### seven",
			want:  "<p>####### seven</p>",
		},
		{
			name:  "Hashes mid paragraph",
			input: "not ## a header",
			want:  "<p>not ## a header</p>",
		},
		{
			name:  "Preformatted block",
			input: "`\nsome |code| here\n`\n",
			want:  "<pre>\nsome |code| here\n</pre>\n",
		},
		{
			name:  "Preformatted block keeps inner backticks",
			input: "`\na ` b\n`",
			want:  "<pre>\na ` b\n</pre>",
		},
		{
			name:  "Preformatted block between paragraphs",
			input: "before\n`\n  x\n`\nafter",
			want:  "<p>before</p><pre>\n  x\n</pre>\n<p>after</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_HeaderIdentifiers(t *testing.T) {
	input := "# Intro\ntext\n## Intro again\n### Intro\n"
	got, err := Parse(input, Options{})
	require.NoError(t, err)
	assert.Equal(t,
		`<h1 id="Intro">Intro</h1><p>text</p>`+
			`<h2 id="Intro-1">Intro again</h2>`+
			`<h3 id="Intro-2">Intro</h3>`,
		got)
}

func TestParse_ASCIIIdentifiers(t *testing.T) {
	got, err := Parse("# Ação\n", Options{ASCIIIdentifiers: true})
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="h">Ação</h1>`, got)

	got, err = Parse("# Ação\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="Ação">Ação</h1>`, got)
}

func TestParse_UnclosedBlocks(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   error
		offset int
	}{
		{"Header", "# Title", ErrUnclosedHeader, 0},
		{"Header after paragraph", "para\n# Title", ErrUnclosedHeader, 5},
		{"Preformat", "`\ncode", ErrUnclosedPreFormat, 0},
		{"Preformat with text", "intro\n`\ncode\n", ErrUnclosedPreFormat, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, Options{})
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.want))

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.offset, parseErr.Offset)
		})
	}
}

func TestLex_Tokens(t *testing.T) {
	tokens, err := Lex("# a\nb|c|", Options{})
	require.NoError(t, err)
	assert.Equal(t, []Token{
		HeaderOpen{Level: 1, ID: "a"},
		Literal{Text: "a"},
		HeaderClose{Level: 1},
		ParagraphOpen{},
		Anchor{Text: "b", Destination: "c"},
		ParagraphClose{},
	}, tokens)
}

func TestParse_CRLF(t *testing.T) {
	got, err := Parse("# Title\r\nBody\r\n\r\n`\r\ncode\r\n`\r\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="Title">Title</h1><p>Body</p>`+"\n<pre>\ncode\n</pre>\n", got)
	assert.NotContains(t, got, "&#13;")
}

func TestLex_Empty(t *testing.T) {
	tokens, err := Lex("", Options{})
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestParse_WellFormedLeavesNoDelimiters(t *testing.T) {
	inputs := []string{
		"|Node||",
		"|Node|Destination|",
		"Go to Node|Destination|, here",
		"|SomeAnchor|\n|SomeOtherAnchor|",
		"a `b` c\n\n# `d` e\n",
	}
	for _, input := range inputs {
		got, err := Parse(input, Options{})
		require.NoError(t, err)
		assert.NotContains(t, got, "|", "input %q", input)
		assert.NotContains(t, got, "`", "input %q", input)
	}
}

func TestParse_Concurrent(t *testing.T) {
	input := strings.Repeat("# Head\n|Node| and `code` and Text|Dest|\n", 20)
	want, err := Parse(input, Options{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Parse(input, Options{})
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
