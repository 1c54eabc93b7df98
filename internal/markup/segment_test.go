package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Empty",
			input: "",
			want:  nil,
		},
		{
			name:  "Spaces",
			input: "  justice  dwindles ",
			want:  []string{" ", " ", "justice", " ", " ", "dwindles", " "},
		},
		{
			name:  "Ticks without spaces",
			input: "a`c`adc`dad",
			want:  []string{"a", "`", "c", "`", "adc", "`", "dad"},
		},
		{
			name:  "Pipes",
			input: "every other |time| as",
			want:  []string{"every", " ", "other", " ", "|", "time", "|", " ", "as"},
		},
		{
			name:  "Newlines",
			input: "da \ndc` d\n",
			want:  []string{"da", " ", "\n", "dc", "`", " ", "d", "\n"},
		},
		{
			name:  "Punctuation stays in words",
			input: "brea|k|: x",
			want:  []string{"brea", "|", "k", "|", ":", " ", "x"},
		},
		{
			name:  "Multibyte runes",
			input: "ação|ü",
			want:  []string{"ação", "|", "ü"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment(tt.input))
		})
	}
}

func TestSegment_Reassembles(t *testing.T) {
	inputs := []string{
		"every other |time| as `it could or |perhaps somehow|then or now| it was` perceived",
		"# Title\n\n`\npre  formatted\n`\n",
		"   \n\n||``",
	}
	for _, input := range inputs {
		segments := segment(input)
		assert.Equal(t, input, strings.Join(segments, ""))
		for _, s := range segments {
			if strings.ContainsAny(s, "\n `|") {
				assert.Len(t, s, 1, "delimiter inside segment %q", s)
			}
		}
	}
}

func TestLexemes(t *testing.T) {
	got := lexemes([]string{"ab", " ", "c"})
	require.Len(t, got, 3)
	assert.Equal(t, Lexeme{Text: "ab", Next: " ", Offset: 0}, got[0])
	assert.Equal(t, Lexeme{Text: " ", Next: "c", Offset: 2}, got[1])
	assert.Equal(t, Lexeme{Text: "c", Next: "", Offset: 3}, got[2])

	assert.Empty(t, lexemes(nil))
}

func TestCursor(t *testing.T) {
	c := newCursor(lexemes([]string{"a", "|", "b"}))

	next, ok := c.peek()
	require.True(t, ok)
	assert.Equal(t, "a", next.Text)

	far, ok := c.peekAt(2)
	require.True(t, ok)
	assert.Equal(t, "b", far.Text)

	_, ok = c.peekAt(3)
	assert.False(t, ok)

	got, ok := c.advance()
	require.True(t, ok)
	assert.Equal(t, "a", got.Text)

	next, _ = c.peek()
	assert.Equal(t, "|", next.Text)

	c.advance()
	c.advance()
	_, ok = c.advance()
	assert.False(t, ok)
	_, ok = c.peek()
	assert.False(t, ok)
}

func TestFlanks(t *testing.T) {
	tests := []struct {
		next string
		want bool
	}{
		{"", true},
		{" ", true},
		{"\n", true},
		{",", true},
		{":", true},
		{"&#39;s", true},
		{"`", true},
		{"k", false},
		{"Destination", false},
		{"/node/path", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, flanks(tt.next), "flanks(%q)", tt.next)
	}
}
