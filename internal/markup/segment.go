package markup

import "strings"

// Delimiters are always emitted as single-character segments.
const (
	lineBreak = "\n"
	space     = " "
	tick      = "`"
	pipe      = "|"
)

func isDelimiter(s string) bool {
	switch s {
	case lineBreak, space, tick, pipe:
		return true
	}
	return false
}

// segment splits text into delimiter singletons and maximal runs of
// everything else. Concatenating the result reproduces text exactly.
func segment(text string) []string {
	var segments []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			segments = append(segments, run.String())
			run.Reset()
		}
	}

	for _, r := range text {
		c := string(r)
		if isDelimiter(c) {
			flush()
			segments = append(segments, c)
			continue
		}
		run.WriteRune(r)
	}
	flush()

	return segments
}
