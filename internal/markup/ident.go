package markup

import (
	"fmt"
	"unicode"
)

// fallbackID replaces header identifiers that cannot be used as given.
const fallbackID = "h"

// idTable hands out document-unique header identifiers. The first use of
// a base is returned as is; later uses get "-1", "-2" and so on.
type idTable map[string][]string

func (t idTable) make(candidate string, asciiOnly bool) string {
	base := candidate
	if base == "" || (asciiOnly && !isASCII(base)) {
		base = fallbackID
	}

	issued, ok := t[base]
	if !ok {
		t[base] = []string{base}
		return base
	}

	id := fmt.Sprintf("%s-%d", base, len(issued))
	t[base] = append(issued, id)
	return id
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
