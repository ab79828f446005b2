package logic

import (
	"strings"
	"unicode"
)

// Segment splits an expression into its top-level segments: operands and
// single-character operators, in order.
// A grouped subformula is kept whole, grouping characters included.
// Whitespace is dropped. Grouping characters are only counted, so mismatched
// kinds such as "(a]" are not detected.
//
// For instance, "(A ∨ B) → ~C" is split into "(A∨B)", "→" and "~C".
func Segment(expr string) []string {
	var (
		segments []string
		buf      strings.Builder
		depth    int
	)
	flush := func() {
		if buf.Len() > 0 {
			segments = append(segments, buf.String())
			buf.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
			continue
		case isOpening(r):
			depth++
			buf.WriteRune(r)
		case isClosing(r):
			depth--
			buf.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case depth == 0 && isOperator(r):
			flush()
			segments = append(segments, string(r))
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return segments
}

func isOperator(r rune) bool {
	_, ok := operators[r]
	return ok
}

// Trim removes one level of grouping around token, if it starts with a
// grouping character. It does not check the last character is the matching one.
func Trim(token string) string {
	runes := []rune(token)
	if len(runes) == 0 || !isOpening(runes[0]) {
		return token
	}
	if len(runes) == 1 {
		return ""
	}
	return string(runes[1 : len(runes)-1])
}

// join concatenates segments back into a whitespace-free expression.
func join(segments []string) string {
	return strings.Join(segments, "")
}

// at returns the i-th segment, or "" if there is none.
func at(segments []string, i int) string {
	if i < 0 || i >= len(segments) {
		return ""
	}
	return segments[i]
}

// negations splits token into its leading '~' markers and the rest.
func negations(token string) (bare string, count int) {
	bare = strings.TrimLeft(token, "~")
	return bare, len(token) - len(bare)
}
