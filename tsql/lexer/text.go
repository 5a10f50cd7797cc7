package lexer

import "strings"

const (
	// OpenCurlyQuote and CloseCurlyQuote are the typographic quote marks
	// accepted in place of a plain double quote.
	OpenCurlyQuote  = "“"
	CloseCurlyQuote = "”"

	whiteSpace = " \t\n\v\f\r"
)

// Trim removes leading and trailing ASCII white space
func Trim(s string) string {
	return strings.Trim(s, whiteSpace)
}

// TrimLeft removes leading ASCII white space
func TrimLeft(s string) string {
	return strings.TrimLeft(s, whiteSpace)
}

// StripQuotes removes one pair of wrapping quotes, either "..." or “...”.
// Only the outermost pair is removed.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}

	if s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	if len(s) >= len(OpenCurlyQuote)+len(CloseCurlyQuote) &&
		strings.HasPrefix(s, OpenCurlyQuote) && strings.HasSuffix(s, CloseCurlyQuote) {
		return s[len(OpenCurlyQuote) : len(s)-len(CloseCurlyQuote)]
	}

	return s
}

// quoteAt returns the width of the quote mark at the start of s, or 0 if
// s does not start with one.
func quoteAt(s string) int {
	switch {
	case strings.HasPrefix(s, `"`):
		return 1
	case strings.HasPrefix(s, OpenCurlyQuote):
		return len(OpenCurlyQuote)
	case strings.HasPrefix(s, CloseCurlyQuote):
		return len(CloseCurlyQuote)
	}
	return 0
}
