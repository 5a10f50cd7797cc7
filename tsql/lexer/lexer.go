package lexer

type stateFn func(*Lexer) stateFn

// Lexer splits a parenthesised value list into tokens. Values end at a
// comma or closing paren that is not inside a quote region.
type Lexer struct {
	input   string
	start   int
	pos     int
	inQuote bool
	tokens  []Token
}

// NewLexer initializes a lexer with input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// Exec runs the lexer to completion and returns the tokens, the last of
// which is always TokenCloseParen or TokenEOF.
func (l *Lexer) Exec() []Token {
	for state := lexList; state != nil; {
		state = state(l)
	}

	return l.tokens
}

func lexList(l *Lexer) stateFn {
	if l.pos < len(l.input) && l.input[l.pos] == '(' {
		l.pos++
		l.ignore()
	}

	return lexValue
}

func lexValue(l *Lexer) stateFn {
	l.inQuote = false

	for l.pos < len(l.input) {
		if width := quoteAt(l.input[l.pos:]); width > 0 {
			l.inQuote = !l.inQuote
			l.pos += width
			continue
		}

		if !l.inQuote && l.atTerminator() {
			break
		}

		l.pos++
	}

	l.emit(TokenValue)

	return lexTerminator
}

func lexTerminator(l *Lexer) stateFn {
	if l.pos >= len(l.input) {
		l.emit(TokenEOF)
		return nil
	}

	switch l.input[l.pos] {
	case ',':
		l.pos++
		l.emit(TokenComma)
		return lexValue
	case ')':
		l.pos++
		l.emit(TokenCloseParen)
	}

	return nil
}

func (l *Lexer) atTerminator() bool {
	switch l.input[l.pos] {
	case ',', ')':
		return true
	}

	return false
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) emit(kind Kind) {
	l.tokens = append(l.tokens, Token{
		Kind:     kind,
		Text:     l.input[l.start:l.pos],
		Position: l.start,
	})
	l.start = l.pos
}

// Values lexes input and returns at most limit values, trimmed and with
// their wrapping quotes removed. Anything after the closing paren is
// ignored.
func Values(input string, limit int) []string {
	var values []string

	for _, t := range NewLexer(input).Exec() {
		if t.Kind != TokenValue {
			continue
		}
		if len(values) == limit {
			break
		}
		values = append(values, StripQuotes(Trim(t.Text)))
	}

	return values
}
