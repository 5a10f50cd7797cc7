package lexer

import "fmt"

// Kind the kind of token
type Kind int

const (
	TokenEOF Kind = iota

	TokenValue
	TokenComma
	TokenCloseParen
)

// Token is an output from the lexer
type Token struct {
	Kind     Kind
	Text     string
	Position int
}

func (t Kind) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenValue:
		return "Value"
	case TokenComma:
		return "Comma"
	case TokenCloseParen:
		return "CloseParen"
	default:
		return fmt.Sprintf("Kind(%d)", t)
	}
}

func (i Token) String() string {
	if i.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("[%s]", i.Text)
}
