package netlogo

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenKeyword TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenOperator
	TokenOpen
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}
