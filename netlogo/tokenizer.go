package netlogo

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

const commentMarker = ';'

// Tokenizer scans NetLogo source one rune at a time. It never fails:
// characters it does not recognize end up in opaque identifier tokens.
type Tokenizer struct {
	source    *bufio.Reader
	isKeyword func(string) bool

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source io.Reader, isKeyword func(string) bool) *Tokenizer {
	if isKeyword == nil {
		isKeyword = isStructuralWord
	}
	return &Tokenizer{
		source:    bufio.NewReader(source),
		isKeyword: isKeyword,
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize splits source with the default vocabulary.
func Tokenize(source string) []Token {
	return DefaultConfig().Tokenize(source)
}

func (c Config) Tokenize(source string) []Token {
	return NewTokenizer(strings.NewReader(source), c.isKeyword).All()
}

func (t *Tokenizer) All() (ret []Token) {
	for {
		tok, ok := t.Next()
		if !ok {
			return
		}
		ret = append(ret, tok)
	}
}

func (t *Tokenizer) readRune() (rune, bool) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, false
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, true
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

// Next returns the next token, or false at end of input.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		t.skipWhitespace()
		startPos := t.currPos

		r, ok := t.readRune()
		if !ok {
			return Token{}, false
		}

		switch {
		case r == commentMarker:
			t.skipComment()
			continue
		case isOpen(r):
			return Token{Kind: TokenOpen, Text: string(r), Pos: startPos}, true
		case isClose(r):
			return Token{Kind: TokenClose, Text: string(r), Pos: startPos}, true
		case isDigit(r):
			t.unreadRune()
			return t.parseNumber(startPos, ""), true
		case r == '-':
			next, ok := t.readRune()
			if ok && isDigit(next) {
				t.unreadRune()
				return t.parseNumber(startPos, "-"), true
			}
			if ok {
				t.unreadRune()
			}
			return t.parseOperator(startPos, r), true
		case isOperatorRune(r):
			return t.parseOperator(startPos, r), true
		}

		t.unreadRune()
		return t.parseWord(startPos), true
	}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.readRune()
		if !ok {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, ok := t.readRune()
		if !ok || r == '\n' {
			return
		}
	}
}

func (t *Tokenizer) parseNumber(startPos Pos, prefix string) Token {
	var sb strings.Builder
	sb.WriteString(prefix)
	hasDot := false
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if isDigit(r) {
			sb.WriteRune(r)
		} else if r == '.' && !hasDot {
			hasDot = true
			sb.WriteRune(r)
		} else {
			t.unreadRune()
			break
		}
	}
	text := sb.String()
	if strings.HasSuffix(text, ".") {
		// "1." is not a NetLogo number
		return Token{Kind: TokenIdentifier, Text: text, Pos: startPos}
	}
	return Token{Kind: TokenNumber, Text: text, Pos: startPos}
}

func (t *Tokenizer) parseOperator(startPos Pos, first rune) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if !isOperatorRune(r) && r != '-' {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	if _, ok := operators[text]; ok {
		return Token{Kind: TokenOperator, Text: text, Pos: startPos}
	}
	return Token{Kind: TokenIdentifier, Text: text, Pos: startPos}
}

func (t *Tokenizer) parseWord(startPos Pos) Token {
	var sb strings.Builder
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if unicode.IsSpace(r) || isOpen(r) || isClose(r) || r == commentMarker {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	kind := TokenIdentifier
	if t.isKeyword(strings.ToLower(text)) {
		kind = TokenKeyword
	}
	return Token{Kind: kind, Text: text, Pos: startPos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isOpen(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

func isClose(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '*', '/', '^', '=', '!', '<', '>':
		return true
	}
	return false
}

var closerOf = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}
