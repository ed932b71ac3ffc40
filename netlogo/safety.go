package netlogo

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Scan runs the token-level safety checks: deny-list, bracket balance,
// value range and minimum structure. It does not validate grammar.
func (v *Verifier) Scan(tokens []Token) (ok bool, message string) {
	for _, check := range []func([]Token) error{
		v.checkDangerous,
		v.checkBrackets,
		v.checkValueRanges,
		v.checkStructure,
	} {
		if err := check(tokens); err != nil {
			return false, err.Error()
		}
	}
	return true, SafeMessage
}

func (v *Verifier) checkDangerous(tokens []Token) error {
	var found []string
	seen := make(map[string]bool)
	add := func(word string) {
		if !seen[word] {
			seen[word] = true
			found = append(found, word)
		}
	}

	for _, tok := range tokens {
		if tok.Kind != TokenIdentifier && tok.Kind != TokenKeyword {
			continue
		}
		word := lower(tok)
		if v.config.Dangerous[word] {
			add(word)
			continue
		}
		if v.knownWord(word) {
			continue
		}
		// whole words inside compound names, as in create-turtles or file-open
		for _, part := range strings.FieldsFunc(word, notWordRune) {
			if v.config.Dangerous[part] {
				add(part)
			}
		}
	}

	if len(found) > 0 {
		return fail(CategoryDangerous, Pos{}, "Dangerous primitives found: %s", strings.Join(found, ", "))
	}
	return nil
}

func (v *Verifier) knownWord(word string) bool {
	c := &v.config
	if _, ok := c.Reporters[word]; ok {
		return true
	}
	return c.Commands[word] ||
		c.Variables[word] ||
		c.ListVariables[word] ||
		structuralWords[word]
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func (v *Verifier) checkBrackets(tokens []Token) error {
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			if len(stack) == 0 {
				return fail(CategoryBrackets, tok.Pos, "Unmatched closing bracket '%s'", tok.Text)
			}
			open := stack[len(stack)-1]
			if closerOf[open.Text] != tok.Text {
				return fail(CategoryBrackets, tok.Pos, "Mismatched brackets: '%s' at %s closed by '%s'", open.Text, open.Pos, tok.Text)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return fail(CategoryBrackets, open.Pos, "Unclosed brackets: '%s'", open.Text)
	}
	return nil
}

func (v *Verifier) checkValueRanges(tokens []Token) error {
	for _, tok := range tokens {
		if tok.Kind != TokenNumber {
			continue
		}
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fail(CategoryInvalidValue, tok.Pos, "Invalid number: %s", tok.Text)
		}
		if value > v.config.MaxValue {
			return fail(CategoryOutOfRange, tok.Pos, "Value too large: %s", tok.Text)
		}
		if value < v.config.MinValue {
			return fail(CategoryOutOfRange, tok.Pos, "Value too small: %s", tok.Text)
		}
	}
	return nil
}

func (v *Verifier) checkStructure(tokens []Token) error {
	if len(tokens) == 0 {
		return fail(CategoryEmpty, Pos{}, "Empty code")
	}
	hasMovement := false
	for _, tok := range tokens {
		if v.config.isCommand(tok) {
			hasMovement = true
			break
		}
	}
	if !hasMovement {
		return fail(CategoryNoMovement, Pos{}, "No movement commands found")
	}
	if n := cleanLength(tokens); n > v.config.MaxLength {
		return fail(CategoryTooLong, Pos{}, "Code too long: %d characters, limit %d", n, v.config.MaxLength)
	}
	return nil
}

// Clean returns code without comments and with whitespace collapsed.
func (v *Verifier) Clean(code string) string {
	return join(v.Tokenize(code))
}

func join(tokens []Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func cleanLength(tokens []Token) int {
	if len(tokens) == 0 {
		return 0
	}
	n := len(tokens) - 1
	for _, tok := range tokens {
		n += len(tok.Text)
	}
	return n
}
