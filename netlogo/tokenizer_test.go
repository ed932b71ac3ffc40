package netlogo

import (
	"fmt"
	"strings"
	"testing"
)

func tokenTexts(tokens []Token) string {
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	return strings.Join(texts, "|")
}

func TestTokenize(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{"fd 1", "fd|1"},
		{"fd(1)", "fd|(|1|)"},
		{"[fd 1][rt 2]", "[|fd|1|]|[|rt|2|]"},
		{"fd 1 ; die\nrt 2", "fd|1|rt|2"},
		{"; only a comment", ""},
		{"", ""},
		{"  \n\t ", ""},
		{"rt -45", "rt|-45"},
		{"fd 1 - 2", "fd|1|-|2"},
		{"fd 1+2", "fd|1|+|2"},
		{"a >= b != c", "a|>=|b|!=|c"},
		{"energy-ahead-close > 0", "energy-ahead-close|>|0"},
		{"random-float 0.5", "random-float|0.5"},
		{"fd 1.", "fd|1."},
		{"1 ++ 2", "1|++|2"},
		{"{fd 4}", "{|fd|4|}"},
		{"x;y", "x"},
	} {
		got := tokenTexts(Tokenize(c.src))
		if got != c.expected {
			t.Fatalf("%q: got %q", c.src, got)
		}
	}
}

func TestTokenKinds(t *testing.T) {
	tokens := Tokenize("ifelse energy >= -1.5 [ FD 1 ] [ ++ ]")
	expected := []TokenKind{
		TokenKeyword,
		TokenIdentifier,
		TokenOperator,
		TokenNumber,
		TokenOpen,
		TokenKeyword,
		TokenNumber,
		TokenClose,
		TokenOpen,
		TokenIdentifier,
		TokenClose,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Fatalf("%d: got %v", i, tok)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := Tokenize("fd 1\n  rt (random 2)")
	for i, expected := range []Pos{
		{1, 1},
		{1, 4},
		{2, 3},
		{2, 6},
		{2, 7},
		{2, 14},
		{2, 15},
	} {
		if tokens[i].Pos != expected {
			t.Fatalf("%d: got %v", i, tokens[i])
		}
	}
}

func TestTokenizeNeverEmpty(t *testing.T) {
	for _, src := range []string{
		"fd 1 ]]]] ((( ;;",
		"\x00\x01 fd",
		"日本 fd 1",
		"- -- --- 1",
		"1.2.3",
		"fd 1[rt 2]fd(3)",
	} {
		for _, tok := range Tokenize(src) {
			if tok.Text == "" {
				t.Fatalf("%q: empty token %v", src, tok)
			}
			if (tok.Kind == TokenOpen || tok.Kind == TokenClose) && len(tok.Text) != 1 {
				t.Fatalf("%q: got %v", src, tok)
			}
		}
	}
}

func TestTokenizerCustomKeywords(t *testing.T) {
	config := DefaultConfig()
	config.Commands["jump"] = true
	tokens := config.Tokenize("jump 1")
	if tokens[0].Kind != TokenKeyword {
		t.Fatalf("got %v", tokens[0])
	}
	if tokens := Tokenize("jump 1"); tokens[0].Kind != TokenIdentifier {
		t.Fatalf("got %v", tokens[0])
	}
}

func TestTokenString(t *testing.T) {
	tok := Tokenize("fd")[0]
	if str := fmt.Sprint(tok); str != `keyword "fd" at 1:1` {
		t.Fatalf("got %s", str)
	}
}
