package checks

import (
	"slices"
	"strconv"
	"strings"

	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/netlogo"
)

type direction uint8

const (
	dirNone direction = iota
	dirLeft
	dirRight
	dirForward
)

var directions = map[string]direction{
	"lt":      dirLeft,
	"left":    dirLeft,
	"rt":      dirRight,
	"right":   dirRight,
	"fd":      dirForward,
	"forward": dirForward,
}

// MovementParams reports whether every literal argument of a turning or
// forward command is in the allowed set. Commands inside the last
// bracketed block of the code are not checked: that block is the
// catch-all exploration branch.
func MovementParams(params learconfigs.MovementParams, code string) bool {
	tokens := stripLastBlock(netlogo.Tokenize(code))
	for i, tok := range tokens {
		dir := directions[strings.ToLower(tok.Text)]
		if dir == dirNone || tok.Kind != netlogo.TokenKeyword || i+1 >= len(tokens) {
			continue
		}
		arg := tokens[i+1]
		if arg.Kind != netlogo.TokenNumber || strings.HasPrefix(arg.Text, "-") {
			// not a literal
			continue
		}
		if len(arg.Text) > 1 && arg.Text[0] == '0' && arg.Text[1] != '.' {
			// zero-padded literals are skipped
			continue
		}
		n, err := strconv.Atoi(arg.Text)
		if err != nil {
			// fractional
			return false
		}
		var allowed []int
		switch dir {
		case dirLeft:
			allowed = params.Left
		case dirRight:
			allowed = params.Right
		case dirForward:
			allowed = params.Forward
		}
		if !slices.Contains(allowed, n) {
			return false
		}
	}
	return true
}

// stripLastBlock removes the last '[' and everything up to its matching
// ']'. An unmatched '[' leaves tokens unchanged.
func stripLastBlock(tokens []netlogo.Token) []netlogo.Token {
	start := -1
	for i, tok := range tokens {
		if tok.Kind == netlogo.TokenOpen && tok.Text == "[" {
			start = i
		}
	}
	if start < 0 {
		return tokens
	}
	depth := 0
	for i := start; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind == netlogo.TokenOpen && tok.Text == "[" {
			depth++
		} else if tok.Kind == netlogo.TokenClose && tok.Text == "]" {
			depth--
			if depth == 0 {
				return slices.Concat(tokens[:start], tokens[i+1:])
			}
		}
	}
	return tokens
}
