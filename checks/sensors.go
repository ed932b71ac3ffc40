package checks

import (
	"slices"
	"strings"

	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/netlogo"
)

const sensorPrefix = "energy-"

// AllGreaterThanZero reports whether every sensor is guarded by a "> 0"
// comparison in some branch condition. A sensor compared with ">" or
// ">=" against an already guarded sensor counts as guarded too. A
// condition holding a "> N" comparison with N >= 1 guards nothing.
func AllGreaterThanZero(sensors learconfigs.Sensors, code string) bool {
	guarded := make(map[string]bool)
	for _, cond := range extractConditions(netlogo.Tokenize(code)) {
		analyzeCondition(cond, guarded)
	}
	for _, sensor := range sensors {
		if !guarded[sensor] {
			return false
		}
	}
	return len(sensors) > 0
}

// extractConditions returns the guards of the first chained
// "(ifelse ...)" form if there is one, otherwise the guard of every
// "ifelse".
func extractConditions(tokens []netlogo.Token) (ret [][]netlogo.Token) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == netlogo.TokenOpen && tokens[i].Text == "(" &&
			isWord(tokens[i+1], "ifelse") {
			return chainedConditions(tokens[i+2:])
		}
	}

	for i, tok := range tokens {
		if !isWord(tok, "ifelse") {
			continue
		}
		var cond []netlogo.Token
	scan:
		for _, t := range tokens[i+1:] {
			switch {
			case t.Text == "[":
				if len(cond) > 0 {
					ret = append(ret, cond)
				}
				break scan
			case t.Text == "]":
				break scan
			}
			cond = append(cond, t)
		}
	}
	return
}

// chainedConditions collects the top-level guards up to the ')' that
// closes the chain.
func chainedConditions(tokens []netlogo.Token) (ret [][]netlogo.Token) {
	var cond []netlogo.Token
	brackets := 0
	parens := 1
	for _, tok := range tokens {
		switch tok.Text {
		case "(":
			parens++
		case ")":
			parens--
		}
		if parens == 0 {
			break
		}

		switch {
		case tok.Text == "[":
			if brackets == 0 && hasSensor(cond) {
				ret = append(ret, cond)
			}
			cond = nil
			brackets++
		case tok.Text == "]":
			brackets--
		case brackets == 0:
			cond = append(cond, tok)
		}
	}
	if hasSensor(cond) {
		ret = append(ret, cond)
	}
	return
}

func hasSensor(tokens []netlogo.Token) bool {
	return slices.ContainsFunc(tokens, isSensor)
}

func isSensor(tok netlogo.Token) bool {
	return strings.HasPrefix(strings.ToLower(tok.Text), sensorPrefix)
}

func isWord(tok netlogo.Token, word string) bool {
	return tok.Kind == netlogo.TokenKeyword && strings.ToLower(tok.Text) == word
}

func analyzeCondition(cond []netlogo.Token, guarded map[string]bool) {
	type comparison struct {
		left  string
		op    string
		right netlogo.Token
	}
	var comparisons []comparison
	for i := 0; i+2 < len(cond); i++ {
		if !isSensor(cond[i]) || cond[i+1].Kind != netlogo.TokenOperator {
			continue
		}
		comparisons = append(comparisons, comparison{
			left:  strings.ToLower(cond[i].Text),
			op:    cond[i+1].Text,
			right: cond[i+2],
		})
	}

	for _, c := range comparisons {
		if c.op == ">" && c.right.Kind == netlogo.TokenNumber &&
			c.right.Text[0] >= '1' && c.right.Text[0] <= '9' {
			return
		}
	}

	for _, c := range comparisons {
		if c.op == ">" && c.right.Kind == netlogo.TokenNumber &&
			c.right.Text[0] == '0' {
			guarded[c.left] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for _, c := range comparisons {
			if c.op != ">" && c.op != ">=" {
				continue
			}
			right := strings.ToLower(c.right.Text)
			if guarded[right] && !guarded[c.left] {
				guarded[c.left] = true
				changed = true
			}
		}
	}
}

// VariablesPresent reports whether every sensor name occurs in code.
func VariablesPresent(sensors learconfigs.Sensors, code string) bool {
	for _, sensor := range sensors {
		if !strings.Contains(code, sensor) {
			return false
		}
	}
	return true
}
