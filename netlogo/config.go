package netlogo

import (
	"maps"
	"strings"
)

// Config is the vocabulary and the bounds a Verifier enforces.
// Every set is keyed by the lower-case spelling.
type Config struct {
	// movement commands, each taking one numeric argument
	Commands map[string]bool
	// reporter name to argument count
	Reporters map[string]int
	// reporters whose arguments are list variables rather than numbers
	ListReporters map[string]bool
	Variables     map[string]bool
	ListVariables map[string]bool
	Dangerous     map[string]bool

	MinValue float64
	MaxValue float64
	// cleaned text length
	MaxLength int
	// raw input length, checked before tokenizing
	MaxInputLength int
	// bracket nesting, for both blocks and parenthesized expressions
	MaxDepth int
	// operators allowed in one flat arithmetic chain
	MaxChainOperators int
}

func DefaultConfig() Config {
	return Config{

		Commands: map[string]bool{
			"fd": true, "forward": true,
			"bk": true, "back": true,
			"lt": true, "left": true,
			"rt": true, "right": true,
		},

		Reporters: map[string]int{
			"random":       1,
			"random-float": 1,
			"sin":          1,
			"cos":          1,
			"abs":          1,
			"item":         2,
			"length":       1,
			"first":        1,
			"last":         1,
			"max":          1,
			"min":          1,
			"mean":         1,
			"xcor":         0,
			"ycor":         0,
			"heading":      0,
		},

		ListReporters: map[string]bool{
			"length": true,
			"first":  true,
			"last":   true,
			"max":    true,
			"min":    true,
			"mean":   true,
		},

		Variables: map[string]bool{
			"energy":              true,
			"lifetime":            true,
			"food-collected":      true,
			"weight":              true,
			"energy-ahead-close":  true,
			"energy-left-close":   true,
			"energy-right-close":  true,
			"energy-ahead-medium": true,
			"energy-left-medium":  true,
			"energy-right-medium": true,
			"energy-ahead-far":    true,
			"energy-left-far":     true,
			"energy-right-far":    true,
		},

		ListVariables: map[string]bool{
			"input":                    true,
			"input-resource-distances": true,
			"poison-observations":      true,
		},

		Dangerous: map[string]bool{
			// agent lifecycle
			"die": true, "kill": true, "create": true, "hatch": true, "sprout": true,
			// other agents
			"ask": true, "of": true, "with": true, "other": true, "myself": true,
			"turtle": true, "turtles": true, "patch": true, "patches": true,
			"link": true, "links": true, "neighbors": true,
			// state mutation
			"set": true, "let": true,
			// external code and I/O
			"run": true, "runresult": true, "python": true,
			"file": true, "import": true, "export": true,
			"print": true, "show": true, "write": true, "output": true, "user": true,
			// control flow escapes
			"while": true, "loop": true, "forever": true, "repeat": true,
			"stop": true, "report": true, "foreach": true, "every": true, "wait": true,
			// simulation control
			"clear": true, "reset": true, "setup": true, "go": true, "tick": true,
		},

		MinValue:          -1000,
		MaxValue:          1000,
		MaxLength:         10000,
		MaxInputLength:    100000,
		MaxDepth:          32,
		MaxChainOperators: 2,
	}
}

// Clone returns a config whose sets can be modified without touching c.
func (c Config) Clone() Config {
	c.Commands = maps.Clone(c.Commands)
	c.Reporters = maps.Clone(c.Reporters)
	c.ListReporters = maps.Clone(c.ListReporters)
	c.Variables = maps.Clone(c.Variables)
	c.ListVariables = maps.Clone(c.ListVariables)
	c.Dangerous = maps.Clone(c.Dangerous)
	return c
}

const (
	wordIf          = "if"
	wordIfElse      = "ifelse"
	wordIfElseValue = "ifelse-value"
	wordAnd         = "and"
	wordOr          = "or"
	wordXor         = "xor"
	wordNot         = "not"
	wordTrue        = "true"
	wordFalse       = "false"
)

var structuralWords = map[string]bool{
	wordIf:          true,
	wordIfElse:      true,
	wordIfElseValue: true,
	wordAnd:         true,
	wordOr:          true,
	wordXor:         true,
	wordNot:         true,
}

func isStructuralWord(word string) bool {
	return structuralWords[word]
}

func (c Config) isKeyword(word string) bool {
	return structuralWords[word] || c.Commands[word]
}

func (c Config) isCommand(tok Token) bool {
	return tok.Kind == TokenKeyword && c.Commands[lower(tok)]
}

var arithmeticOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "^": true,
}

var comparisonOperators = map[string]bool{
	"=": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true,
}

var operators = func() map[string]bool {
	ret := maps.Clone(arithmeticOperators)
	maps.Copy(ret, comparisonOperators)
	return ret
}()

func lower(tok Token) string {
	return strings.ToLower(tok.Text)
}
