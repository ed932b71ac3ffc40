package netlogo

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMissingValue     = errors.New("missing value")
	ErrEmptyParentheses = errors.New("empty parentheses")
	ErrTooComplex       = errors.New("expression too complex")
	ErrTooDeep          = errors.New("nesting too deep")
)

// parser walks a token slice. Expression methods return plain errors
// carrying a position; statement methods return *Diagnostic.
type parser struct {
	config *Config
	tokens []Token
	pos    int
	depth  int
}

func newParser(config *Config, tokens []Token) *parser {
	return &parser{
		config: config,
		tokens: tokens,
	}
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// endPos is where an error about missing input points.
func (p *parser) endPos() Pos {
	if len(p.tokens) == 0 {
		return Pos{}
	}
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Pos
	}
	return p.tokens[len(p.tokens)-1].Pos
}

func (p *parser) at(kind TokenKind, text string) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind && tok.Text == text
}

func (p *parser) atWord(words ...string) bool {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenKeyword {
		return false
	}
	w := lower(tok)
	for _, word := range words {
		if w == word {
			return true
		}
	}
	return false
}

func (p *parser) enter(pos Pos) error {
	p.depth++
	if p.depth > p.config.MaxDepth {
		return WithPos(ErrTooDeep, pos)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// IsValidExpression reports whether the whole span is one numeric or
// boolean expression.
func (v *Verifier) IsValidExpression(tokens []Token) bool {
	p := newParser(&v.config, tokens)
	if err := p.parseLogic(); err != nil {
		return false
	}
	return p.atEnd()
}

func (p *parser) parseLogic() error {
	if err := p.parseAnd(); err != nil {
		return err
	}
	for p.atWord(wordOr, wordXor) {
		p.next()
		if err := p.parseAnd(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseAnd() error {
	if err := p.parseNot(); err != nil {
		return err
	}
	for p.atWord(wordAnd) {
		p.next()
		if err := p.parseNot(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseNot() error {
	if p.atWord(wordNot) {
		tok := p.next()
		if err := p.enter(tok.Pos); err != nil {
			return err
		}
		defer p.leave()
		return p.parseNot()
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() error {
	if err := p.parseArith(); err != nil {
		return err
	}
	tok, ok := p.peek()
	if ok && tok.Kind == TokenOperator && comparisonOperators[tok.Text] {
		p.next()
		return p.parseArith()
	}
	return nil
}

// parseArith accepts a flat chain of operands joined by arithmetic
// operators. Chains longer than MaxChainOperators are rejected instead
// of being resolved by precedence.
func (p *parser) parseArith() error {
	if err := p.parseOperand(); err != nil {
		return err
	}
	n := 0
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOperator || !arithmeticOperators[tok.Text] {
			return nil
		}
		n++
		if n > p.config.MaxChainOperators {
			return WithPos(
				fmt.Errorf("%w: more than %d operators without parentheses", ErrTooComplex, p.config.MaxChainOperators),
				tok.Pos,
			)
		}
		p.next()
		if err := p.parseOperand(); err != nil {
			return err
		}
	}
}

func (p *parser) parseOperand() error {
	tok, ok := p.peek()
	if !ok {
		return WithPos(ErrMissingValue, p.endPos())
	}

	switch tok.Kind {

	case TokenNumber:
		p.next()
		// out of float64 range is left to the value range check
		if _, err := strconv.ParseFloat(tok.Text, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
			return WithPos(fmt.Errorf("malformed number %q", tok.Text), tok.Pos)
		}
		return nil

	case TokenOpen:
		if tok.Text != "(" {
			return WithPos(ErrMissingValue, tok.Pos)
		}
		return p.parseParenthesized()

	case TokenClose:
		return WithPos(ErrMissingValue, tok.Pos)

	case TokenOperator:
		return WithPos(fmt.Errorf("unexpected operator %q", tok.Text), tok.Pos)

	case TokenKeyword:
		if lower(tok) == wordIfElseValue {
			p.next()
			if err := p.enter(tok.Pos); err != nil {
				return err
			}
			defer p.leave()
			return p.parseIfElseValue(tok)
		}
		return WithPos(fmt.Errorf("unexpected %q in expression", tok.Text), tok.Pos)

	}

	p.next()
	word := lower(tok)
	switch {
	case word == wordTrue || word == wordFalse:
		return nil
	case p.config.Variables[word]:
		return nil
	case p.config.ListVariables[word]:
		return WithPos(fmt.Errorf("list %q used as a number", tok.Text), tok.Pos)
	}
	if arity, ok := p.config.Reporters[word]; ok {
		for i := range arity {
			if err := p.parseArgument(tok, i, arity); err != nil {
				return err
			}
		}
		return nil
	}
	if p.config.Dangerous[word] {
		return WithPos(fmt.Errorf("dangerous primitive %q", tok.Text), tok.Pos)
	}
	return WithPos(fmt.Errorf("unknown identifier %q", tok.Text), tok.Pos)
}

func (p *parser) parseParenthesized() error {
	open := p.next()
	if err := p.enter(open.Pos); err != nil {
		return err
	}
	defer p.leave()

	if p.at(TokenClose, ")") {
		return WithPos(ErrEmptyParentheses, open.Pos)
	}
	if p.atWord(wordIfElseValue) {
		return p.parseChainedIfElseValue(p.next())
	}
	if err := p.parseLogic(); err != nil {
		return err
	}
	return p.expectClose(open)
}

func (p *parser) expectClose(open Token) error {
	tok, ok := p.peek()
	want := closerOf[open.Text]
	if !ok {
		return WithPos(fmt.Errorf("unclosed %q", open.Text), open.Pos)
	}
	if tok.Kind != TokenClose || tok.Text != want {
		return WithPos(fmt.Errorf("expected %q, got %q", want, tok.Text), tok.Pos)
	}
	p.next()
	return nil
}

// parseArgument accepts a number, a variable, a zero-argument reporter or
// a parenthesized expression. A reporter call as a bare argument
// ("sin random 90") is ambiguous and rejected.
func (p *parser) parseArgument(reporter Token, index int, arity int) error {
	tok, ok := p.peek()
	if !ok || tok.Kind == TokenClose || tok.Kind == TokenOpen && tok.Text != "(" {
		return WithPos(fmt.Errorf("missing argument for %q", reporter.Text), reporter.Pos)
	}

	name := lower(reporter)
	wantList := p.config.ListReporters[name] || name == "item" && index == arity-1
	if wantList {
		if tok.Kind == TokenIdentifier && p.config.ListVariables[lower(tok)] {
			p.next()
			return nil
		}
		return WithPos(fmt.Errorf("%q expects a list", reporter.Text), tok.Pos)
	}

	if tok.Kind == TokenIdentifier {
		if n, ok := p.config.Reporters[lower(tok)]; ok && n > 0 {
			return WithPos(
				fmt.Errorf("argument of %q calls %q without parentheses", reporter.Text, tok.Text),
				tok.Pos,
			)
		}
	}
	if tok.Kind == TokenKeyword && lower(tok) != wordIfElseValue {
		return WithPos(fmt.Errorf("missing argument for %q", reporter.Text), reporter.Pos)
	}
	return p.parseOperand()
}

// ifelse-value cond [ expr ] [ expr ]
func (p *parser) parseIfElseValue(kw Token) error {
	if err := p.parseValueGuard(kw); err != nil {
		return err
	}
	if !p.at(TokenOpen, "[") {
		return WithPos(fmt.Errorf("missing false branch for %q", kw.Text), p.endPos())
	}
	return p.parseValueBranch()
}

// ( ifelse-value cond [ expr ] cond [ expr ] ... [ expr ] )
func (p *parser) parseChainedIfElseValue(kw Token) error {
	guards := 0
	for {
		tok, ok := p.peek()
		if !ok {
			return WithPos(fmt.Errorf("unclosed %q", kw.Text), kw.Pos)
		}
		if tok.Kind == TokenClose && tok.Text == ")" {
			if guards == 0 {
				return WithPos(fmt.Errorf("missing branch for %q", kw.Text), tok.Pos)
			}
			p.next()
			return nil
		}
		if tok.Kind == TokenOpen && tok.Text == "[" {
			if guards == 0 {
				return WithPos(fmt.Errorf("missing condition for %q", kw.Text), tok.Pos)
			}
			if err := p.parseValueBranch(); err != nil {
				return err
			}
			if !p.at(TokenClose, ")") {
				return WithPos(fmt.Errorf("expected \")\" after final %q branch", kw.Text), p.endPos())
			}
			p.next()
			return nil
		}
		if err := p.parseValueGuard(kw); err != nil {
			return err
		}
		guards++
	}
}

func (p *parser) parseValueGuard(kw Token) error {
	if p.at(TokenOpen, "[") {
		return WithPos(fmt.Errorf("missing condition for %q", kw.Text), kw.Pos)
	}
	if err := p.parseLogic(); err != nil {
		return err
	}
	if !p.at(TokenOpen, "[") {
		return WithPos(fmt.Errorf("missing true branch for %q", kw.Text), p.endPos())
	}
	return p.parseValueBranch()
}

func (p *parser) parseValueBranch() error {
	open := p.next()
	if err := p.enter(open.Pos); err != nil {
		return err
	}
	defer p.leave()
	if p.at(TokenClose, "]") {
		return WithPos(ErrMissingValue, open.Pos)
	}
	if err := p.parseLogic(); err != nil {
		return err
	}
	return p.expectClose(open)
}
