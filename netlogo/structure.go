package netlogo

import (
	"errors"
	"fmt"
)

// ValidateBlock checks a statement sequence and reports how many tokens
// it covers. It stops at end of input or at the first closing bracket
// that does not belong to the sequence.
func (v *Verifier) ValidateBlock(tokens []Token) (ok bool, message string, consumed int) {
	p := newParser(&v.config, tokens)
	if err := p.parseStatements(); err != nil {
		return false, err.Error(), p.pos
	}
	return true, "", p.pos
}

func (v *Verifier) checkSyntax(tokens []Token) error {
	p := newParser(&v.config, tokens)
	if err := p.parseStatements(); err != nil {
		return err
	}
	if tok, ok := p.peek(); ok {
		return fail(CategoryBrackets, tok.Pos, "Unmatched closing bracket '%s'", tok.Text)
	}
	return nil
}

func (p *parser) parseStatements() error {
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == TokenClose {
			return nil
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
}

func (p *parser) parseStatement() error {
	tok, _ := p.peek()

	if p.config.isCommand(tok) {
		return p.parseCommand()
	}

	switch {
	case p.atWord(wordIf):
		return p.parseIf()
	case p.atWord(wordIfElse):
		return p.parseIfElse()
	case tok.Kind == TokenOpen && tok.Text == "(":
		if p.pos+1 < len(p.tokens) {
			next := p.tokens[p.pos+1]
			if next.Kind == TokenKeyword && lower(next) == wordIfElse {
				return p.parseChained()
			}
		}
	}

	return fail(CategoryUnexpectedToken, tok.Pos, "Unexpected token '%s'", tok.Text)
}

func (p *parser) startsStatement(tok Token) bool {
	if p.config.isCommand(tok) {
		return true
	}
	if tok.Kind != TokenKeyword {
		return false
	}
	w := lower(tok)
	return w == wordIf || w == wordIfElse
}

func (p *parser) parseCommand() error {
	cmd := p.next()
	tok, ok := p.peek()
	if !ok ||
		tok.Kind == TokenClose ||
		tok.Kind == TokenOpen && tok.Text != "(" ||
		p.startsStatement(tok) {
		return fail(CategoryMissingValue, cmd.Pos, "Command '%s' needs a value", cmd.Text)
	}
	if err := p.parseArith(); err != nil {
		category := CategoryInvalidValue
		if errors.Is(err, ErrTooDeep) {
			category = CategoryTooDeep
		}
		return &Diagnostic{
			Category: category,
			Message:  fmt.Sprintf("Invalid value for command '%s'", cmd.Text),
			Err:      err,
		}
	}
	return nil
}

// if cond [ block ]
func (p *parser) parseIf() error {
	kw := p.next()
	if err := p.parseCondition(kw, "branch"); err != nil {
		return err
	}
	if err := p.parseBranch(kw, "branch"); err != nil {
		return err
	}
	if p.at(TokenOpen, "[") {
		tok, _ := p.peek()
		return fail(CategoryUnexpectedToken, tok.Pos, "Contains else branch for if statement")
	}
	return nil
}

// ifelse cond [ block ] [ block ]
func (p *parser) parseIfElse() error {
	kw := p.next()
	if err := p.parseCondition(kw, "true branch"); err != nil {
		return err
	}
	if err := p.parseBranch(kw, "true branch"); err != nil {
		return err
	}
	if !p.at(TokenOpen, "[") {
		return fail(CategoryMissingBranch, p.endPos(), "Missing false branch for %s", kw.Text)
	}
	return p.parseBranch(kw, "false branch")
}

// ( ifelse cond [ block ] cond [ block ] ... [ block ] )
func (p *parser) parseChained() error {
	open := p.next()
	kw := p.next()
	if err := p.enterBlock(open); err != nil {
		return err
	}
	defer p.leave()

	guards := 0
	for {
		tok, ok := p.peek()
		if !ok {
			return fail(CategoryBrackets, open.Pos, "Unclosed brackets: '%s'", open.Text)
		}

		if tok.Kind == TokenClose {
			if tok.Text != ")" {
				return fail(CategoryBrackets, tok.Pos, "Mismatched brackets: '%s' at %s closed by '%s'", open.Text, open.Pos, tok.Text)
			}
			if guards == 0 {
				return fail(CategoryMissingBranch, tok.Pos, "Missing true branch for %s", kw.Text)
			}
			p.next()
			return nil
		}

		if tok.Kind == TokenOpen && tok.Text == "[" {
			if guards == 0 {
				return fail(CategoryInvalidCondition, tok.Pos, "Missing condition for %s", kw.Text)
			}
			if err := p.parseBranch(kw, "default branch"); err != nil {
				return err
			}
			if !p.at(TokenClose, ")") {
				return fail(CategoryUnexpectedToken, p.endPos(), "Expected ')' after default branch for %s", kw.Text)
			}
			p.next()
			return nil
		}

		if err := p.parseCondition(kw, "branch"); err != nil {
			return err
		}
		if err := p.parseBranch(kw, "branch"); err != nil {
			return err
		}
		guards++
	}
}

// parseCondition reads the guard up to the opening bracket of the branch
// named which.
func (p *parser) parseCondition(kw Token, which string) error {
	tok, ok := p.peek()
	if !ok {
		return fail(CategoryInvalidCondition, kw.Pos, "Invalid %s condition", kw.Text)
	}
	if tok.Kind == TokenOpen && tok.Text == "[" {
		return fail(CategoryInvalidCondition, tok.Pos, "Missing condition for %s", kw.Text)
	}

	if err := p.parseLogic(); err != nil {
		category := CategoryInvalidCondition
		if errors.Is(err, ErrTooDeep) {
			category = CategoryTooDeep
		}
		return &Diagnostic{
			Category: category,
			Message:  fmt.Sprintf("Invalid %s condition", kw.Text),
			Err:      err,
		}
	}

	tok, ok = p.peek()
	switch {
	case ok && tok.Kind == TokenOpen && tok.Text == "[":
		return nil
	case !ok || tok.Kind == TokenClose || p.startsStatement(tok):
		return fail(CategoryMissingBranch, p.endPos(), "Missing %s for %s", which, kw.Text)
	}
	return &Diagnostic{
		Category: CategoryInvalidCondition,
		Message:  fmt.Sprintf("Invalid %s condition", kw.Text),
		Err:      WithPos(fmt.Errorf("unexpected %q", tok.Text), tok.Pos),
	}
}

func (p *parser) parseBranch(kw Token, which string) error {
	if !p.at(TokenOpen, "[") {
		return fail(CategoryMissingBranch, p.endPos(), "Missing %s for %s", which, kw.Text)
	}
	open := p.next()
	if err := p.enterBlock(open); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseStatements(); err != nil {
		return err
	}

	tok, ok := p.peek()
	if !ok {
		return fail(CategoryBrackets, open.Pos, "Invalid %s for %s: unclosed '['", which, kw.Text)
	}
	if tok.Text != "]" {
		return fail(CategoryBrackets, tok.Pos, "Mismatched brackets: '[' at %s closed by '%s'", open.Pos, tok.Text)
	}
	p.next()
	return nil
}

func (p *parser) enterBlock(open Token) error {
	if err := p.enter(open.Pos); err != nil {
		return fail(CategoryTooDeep, open.Pos, "Nesting too deep")
	}
	return nil
}
