package netlogo

import "fmt"

type Category uint8

const (
	CategoryNone Category = iota
	CategoryEmpty
	CategoryTooLong
	CategoryDangerous
	CategoryBrackets
	CategoryMissingBranch
	CategoryInvalidCondition
	CategoryMissingValue
	CategoryInvalidValue
	CategoryUnexpectedToken
	CategoryTooDeep
	CategoryOutOfRange
	CategoryNoMovement
)

var categoryNames = [...]string{
	CategoryNone:             "none",
	CategoryEmpty:            "empty-input",
	CategoryTooLong:          "input-too-long",
	CategoryDangerous:        "dangerous-primitive",
	CategoryBrackets:         "brackets",
	CategoryMissingBranch:    "missing-branch",
	CategoryInvalidCondition: "invalid-condition",
	CategoryMissingValue:     "command-missing-value",
	CategoryInvalidValue:     "invalid-value",
	CategoryUnexpectedToken:  "unexpected-token",
	CategoryTooDeep:          "nesting-too-deep",
	CategoryOutOfRange:       "value-out-of-range",
	CategoryNoMovement:       "no-movement-command",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Diagnostic is the failure a check reports. Message is stable wording;
// Pos and Err add the location and the underlying cause.
type Diagnostic struct {
	Category Category
	Message  string
	Pos      Pos
	Err      error
}

var _ error = new(Diagnostic)

func (d *Diagnostic) Error() string {
	msg := d.Message
	if d.Pos.IsValid() {
		msg = fmt.Sprintf("%s at %s", msg, d.Pos)
	}
	if d.Err != nil {
		msg = msg + ": " + d.Err.Error()
	}
	return msg
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

func fail(category Category, pos Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// PosError is an expression error pointing at a token.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if !p.Pos.IsValid() {
		return p.Err.Error()
	}
	return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

const SafeMessage = "Code appears safe"

// Result is the verdict of one verification.
type Result struct {
	Valid      bool
	Category   Category
	Diagnostic string
}

func safe() Result {
	return Result{
		Valid:      true,
		Diagnostic: SafeMessage,
	}
}

func failed(err error) Result {
	ret := Result{
		Diagnostic: err.Error(),
	}
	if d, ok := err.(*Diagnostic); ok {
		ret.Category = d.Category
	}
	return ret
}
