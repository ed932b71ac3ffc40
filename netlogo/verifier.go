package netlogo

// Verifier checks candidate movement scripts. It holds no mutable state
// and may be shared between goroutines.
type Verifier struct {
	config Config
}

// New returns a verifier enforcing config. Zero bounds and nil sets are
// replaced by the defaults.
func New(config Config) *Verifier {
	def := DefaultConfig()
	config = config.Clone()
	if config.Commands == nil {
		config.Commands = def.Commands
	}
	if config.Reporters == nil {
		config.Reporters = def.Reporters
	}
	if config.ListReporters == nil {
		config.ListReporters = def.ListReporters
	}
	if config.Variables == nil {
		config.Variables = def.Variables
	}
	if config.ListVariables == nil {
		config.ListVariables = def.ListVariables
	}
	if config.Dangerous == nil {
		config.Dangerous = def.Dangerous
	}
	if config.MinValue == 0 && config.MaxValue == 0 {
		config.MinValue = def.MinValue
		config.MaxValue = def.MaxValue
	}
	if config.MaxLength <= 0 {
		config.MaxLength = def.MaxLength
	}
	if config.MaxInputLength <= 0 {
		config.MaxInputLength = def.MaxInputLength
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = def.MaxDepth
	}
	if config.MaxChainOperators <= 0 {
		config.MaxChainOperators = def.MaxChainOperators
	}
	return &Verifier{
		config: config,
	}
}

// Config returns a copy of the effective configuration.
func (v *Verifier) Config() Config {
	return v.config.Clone()
}

func (v *Verifier) Tokenize(source string) []Token {
	return v.config.Tokenize(source)
}

// IsSafe reports whether code passes every check, with either
// SafeMessage or the reason of the first failure.
func (v *Verifier) IsSafe(code string) (bool, string) {
	res := v.Verify(code)
	return res.Valid, res.Diagnostic
}

func (v *Verifier) Verify(code string) Result {
	if len(code) > v.config.MaxInputLength {
		return failed(fail(CategoryTooLong, Pos{}, "Code too long: %d bytes, limit %d", len(code), v.config.MaxInputLength))
	}

	tokens := v.Tokenize(code)
	for _, check := range []func([]Token) error{
		v.checkDangerous,
		v.checkBrackets,
		v.checkSyntax,
		v.checkValueRanges,
		v.checkStructure,
	} {
		if err := check(tokens); err != nil {
			return failed(err)
		}
	}

	return safe()
}
