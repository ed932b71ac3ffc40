package learconfigs

import (
	"slices"
	"strings"

	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/netlogo"
)

// Vocabulary extends or tightens the default verifier vocabulary.
// Names are added to the default sets; Allowed removes names from the
// deny-list.
type Vocabulary struct {
	Commands          []string       `json:"commands"`
	Reporters         map[string]int `json:"reporters"`
	ListReporters     []string       `json:"list_reporters"`
	Variables         []string       `json:"variables"`
	ListVariables     []string       `json:"list_variables"`
	Dangerous         []string       `json:"dangerous"`
	Allowed           []string       `json:"allowed"`
	MinValue          *float64       `json:"min_value"`
	MaxValue          *float64       `json:"max_value"`
	MaxLength         int            `json:"max_length"`
	MaxInputLength    int            `json:"max_input_length"`
	MaxDepth          int            `json:"max_depth"`
	MaxChainOperators int            `json:"max_chain_operators"`
}

// Vocabularies are the vocabulary sections of all config files, in load
// order.
type Vocabularies []Vocabulary

func (Module) Vocabularies(
	loader configs.Loader,
) Vocabularies {
	return slices.Collect(configs.All[Vocabulary](loader, "vocabulary"))
}

func (v Vocabulary) Apply(config netlogo.Config) netlogo.Config {
	config = config.Clone()
	add := func(set map[string]bool, names []string) {
		for _, name := range names {
			set[strings.ToLower(name)] = true
		}
	}
	add(config.Commands, v.Commands)
	add(config.ListReporters, v.ListReporters)
	add(config.Variables, v.Variables)
	add(config.ListVariables, v.ListVariables)
	add(config.Dangerous, v.Dangerous)
	for name, arity := range v.Reporters {
		config.Reporters[strings.ToLower(name)] = arity
	}
	for _, name := range v.Allowed {
		delete(config.Dangerous, strings.ToLower(name))
	}
	if v.MinValue != nil {
		config.MinValue = *v.MinValue
	}
	if v.MaxValue != nil {
		config.MaxValue = *v.MaxValue
	}
	if v.MaxLength > 0 {
		config.MaxLength = v.MaxLength
	}
	if v.MaxInputLength > 0 {
		config.MaxInputLength = v.MaxInputLength
	}
	if v.MaxDepth > 0 {
		config.MaxDepth = v.MaxDepth
	}
	if v.MaxChainOperators > 0 {
		config.MaxChainOperators = v.MaxChainOperators
	}
	return config
}

// NetlogoConfig applies every vocabulary to the defaults. Files found
// first take precedence, so they apply last.
func (Module) NetlogoConfig(
	vocabularies Vocabularies,
) netlogo.Config {
	config := netlogo.DefaultConfig()
	for _, vocabulary := range slices.Backward(vocabularies) {
		config = vocabulary.Apply(config)
	}
	return config
}
