package netlogo

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Verifier(config Config) *Verifier {
	return New(config)
}
