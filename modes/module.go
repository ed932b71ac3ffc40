package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Module provides the Mode of a scope and, under go test, the running test.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

// ForProduction is used by the lear binary.
func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) T() *testing.T {
	return m.t
}

func (m Module) Mode() Mode {
	if m.mode == 0 {
		return ModeDevelopment
	}
	return m.mode
}
