package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModules(t *testing.T) {
	for _, c := range []struct {
		module   Module
		test     *testing.T
		expected Mode
	}{
		{ForProduction(), nil, ModeProduction},
		{ForTest(t), t, ModeDevelopment},
		{Module{}, nil, ModeDevelopment},
	} {
		dscope.New(c.module).Call(func(
			got *testing.T,
			mode Mode,
		) {
			if got != c.test {
				t.Fatalf("got %v", got)
			}
			if mode != c.expected {
				t.Fatalf("got %v", mode)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for mode, expected := range map[Mode]string{
		0:               "unknown",
		ModeDevelopment: "development",
		ModeProduction:  "production",
	} {
		if str := mode.String(); str != expected {
			t.Fatalf("got %s", str)
		}
	}
}
