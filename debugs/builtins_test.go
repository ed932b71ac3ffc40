package debugs

import (
	"testing"

	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/netlogo"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestBuiltins(t *testing.T) {
	builtins := NewBuiltins(
		netlogo.New(netlogo.DefaultConfig()),
		learconfigs.DefaultSensors(),
	)
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		&starlark.Thread{Name: "test"},
		"test.star",
		`
tokens = tokenize("fd 1")
safe = is_safe("fd 1")
unsafe = is_safe("die")
result = verify("rt 1001")
cleaned = clean("fd 1 ; comment")
n = len(sensors)
`,
		starlark.StringDict(builtins),
	)
	if err != nil {
		t.Fatal(err)
	}

	for name, expected := range map[string]string{
		"tokens":  `[("keyword", "fd"), ("number", "1")]`,
		"safe":    `(True, "Code appears safe")`,
		"unsafe":  `(False, "Dangerous primitives found: die")`,
		"cleaned": `"fd 1"`,
		"n":       `9`,
	} {
		if got := globals[name].String(); got != expected {
			t.Fatalf("%s: got %s", name, got)
		}
	}

	result := globals["result"].(*starlark.Dict)
	valid, _, _ := result.Get(starlark.String("Valid"))
	if valid != starlark.False {
		t.Fatalf("got %v", result)
	}
	diagnostic, _, _ := result.Get(starlark.String("Diagnostic"))
	if diagnostic.(starlark.String) != "Value too large: 1001 at 1:4" {
		t.Fatalf("got %v", diagnostic)
	}
}

func TestBuiltinsFrozen(t *testing.T) {
	builtins := NewBuiltins(
		netlogo.New(netlogo.DefaultConfig()),
		learconfigs.DefaultSensors(),
	)
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		&starlark.Thread{Name: "test"},
		"test.star",
		`sensors.append("foo")`,
		starlark.StringDict(builtins),
	)
	if err == nil {
		t.Fatal("should fail")
	}
}
