package debugs

import (
	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/netlogo"
	"go.starlark.net/starlark"
)

// Builtins are the verifier functions predeclared in scripts and the
// repl.
//
//	tokenize(code) -> [(kind, text), ...]
//	is_safe(code) -> (ok, message)
//	verify(code) -> {"Valid": ..., "Category": ..., "Diagnostic": ...}
//	clean(code) -> string
//	sensors -> [name, ...]
type Builtins starlark.StringDict

func (Module) Builtins(
	verifier *netlogo.Verifier,
	sensors learconfigs.Sensors,
) Builtins {
	return NewBuiltins(verifier, sensors)
}

func NewBuiltins(verifier *netlogo.Verifier, sensors learconfigs.Sensors) Builtins {
	codeFunc := func(name string, fn func(code string) starlark.Value) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(
			thread *starlark.Thread,
			b *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var code string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &code); err != nil {
				return nil, err
			}
			return fn(code), nil
		})
	}

	ret := Builtins{

		"tokenize": codeFunc("tokenize", func(code string) starlark.Value {
			tokens := verifier.Tokenize(code)
			elems := make([]starlark.Value, 0, len(tokens))
			for _, tok := range tokens {
				elems = append(elems, starlark.Tuple{
					starlark.String(tok.Kind.String()),
					starlark.String(tok.Text),
				})
			}
			return starlark.NewList(elems)
		}),

		"is_safe": codeFunc("is_safe", func(code string) starlark.Value {
			ok, message := verifier.IsSafe(code)
			return starlark.Tuple{
				starlark.Bool(ok),
				starlark.String(message),
			}
		}),

		"verify": codeFunc("verify", func(code string) starlark.Value {
			return ToStarlarkValue(verifier.Verify(code))
		}),

		"clean": codeFunc("clean", func(code string) starlark.Value {
			return starlark.String(verifier.Clean(code))
		}),

		"sensors": ToStarlarkValue([]string(sensors)),
	}
	for _, value := range ret {
		value.Freeze()
	}
	return ret
}
