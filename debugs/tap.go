package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/can-gurkan/lear/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session on stdin with the verifier
// builtins and the given globals predeclared.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	builtins Builtins,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		predeclared := maps.Clone(starlark.StringDict(builtins))
		for name, value := range globals {
			predeclared[name] = ToStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: what,
		}
		thread.SetLocal("context", ctx)
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, predeclared)
	}
}
