package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/can-gurkan/lear/debugs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	scriptPattern  = "verify-*.star"
	scriptFuncName = "verify"

	maxScriptSteps = 1 << 20
)

// LoadScripts registers scripted checks from dir. Every top-level
// function named verify or verify_* taking one argument in a
// verify-*.star file becomes a check named <file>.<function>.
func (f *Framework) LoadScripts(dir string, builtins debugs.Builtins) error {
	paths, err := filepath.Glob(filepath.Join(dir, scriptPattern))
	if err != nil {
		return err
	}
	slices.Sort(paths)

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script %s: %w", path, err)
		}
		thread := &starlark.Thread{
			Name: path,
		}
		thread.SetMaxExecutionSteps(maxScriptSteps)
		globals, err := starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			thread,
			path,
			src,
			starlark.StringDict(builtins),
		)
		if err != nil {
			return fmt.Errorf("exec script %s: %w", path, err)
		}

		base := strings.TrimSuffix(filepath.Base(path), ".star")
		for _, name := range globals.Keys() {
			if name != scriptFuncName && !strings.HasPrefix(name, scriptFuncName+"_") {
				continue
			}
			fn, ok := globals[name].(*starlark.Function)
			if !ok || fn.NumParams() != 1 {
				continue
			}
			if err := f.Register(base+"."+name, scriptFunc(fn)); err != nil {
				return err
			}
		}
	}

	return nil
}

func scriptFunc(fn *starlark.Function) Func {
	return func(code string) (bool, error) {
		thread := &starlark.Thread{
			Name: fn.Name(),
		}
		thread.SetMaxExecutionSteps(maxScriptSteps)
		ret, err := starlark.Call(thread, fn, starlark.Tuple{starlark.String(code)}, nil)
		if err != nil {
			return false, err
		}
		return bool(ret.Truth()), nil
	}
}
