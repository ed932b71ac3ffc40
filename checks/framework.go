package checks

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/can-gurkan/lear/logs"
)

// Func is one named pass/fail check over a candidate script.
type Func func(code string) (bool, error)

// Framework runs a set of named checks side by side.
type Framework struct {
	logger logs.Logger

	mu     sync.RWMutex
	checks map[string]Func
}

func NewFramework(logger logs.Logger) *Framework {
	return &Framework{
		logger: logger,
		checks: make(map[string]Func),
	}
}

func (f *Framework) Register(name string, fn Func) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.checks[name]; ok {
		return fmt.Errorf("duplicated check: %s", name)
	}
	f.checks[name] = fn
	return nil
}

func (f *Framework) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.checks))
}

// RunAll runs every check. A check that errors counts as failed.
func (f *Framework) RunAll(ctx context.Context, code string) map[string]bool {
	f.mu.RLock()
	checks := maps.Clone(f.checks)
	f.mu.RUnlock()

	results := make(map[string]bool, len(checks))
	for name, fn := range checks {
		ok, err := fn(code)
		if err != nil {
			f.logger.WarnContext(ctx, "check error",
				"check", name,
				"error", err,
			)
			ok = false
		}
		results[name] = ok
	}
	return results
}

// Verify reports whether all checks passed. With no check registered
// nothing is verified and the result is false.
func (f *Framework) Verify(ctx context.Context, code string) (bool, map[string]bool) {
	results := f.RunAll(ctx, code)
	if len(results) == 0 {
		return false, results
	}
	for _, ok := range results {
		if !ok {
			return false, results
		}
	}
	return true, results
}
