package checks

import (
	"fmt"

	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/netlogo"
)

// Builtin returns the named built-in check, or false if there is none.
func Builtin(
	name string,
	verifier *netlogo.Verifier,
	sensors learconfigs.Sensors,
	params learconfigs.MovementParams,
) (Func, bool) {
	switch name {
	case "is_safe":
		return func(code string) (bool, error) {
			ok, _ := verifier.IsSafe(code)
			return ok, nil
		}, true
	case "all_greater_than_zero":
		return func(code string) (bool, error) {
			return AllGreaterThanZero(sensors, code), nil
		}, true
	case "variables_present":
		return func(code string) (bool, error) {
			return VariablesPresent(sensors, code), nil
		}, true
	case "movement_params":
		return func(code string) (bool, error) {
			return MovementParams(params, code), nil
		}, true
	}
	return nil, false
}

// RegisterBuiltins registers the named built-in checks.
func (f *Framework) RegisterBuiltins(
	names []string,
	verifier *netlogo.Verifier,
	sensors learconfigs.Sensors,
	params learconfigs.MovementParams,
) error {
	for _, name := range names {
		fn, ok := Builtin(name, verifier, sensors, params)
		if !ok {
			return fmt.Errorf("unknown check: %s", name)
		}
		if err := f.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}
