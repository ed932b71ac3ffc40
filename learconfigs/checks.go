package learconfigs

import (
	"github.com/can-gurkan/lear/cmds"
	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/vars"
)

// MovementParams lists the literal arguments allowed for each turning
// and forward command.
type MovementParams struct {
	Left    []int `json:"left"`
	Right   []int `json:"right"`
	Forward []int `json:"forward"`
}

func DefaultMovementParams() MovementParams {
	return MovementParams{
		Left:    []int{15, 30, 45, 90},
		Right:   []int{15, 30, 45, 90},
		Forward: []int{1, 4, 7},
	}
}

func (Module) MovementParams(
	loader configs.Loader,
) MovementParams {
	params := DefaultMovementParams()
	configured := configs.First[MovementParams](loader, "movement_params")
	if configured.Left != nil {
		params.Left = configured.Left
	}
	if configured.Right != nil {
		params.Right = configured.Right
	}
	if configured.Forward != nil {
		params.Forward = configured.Forward
	}
	return params
}

// Sensors are the energy readings a complete rule must guard on.
type Sensors []string

func DefaultSensors() Sensors {
	return Sensors{
		"energy-ahead-close", "energy-left-close", "energy-right-close",
		"energy-ahead-medium", "energy-left-medium", "energy-right-medium",
		"energy-ahead-far", "energy-left-far", "energy-right-far",
	}
}

func (Module) Sensors(
	loader configs.Loader,
) Sensors {
	if sensors := configs.First[Sensors](loader, "sensors"); len(sensors) > 0 {
		return sensors
	}
	return DefaultSensors()
}

// EnabledChecks names the companion checks run next to the verifier.
type EnabledChecks []string

func DefaultEnabledChecks() EnabledChecks {
	return EnabledChecks{
		"is_safe",
		"all_greater_than_zero",
		"variables_present",
	}
}

var checkFlags = cmds.Collect[string]("-check")

func (Module) EnabledChecks(
	loader configs.Loader,
) EnabledChecks {
	if len(*checkFlags) > 0 {
		return EnabledChecks(*checkFlags)
	}
	if enabled := configs.First[EnabledChecks](loader, "checks"); len(enabled) > 0 {
		return enabled
	}
	return DefaultEnabledChecks()
}

// ChecksDir holds scripted checks. Empty means none.
type ChecksDir string

var checksDirFlag = cmds.Var[string]("-checks-dir")

func (Module) ChecksDir(
	loader configs.Loader,
) ChecksDir {
	return ChecksDir(vars.FirstNonZero(
		*checksDirFlag,
		configs.First[string](loader, "checks_dir"),
	))
}
