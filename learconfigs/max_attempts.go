package learconfigs

import (
	"github.com/can-gurkan/lear/cmds"
	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/vars"
)

// MaxAttempts bounds the generations tried for one agent before its
// previous rule is kept.
type MaxAttempts int

const DefaultMaxAttempts = 2

var maxAttemptsFlag = cmds.Var[int]("-max-attempts")

func (Module) MaxAttempts(
	loader configs.Loader,
) MaxAttempts {
	return MaxAttempts(vars.FirstNonZero(
		max(*maxAttemptsFlag, 0),
		configs.First[int](loader, "max_attempts"),
		DefaultMaxAttempts,
	))
}
