package learconfigs

import (
	"github.com/can-gurkan/lear/cmds"
	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/vars"
)

// Parallel is the number of candidates verified at the same time.
type Parallel int

const DefaultParallel = 4

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(vars.FirstNonZero(
		max(*parallelFlag, 0),
		configs.First[int](loader, "parallel"),
		DefaultParallel,
	))
}
