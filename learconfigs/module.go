package learconfigs

import (
	"github.com/can-gurkan/lear/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
