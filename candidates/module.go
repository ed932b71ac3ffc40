package candidates

import (
	"github.com/can-gurkan/lear/checks"
	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/logs"
	"github.com/can-gurkan/lear/netlogo"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Netlogo netlogo.Module
	Configs learconfigs.Module
	Checks  checks.Module
}
