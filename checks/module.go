package checks

import (
	"github.com/can-gurkan/lear/debugs"
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
	Debugs  debugs.Module
}

func (Module) Framework(
	logger logs.Logger,
	verifier *netlogo.Verifier,
	sensors learconfigs.Sensors,
	params learconfigs.MovementParams,
	enabled learconfigs.EnabledChecks,
	dir learconfigs.ChecksDir,
	builtins debugs.Builtins,
) *Framework {
	framework := NewFramework(logger)
	if err := framework.RegisterBuiltins(enabled, verifier, sensors, params); err != nil {
		panic(err)
	}
	if dir != "" {
		if err := framework.LoadScripts(string(dir), builtins); err != nil {
			logger.Warn("load check scripts",
				"dir", dir,
				"error", err,
			)
		}
	}
	logger.Debug("checks",
		"names", framework.Names(),
	)
	return framework
}
