package main

import (
	"github.com/can-gurkan/lear/candidates"
	"github.com/can-gurkan/lear/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Candidates candidates.Module
	Debugs     debugs.Module
}
