package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Nets    nets.Module
}
