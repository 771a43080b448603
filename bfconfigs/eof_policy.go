package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

var eofFlag = cmds.Var[string]("-eof")

func (Module) EOFPolicy(
	loader configs.Loader,
) bfvm.EOFPolicy {
	name := vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof_policy"),
	)
	policy, err := ParseEOFPolicy(name)
	if err != nil {
		panic(err)
	}
	return policy
}

func ParseEOFPolicy(name string) (bfvm.EOFPolicy, error) {
	switch name {
	case "", "zero":
		return bfvm.EOFZero, nil
	case "unchanged":
		return bfvm.EOFUnchanged, nil
	case "all-bits":
		return bfvm.EOFAllBits, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", name)
}
