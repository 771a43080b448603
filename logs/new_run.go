package logs

import (
	"context"
	"crypto/rand"
)

// Run identifies one program execution in the logs. Every served session
// and every command line invocation gets its own; contexts carry it so
// all records of an execution line up.
type Run string

type runKeyType struct{}

var RunKey runKeyType

type NewRun func(ctx context.Context, parent Run) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, parent Run) (context.Context, Run) {

		// creator
		var creator Run
		if v := ctx.Value(RunKey); v != nil {
			creator = v.(Run)
		}
		if parent == "" {
			parent = creator
		}

		// run
		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)

		// logs
		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)

		return ctx, run
	}
}
