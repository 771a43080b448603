package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapRun(ctx context.Context, err error) error {
	v := ctx.Value(RunKey)
	if v == nil {
		return err
	}
	err = errors.Join(err, fmt.Errorf("run: %s", v.(Run)))
	return err
}
