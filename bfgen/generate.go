package bfgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Generate runs a starlark script whose builtins emit program text, then
// compiles what the script emitted. Script control flow happens at
// generation time and unrolls into the program; the loop builtin is the
// one that emits a run time loop.
func Generate(name string, source io.Reader) (*bfvm.Program, error) {
	src, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return GenerateString(name, string(src))
}

func GenerateString(name string, source string) (*bfvm.Program, error) {
	g := new(generator)
	thread := &starlark.Thread{
		Name: name,
	}
	if _, err := starlark.ExecFileOptions(
		fileOptions,
		thread,
		name,
		source,
		g.builtins(),
	); err != nil {
		return nil, err
	}
	return bfvm.CompileString(name, g.buf.String())
}

type generator struct {
	buf bytes.Buffer
}

func (g *generator) emit(symbol byte, n int) {
	for range n {
		g.buf.WriteByte(symbol)
	}
}

func (g *generator) builtins() starlark.StringDict {
	return starlark.StringDict{

		"right": starlarkutil.MakeFunc("right", func(n int) {
			g.emit('>', n)
		}),

		"left": starlarkutil.MakeFunc("left", func(n int) {
			g.emit('<', n)
		}),

		"inc": starlarkutil.MakeFunc("inc", func(n int) {
			g.emit('+', n)
		}),

		"dec": starlarkutil.MakeFunc("dec", func(n int) {
			g.emit('-', n)
		}),

		"write": starlarkutil.MakeFunc("write", func() {
			g.emit('.', 1)
		}),

		"read": starlarkutil.MakeFunc("read", func() {
			g.emit(',', 1)
		}),

		// raw splices program text as is, comments and all
		"raw": starlarkutil.MakeFunc("raw", func(src string) {
			g.buf.WriteString(src)
		}),

		// text emits code printing a string: clear the current cell,
		// count up to each byte, output
		"text": starlarkutil.MakeFunc("text", func(s string) {
			for _, b := range []byte(s) {
				g.buf.WriteString("[-]")
				g.emit('+', int(b))
				g.emit('.', 1)
			}
		}),

		"loop": starlark.NewBuiltin("loop", func(
			thread *starlark.Thread,
			_ *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("loop: unexpected keyword arguments")
			}
			if len(args) != 1 {
				return nil, fmt.Errorf("loop: want one callable argument")
			}
			body, ok := args[0].(starlark.Callable)
			if !ok {
				return nil, fmt.Errorf("loop: want callable, got %s", args[0].Type())
			}
			g.emit('[', 1)
			if _, err := starlark.Call(thread, body, nil, nil); err != nil {
				return nil, err
			}
			g.emit(']', 1)
			return starlark.None, nil
		}),
	}
}
