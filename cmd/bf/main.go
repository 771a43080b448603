package main

import (
	"errors"
	"os"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var programText = cmds.Var[string]("-e")

func main() {
	args := os.Args[1:]

	// the first argument that is not a flag names the program file
	var path string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		path = args[0]
		args = args[1:]
	}
	cmds.Execute(args)

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		eofPolicy bfvm.EOFPolicy,
	) {

		program, err := load(path)
		ce(err)
		logger.Debug("run",
			"program", program.Name,
			"instructions", len(program.Code),
		)

		vm := bfvm.NewVM(program)
		vm.EOF = eofPolicy
		ce(vm.Run())

	})

}

func load(path string) (*bfvm.Program, error) {
	if *programText != "" {
		return bfvm.CompileString("-e", *programText)
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return bfvm.Compile(path, f)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("no program: name a file, pass -e, or pipe source in")
	}
	return bfvm.Compile("stdin", os.Stdin)
}

func ce(err error) {
	if err == nil {
		return
	}
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
