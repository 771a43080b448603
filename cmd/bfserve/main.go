package main

import (
	"context"
	"os"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/nets"
	"github.com/reusee/dscope"
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

	if path == "" && *programText == "" {
		os.Stderr.WriteString("usage: bfserve [flags] <program file>\n")
		os.Exit(-1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newRun logs.NewRun,
		listen nets.Listen,
		addr nets.ServeAddr,
		eofPolicy bfvm.EOFPolicy,
	) {

		program, err := load(path)
		ce(err)
		logger.Info("program",
			"name", program.Name,
			"instructions", len(program.Code),
		)

		ln, err := listen(string(addr))
		ce(err)

		server := &Server{
			Program: program,
			EOF:     eofPolicy,
			Logger:  logger,
			NewRun:  newRun,
		}
		ce(server.Serve(context.Background(), ln))

	})

}

func load(path string) (*bfvm.Program, error) {
	if *programText != "" {
		return bfvm.CompileString("-e", *programText)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bfvm.Compile(path, f)
}

func ce(err error) {
	if err == nil {
		return
	}
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
