package main

import (
	"fmt"
	"os"

	"github.com/reusee/bf/bfgen"
)

func main() {

	var input = os.Stdin
	var name = "stdin"
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
		name = os.Args[1]
	}

	program, err := bfgen.Generate(name, input)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	fmt.Println(program)

}
