package bfvm

import (
	"io"
	"os"
)

// EOFPolicy selects what an input instruction stores once input is
// exhausted. Running out of input is not an error, the program keeps
// going.
type EOFPolicy uint8

const (
	// EOFZero stores 0 in the current cell. The default.
	EOFZero EOFPolicy = iota
	// EOFUnchanged leaves the current cell alone.
	EOFUnchanged
	// EOFAllBits stores 255, the -1 convention some programs expect.
	EOFAllBits
)

// VM is the run state of a single execution: the instruction and data
// pointers, the data tape, and the two ends of the I/O channel. Each run
// owns its VM exclusively; concurrent runs of the same Program each get
// a fresh one.
type VM struct {
	Program *Program
	IP      int
	DP      int
	Tape    Tape

	// Input and Output default to os.Stdin and os.Stdout when nil.
	Input  io.Reader
	Output io.Writer
	EOF    EOFPolicy
}

func NewVM(program *Program) *VM {
	return &VM{
		Program: program,
		Tape:    make(Tape),
	}
}

func (v *VM) input() io.Reader {
	if v.Input != nil {
		return v.Input
	}
	return os.Stdin
}

func (v *VM) output() io.Writer {
	if v.Output != nil {
		return v.Output
	}
	return os.Stdout
}
