package bfvm

import (
	"io"
	"math"
)

// Run executes the program until the instruction pointer runs off the
// end of the tape, which is the only way a program terminates, or until
// the first runtime error, which aborts the run with the VM state as it
// was at the failing instruction. Structural errors cannot reach here,
// Compile rejects them. A read that blocks keeps the run blocked, there
// is no cancellation.
func (v *VM) Run() error {
	code := v.Program.Code
	jumps := v.Program.Jumps
	input := v.input()
	output := v.output()
	var buf [1]byte

	for v.IP < len(code) {
		switch code[v.IP] {

		case OpMoveRight:
			if v.DP == math.MaxInt {
				return &Error{Kind: DataPointerOutOfRange, Index: v.IP}
			}
			v.DP++

		case OpMoveLeft:
			if v.DP == math.MinInt {
				return &Error{Kind: DataPointerOutOfRange, Index: v.IP}
			}
			v.DP--

		case OpIncrement:
			v.Tape[v.DP]++

		case OpDecrement:
			v.Tape[v.DP]--

		case OpOutput:
			buf[0] = byte(v.Tape[v.DP])
			if _, err := output.Write(buf[:]); err != nil {
				return &Error{Kind: IOFailure, Index: v.IP, Err: err}
			}

		case OpInput:
			if _, err := io.ReadFull(input, buf[:]); err == io.EOF {
				switch v.EOF {
				case EOFZero:
					v.Tape[v.DP] = 0
				case EOFAllBits:
					v.Tape[v.DP] = ^Cell(0)
				}
			} else if err != nil {
				return &Error{Kind: IOFailure, Index: v.IP, Err: err}
			} else {
				v.Tape[v.DP] = Cell(buf[0])
			}

		case OpLoopOpen:
			// zero cell skips the body, landing on the close so the
			// shared increment below steps past the loop
			if v.Tape[v.DP] == 0 {
				v.IP = jumps[v.IP]
			}

		case OpLoopClose:
			// nonzero cell re-enters the body
			if v.Tape[v.DP] != 0 {
				v.IP = jumps[v.IP]
			}
		}

		v.IP++
	}
	return nil
}
