package bfvm

type OpCode uint8

const (
	OpMoveRight OpCode = iota
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

var opSymbols = [...]byte{
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpIncrement: '+',
	OpDecrement: '-',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
}

func (o OpCode) String() string {
	if int(o) < len(opSymbols) {
		return string(opSymbols[o])
	}
	return "?"
}
