package bfvm

// Program is a compiled program: the instruction tape plus, for every
// loop delimiter, the index of its matching partner. A Program is
// read-only after Compile and may back any number of VMs at once.
type Program struct {
	Name  string
	Code  []OpCode
	Jumps []int // partner index, meaningful only at loop delimiters
}

// String renders the instruction tape back to source text, with all
// comments gone.
func (p *Program) String() string {
	buf := make([]byte, len(p.Code))
	for i, op := range p.Code {
		buf[i] = opSymbols[op]
	}
	return string(buf)
}
