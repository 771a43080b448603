package bfvm

// Tokenize converts source text to an instruction tape. The eight
// instruction symbols map to their opcodes, every other byte is a
// comment and is skipped. Any input tokenizes, including the empty one.
func Tokenize(src []byte) []OpCode {
	// program text is mostly instructions, comments are the exception
	code := make([]OpCode, 0, len(src))
	for _, c := range src {
		switch c {
		case '>':
			code = append(code, OpMoveRight)
		case '<':
			code = append(code, OpMoveLeft)
		case '+':
			code = append(code, OpIncrement)
		case '-':
			code = append(code, OpDecrement)
		case '.':
			code = append(code, OpOutput)
		case ',':
			code = append(code, OpInput)
		case '[':
			code = append(code, OpLoopOpen)
		case ']':
			code = append(code, OpLoopClose)
		}
	}
	return code
}
