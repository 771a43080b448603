package bfvm

import "io"

// Compile reads source text and produces an executable Program. Loop
// delimiters are linked here, so a structurally malformed program is
// rejected before it ever runs.
func Compile(name string, source io.Reader) (*Program, error) {
	src, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return compile(name, Tokenize(src))
}

func CompileString(name string, source string) (*Program, error) {
	return compile(name, Tokenize([]byte(source)))
}

func compile(name string, code []OpCode) (*Program, error) {
	jumps, err := linkJumps(code)
	if err != nil {
		return nil, err
	}
	return &Program{
		Name:  name,
		Code:  code,
		Jumps: jumps,
	}, nil
}

// linkJumps pairs every loop open with its close in a single pass,
// keeping the indexes of still-open loops on a stack. A close always
// binds to the most recent unmatched open.
func linkJumps(code []OpCode) ([]int, error) {
	jumps := make([]int, len(code))
	var stack []int
	for i, op := range code {
		switch op {
		case OpLoopOpen:
			stack = append(stack, i)
		case OpLoopClose:
			if len(stack) == 0 {
				return nil, &Error{
					Kind:  UnmatchedLoopClose,
					Index: i,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		// report the outermost one
		return nil, &Error{
			Kind:  UnmatchedLoopOpen,
			Index: stack[0],
		}
	}
	return jumps, nil
}
