package bfvm

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	prog, err := Compile("test", strings.NewReader("+[-]"))
	if err != nil {
		t.Fatal(err)
	}
	if prog.Name != "test" {
		t.Errorf("Name = %q, want test", prog.Name)
	}
	if len(prog.Code) != 4 {
		t.Errorf("len(Code) = %d, want 4", len(prog.Code))
	}
	if len(prog.Jumps) != len(prog.Code) {
		t.Errorf("len(Jumps) = %d, want %d", len(prog.Jumps), len(prog.Code))
	}
}

func TestJumpLinking(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		pairs [][2]int
	}{
		{"single", "[]", [][2]int{{0, 1}}},
		{"nested", "[[]]", [][2]int{{0, 3}, {1, 2}}},
		{"sequential", "[][]", [][2]int{{0, 1}, {2, 3}}},
		{"mixed", "+[>[-]<]", [][2]int{{1, 7}, {3, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := CompileString("test", tt.src)
			if err != nil {
				t.Fatal(err)
			}
			for _, pair := range tt.pairs {
				openAt, closeAt := pair[0], pair[1]
				if got := prog.Jumps[openAt]; got != closeAt {
					t.Errorf("Jumps[%d] = %d, want %d", openAt, got, closeAt)
				}
				if got := prog.Jumps[closeAt]; got != openAt {
					t.Errorf("Jumps[%d] = %d, want %d", closeAt, got, openAt)
				}
			}
		})
	}
}

func TestJumpIndexesCountInstructions(t *testing.T) {
	// comment bytes do not shift instruction indexes
	prog, err := CompileString("test", "loop: [ body - here ] done")
	if err != nil {
		t.Fatal(err)
	}
	if prog.Jumps[0] != 2 || prog.Jumps[2] != 0 {
		t.Errorf("Jumps = %v, want open 0 close 2", prog.Jumps)
	}
}

func TestUnmatchedDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kind  ErrorKind
		index int
	}{
		{"lone_close", "]", UnmatchedLoopClose, 0},
		{"close_after_pair", "[]]", UnmatchedLoopClose, 2},
		{"close_before_open", "][", UnmatchedLoopClose, 0},
		{"lone_open", "[", UnmatchedLoopOpen, 0},
		{"outermost_open", "[[]", UnmatchedLoopOpen, 0},
		{"open_after_pair", "[][", UnmatchedLoopOpen, 2},
		{"comments_skipped", "x[y", UnmatchedLoopOpen, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileString("test", tt.src)
			if err == nil {
				t.Fatal("expected compile error")
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error type %T, want *Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
			}
			if e.Index != tt.index {
				t.Errorf("Index = %d, want %d", e.Index, tt.index)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	prog, err := CompileString("test", " + [ - ] ")
	if err != nil {
		t.Fatal(err)
	}
	if got := prog.String(); got != "+[-]" {
		t.Errorf("String() = %q, want +[-]", got)
	}

	// rendering is a fixed point: compiling it again changes nothing
	again, err := CompileString("test", prog.String())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.Code, prog.Code) {
		t.Errorf("recompiled Code = %v, want %v", again.Code, prog.Code)
	}
}

func TestCompileReadError(t *testing.T) {
	_, err := Compile("test", failReader{readErr})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, readErr) {
		t.Errorf("error = %v, want %v", err, readErr)
	}
}
