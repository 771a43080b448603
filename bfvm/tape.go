package bfvm

// Cell is one data cell, 8-bit unsigned. Arithmetic wraps at both ends,
// 255+1 is 0 and 0-1 is 255.
type Cell uint8

// Tape is the data tape, a sparse map from cell address to cell value.
// An absent address reads as zero, so the tape is conceptually infinite
// in both directions from address 0. Only addresses that were written
// take up space.
type Tape map[int]Cell
