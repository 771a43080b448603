package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestJournalKey(t *testing.T) {
	for in, want := range map[string]string{
		"logs.run":  "LOGS_RUN",
		"max-cells": "MAX_CELLS",
		"addr":      "ADDR",
	} {
		if got := toJournalKey(in); got != want {
			t.Errorf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
