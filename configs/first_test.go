package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", `str: "bar"`),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

}

type testAddr string

var _ Configurable = testAddr("")

func (testAddr) ConfigPath() string {
	return "serve.addr"
}

func TestLoad(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", `serve: addr: "127.0.0.1:7001"`),
	}, "")

	addr := Load[testAddr](loader)
	if addr != "127.0.0.1:7001" {
		t.Fatalf("got %v", addr)
	}

	// absent path loads the zero value
	if addr := Load[testAddr](NewLoader(nil, "")); addr != "" {
		t.Fatalf("got %v", addr)
	}
}
