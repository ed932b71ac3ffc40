package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int, s *string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	expected := []string{
		"--help, -h, -help, help\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux <int> [string]\tQUX",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %q", lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %q", line)
		}
	}
}
