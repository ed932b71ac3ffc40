package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("foo")
	b := Var[string]("bar")
	GlobalExecutor.MustExecute([]string{
		"foo", "42",
		"bar", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.Execute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatal()
	}
}

func TestVarDescription(t *testing.T) {
	executor := GlobalExecutor
	defer func() {
		GlobalExecutor = executor
	}()
	GlobalExecutor = NewExecutor()

	Var[int]("TestVarDescription", "a number")
	Switch("TestSwitchDescription")
	buf := new(strings.Builder)
	GlobalExecutor.WriteUsage(buf)
	if !strings.Contains(buf.String(), "TestVarDescription <int>\ta number\n") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "TestSwitchDescription\n") {
		t.Fatalf("got %s", buf.String())
	}
}
