package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, indent int) {
	// aliases share the command value
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	prefix := strings.Repeat("  ", indent)
	for _, cmd := range order {
		line := prefix + strings.Join(names[cmd], ", ")
		if args := argsDesc(cmd); args != "" {
			line += " " + args
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, indent+1)
		}
	}
}

func argsDesc(cmd *Command) string {
	if !cmd.Func.IsValid() {
		return ""
	}
	var parts []string
	t := cmd.Func.Type()
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+in.Elem().Kind().String()+"]")
			continue
		}
		parts = append(parts, "<"+in.Kind().String()+">")
	}
	return strings.Join(parts, " ")
}
