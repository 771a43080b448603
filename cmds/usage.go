package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		// alias names point at the same command, print it once
		if slices.Contains(command.Aliases, name) {
			continue
		}

		pad := strings.Repeat("  ", indent)
		line := pad + name
		if len(command.Aliases) > 0 {
			line += " | " + strings.Join(command.Aliases, " | ")
		}
		if command.Description != "" {
			line += "\n" + pad + "  " + command.Description
		}
		fmt.Println(line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
