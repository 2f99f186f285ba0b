package repl

import "strings"

// replCommands lists every shell command in help order.
var replCommands = []string{
	"health", "status", "query", "screenshot", "stop", "history",
	"help", "exit", "quit",
}

// Completer suggests shell commands by prefix.
type Completer struct {
	commands []string
}

// NewCompleter returns a Completer over the shell command set.
func NewCompleter() *Completer {
	return &Completer{commands: replCommands}
}

// Complete returns the commands beginning with prefix, in help order.
// An empty prefix returns every command.
func (c *Completer) Complete(prefix string) []string {
	var matches []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}
