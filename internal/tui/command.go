package tui

import "strings"

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

var commandAliases = map[string]string{
	"h": "help",
	"q": "quit",
	"p": "posts",
	"c": "chat",
}

// ParseCommand parses a command string (without the leading ':').
// Names are lower-cased and aliases expanded.
func ParseCommand(input string) Command {
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	name = strings.ToLower(name)
	if full, ok := commandAliases[name]; ok {
		name = full
	}
	return Command{Name: name, Args: strings.TrimSpace(args)}
}

// Arg returns the first word of Args, lower-cased.
func (c Command) Arg() string {
	first, _, _ := strings.Cut(c.Args, " ")
	return strings.ToLower(first)
}
