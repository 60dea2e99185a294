package core

import (
	"errors"
	"fmt"
	"os"
)

// allBuiltins holds the registered shell builtins in the order help lists
// them.
var allBuiltins []builtinEntry

type builtinEntry struct {
	name    string
	builtin ShellBuiltin
}

// ShellBuiltin is a command that runs inside the shell process. The error,
// if any, is reported to the user and doesn't stop the shell.
type ShellBuiltin interface {
	Main(s *Shell, args []string) (Status, error)
}

type ShellBuiltinFunc func(s *Shell, args []string) (Status, error)

func (f ShellBuiltinFunc) Main(s *Shell, args []string) (Status, error) {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

func addBuiltin(name string, builtin ShellBuiltin) {
	if _, ok := LookupBuiltin(name); ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	allBuiltins = append(allBuiltins, builtinEntry{name: name, builtin: builtin})
}

// LookupBuiltin finds the first builtin registered with exactly name.
func LookupBuiltin(name string) (ShellBuiltin, bool) {
	for _, entry := range allBuiltins {
		if entry.name == name {
			return entry.builtin, true
		}
	}
	return nil, false
}

// BuiltinNames lists the builtins in registration order.
func BuiltinNames() []string {
	out := make([]string, 0, len(allBuiltins))
	for _, entry := range allBuiltins {
		out = append(out, entry.name)
	}
	return out
}

var errCdNeedsPath = errors.New("cd needs a path")

// Cd changes the working directory of the shell process. Arguments after
// the path are ignored.
func Cd(s *Shell, args []string) (Status, error) {
	if len(args) < 2 {
		return Continue, errCdNeedsPath
	}
	return Continue, os.Chdir(args[1])
}

// Help prints the banner and the builtin names.
func Help(s *Shell, args []string) (Status, error) {
	w := s.Stdout
	s.bannerColor.Fprintln(w, s.Banner)
	for _, name := range BuiltinNames() {
		fmt.Fprintln(w, name)
	}
	return Continue, nil
}

// Exit quits the shell, arguments are ignored.
func Exit(s *Shell, args []string) (Status, error) {
	return Terminate, nil
}

func init() {
	addBuiltin("cd", ShellBuiltinFunc(Cd))
	addBuiltin("help", ShellBuiltinFunc(Help))
	addBuiltin("exit", ShellBuiltinFunc(Exit))
}
