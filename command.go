// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides registering commands by name and looking them up again, either
// by their names or aliases.

package consolekit

import (
	"strings"
)

// Command is run when selected by the first token of an invocation.
type Command interface {
	// Arguments registers the command-scope arguments.
	Arguments(args *Registry) error
	// Run runs the command after all arguments have been dispatched. A nil
	// error signals success.
	Run(inv *Invocation) error
}

// OperandCommand is implemented by commands accepting positional operands:
// the tokens left after matching all arguments. Commands not implementing
// this interface fail on any leftover token. A negative max means unlimited.
type OperandCommand interface {
	Command
	Operands() (min, max int)
}

// CommandFactory returns a new command; it is called only for the command
// selected to run.
type CommandFactory func() Command

// CommandInfo describes a registered command.
type CommandInfo struct {
	Name        string
	Description string
	Aliases     []string
}

// CommandRegistry maps command names and aliases to their factories,
// keeping the registration order for listing.
type CommandRegistry struct {
	infos     []CommandInfo
	factories map[string]CommandFactory
	// Map of names as well as aliases to command names.
	index map[string]string
}

// NewCommandRegistry returns an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		factories: map[string]CommandFactory{},
		index:     map[string]string{},
	}
}

// Register adds the command factory under the specified name and optional
// aliases. Empty names, names starting with a dash, missing factories, and
// names or aliases already taken are configuration errors.
func (r *CommandRegistry) Register(name, description string, factory CommandFactory, aliases ...string) error {
	if factory == nil {
		return configErrorf("Cannot register command %q without factory.", name)
	}
	seen := map[string]struct{}{}
	for _, n := range append([]string{name}, aliases...) {
		if n == "" || strings.HasPrefix(n, "-") {
			return configErrorf("Invalid command name %q.", n)
		}
		if owner, ok := r.index[n]; ok {
			return configErrorf("Command name %q is already taken by command %q.", n, owner)
		}
		if _, ok := seen[n]; ok {
			return configErrorf("Command name %q is given more than once for command %q.", n, name)
		}
		seen[n] = struct{}{}
	}
	r.infos = append(r.infos, CommandInfo{
		Name:        name,
		Description: description,
		Aliases:     append([]string(nil), aliases...),
	})
	r.factories[name] = factory
	r.index[name] = name
	for _, alias := range aliases {
		r.index[alias] = name
	}
	return nil
}

// Lookup returns the information and factory for the command with the
// specified name or alias, and true; otherwise, false.
func (r *CommandRegistry) Lookup(name string) (CommandInfo, CommandFactory, bool) {
	cmdname, ok := r.index[name]
	if !ok {
		return CommandInfo{}, nil, false
	}
	for _, info := range r.infos {
		if info.Name == cmdname {
			return info, r.factories[cmdname], true
		}
	}
	return CommandInfo{}, nil, false
}

// Infos returns the registered commands in registration order.
func (r *CommandRegistry) Infos() []CommandInfo {
	return append([]CommandInfo(nil), r.infos...)
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	return len(r.infos)
}
