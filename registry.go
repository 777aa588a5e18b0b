// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Registry holds the arguments of a single scope in their processing order.
type Registry struct {
	scope     Scope
	args      slots[*Argument]
	conflicts []error
}

// NewRegistry returns an empty argument registry for the specified scope.
func NewRegistry(scope Scope) *Registry {
	return &Registry{scope: scope}
}

// Scope returns the registry's scope.
func (r *Registry) Scope() Scope {
	return r.scope
}

// Register adds the argument to this registry, either at the order slot
// given or, if not given or zero, at the slot requested by the argument
// itself. An argument without a slot gets appended.
//
// When the slot is already taken the argument gets appended nevertheless;
// this is no error but is recorded as a conflict, see [Registry.Conflicts].
// Malformed arguments, duplicate names, colliding aliases, and global
// options in a command scope are configuration errors and the argument
// doesn't get registered.
func (r *Registry) Register(arg *Argument, order ...int) error {
	if arg == nil {
		return configErrorf("Cannot register a nil argument.")
	}
	if arg.err != nil {
		return arg.err
	}
	if arg.scope != 0 {
		return configErrorf("Argument %s has already been registered.", arg.name)
	}
	if _, ok := arg.variant.(*OptionVariant); ok && r.scope != GlobalScope {
		return configErrorf("Global option %s cannot be registered as a %s argument.", arg.name, r.scope)
	}
	if r.IndexOf(arg.name) >= 0 {
		return configErrorf("Argument %s has already been defined.", arg.name)
	}
	for _, alias := range arg.aliases {
		if other := r.lookupToken(alias); other != nil {
			return configErrorf("Alias %s of argument %s is already defined for argument %s.",
				alias, arg.name, other.name)
		}
	}
	want := arg.order
	if len(order) > 0 && order[0] != 0 {
		want = order[0]
	}
	slot, ok := r.args.add(arg, want)
	if !ok {
		conflict := &OrderConflictError{Name: arg.name, Order: want}
		log.Warn(conflict.Error())
		r.conflicts = append(r.conflicts, conflict)
	}
	arg.slot = slot
	arg.scope = r.scope
	log.Debugf("registered %s argument %s at order %d", r.scope, arg.name, slot)
	return nil
}

// CheckCollisions returns a configuration error if the name or any alias of
// an argument in this registry is also claimed by an argument of other.
func (r *Registry) CheckCollisions(other *Registry) error {
	for _, arg := range r.Arguments() {
		for _, tok := range append([]string{arg.name}, arg.aliases...) {
			if clash := other.lookupToken(tok); clash != nil {
				return configErrorf("%s of %s argument %s collides with %s argument %s.",
					tok, r.scope, arg.name, other.scope, clash.name)
			}
		}
	}
	return nil
}

// Conflicts returns the order conflicts encountered while registering.
func (r *Registry) Conflicts() []error {
	return r.conflicts
}

// IndexOf returns the position of the argument with the specified name in
// processing order, or -1. The leading dashes of name are optional.
func (r *Registry) IndexOf(name string) int {
	name = NormalizeName(name)
	return r.args.index(func(a *Argument) bool { return a.name == name })
}

// Lookup returns the argument with the specified name, or nil.
func (r *Registry) Lookup(name string) *Argument {
	if idx := r.IndexOf(name); idx >= 0 {
		return r.args.entries[idx].val
	}
	return nil
}

// lookupToken returns the argument with the name or alias tok, or nil.
func (r *Registry) lookupToken(tok string) *Argument {
	if idx := r.args.index(func(a *Argument) bool { return a.matches(tok) }); idx >= 0 {
		return r.args.entries[idx].val
	}
	return nil
}

// Remove deletes the argument with the specified name. It returns an error
// wrapping ErrArgumentNotFound if there is no such argument.
func (r *Registry) Remove(name string) error {
	idx := r.IndexOf(name)
	if idx < 0 {
		return fmt.Errorf("cannot remove %s: %w", NormalizeName(name), ErrArgumentNotFound)
	}
	r.args.entries[idx].val.scope = 0
	r.args.remove(idx)
	return nil
}

// Arguments returns the registered arguments in processing order.
func (r *Registry) Arguments() []*Argument {
	return r.args.values()
}

// Passed returns the passed arguments in processing order.
func (r *Registry) Passed() []*Argument {
	passed := []*Argument{}
	for _, a := range r.args.values() {
		if a.passed {
			passed = append(passed, a)
		}
	}
	return passed
}

// Len returns the number of registered arguments.
func (r *Registry) Len() int {
	return r.args.len()
}
