// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Scope of an argument: either the global options shared by all commands, or
// the arguments of a particular command.
type Scope int

// Argument scopes; the zero value means “not registered yet”.
const (
	GlobalScope Scope = iota + 1
	CommandScope
)

func (s Scope) String() string {
	switch s {
	case GlobalScope:
		return "global"
	case CommandScope:
		return "command"
	}
	return "unregistered"
}

// Handler is called when its argument has been passed. Returning an error
// stops the dispatch of any further handlers; see also [ExitError].
type Handler func(inv *Invocation) error

// ArgumentFactory returns a new argument; it is called once per invocation.
type ArgumentFactory func() *Argument

// Variant is the closed set of argument variants: *FlagVariant,
// *ValueVariant, and *OptionVariant.
type Variant interface {
	variant()
}

// FlagVariant arguments carry no state beyond being passed or not.
type FlagVariant struct{}

// ValueVariant arguments consume the token following them as their value.
type ValueVariant struct {
	required bool
	secret   bool
	value    string
	bound    pflag.Value
}

// OptionVariant arguments are global options whose call becomes their
// handler when launched. Lazy options are dispatched only after all non-lazy
// global options; immediate options as soon as the global options have been
// matched.
type OptionVariant struct {
	lazy      bool
	immediate bool
	call      Handler
}

func (*FlagVariant) variant()   {}
func (*ValueVariant) variant()  {}
func (*OptionVariant) variant() {}

// Argument defines a flag, value-bearing argument, or global option,
// together with its state during an invocation.
type Argument struct {
	name        string
	description string
	aliases     []string
	excludes    []string
	requires    []string
	order       int // requested order slot, zero for appending
	slot        int // order slot as registered
	scope       Scope
	handlers    slots[Handler]
	passed      bool
	index       int // token index where the argument matched
	variant     Variant
	err         error
}

// NewFlag returns a new flag argument with the specified name and optional
// single-character aliases. The dashes of name and aliases are optional.
func NewFlag(name, description string, aliases ...string) *Argument {
	return newArgument(&FlagVariant{}, name, description, aliases)
}

// NewValue returns a new value-bearing argument that takes the token
// following it as its value.
func NewValue(name, description string, aliases ...string) *Argument {
	return newArgument(&ValueVariant{}, name, description, aliases)
}

// NewGlobalOption returns a new global option that runs call when passed.
func NewGlobalOption(name, description string, call Handler, aliases ...string) *Argument {
	a := newArgument(&OptionVariant{call: call}, name, description, aliases)
	if call == nil && a.err == nil {
		a.err = configErrorf("Failed to create global option %s. Missing call.", a.name)
	}
	return a
}

func newArgument(v Variant, name, description string, aliases []string) *Argument {
	a := &Argument{
		name:        NormalizeName(name),
		description: description,
		index:       -1,
		variant:     v,
	}
	if payload := strings.TrimPrefix(a.name, NamePrefix); payload == "" || strings.HasPrefix(payload, "-") {
		a.err = configErrorf("Failed to create argument %q. Names must not be empty nor start with more than two hyphens.", name)
		return a
	}
	for _, alias := range aliases {
		normalized := NormalizeAlias(alias)
		if !IsAlias(normalized) {
			a.err = configErrorf("Failed to create argument %s. Passed alias %s must match size of one character (excluding hyphen identifier).",
				a.name, normalized)
			return a
		}
		a.aliases = append(a.aliases, normalized)
	}
	return a
}

// NormalizeName prefixes name with two dashes, unless it already has them.
func NormalizeName(name string) string {
	if strings.HasPrefix(name, NamePrefix) {
		return name
	}
	return NamePrefix + name
}

// NormalizeAlias prefixes alias with a dash, unless it already has one.
func NormalizeAlias(alias string) string {
	if strings.HasPrefix(alias, AliasPrefix) {
		return alias
	}
	return AliasPrefix + alias
}

// Err returns the configuration error of a malformed argument definition, or
// nil. A malformed argument cannot be registered.
func (a *Argument) Err() error { return a.err }

// Name returns the canonical name, including the leading dashes.
func (a *Argument) Name() string { return a.name }

// Description returns the help text.
func (a *Argument) Description() string { return a.description }

// Aliases returns the aliases, including their leading dash.
func (a *Argument) Aliases() []string { return append([]string(nil), a.aliases...) }

// ExcludedNames returns the canonical names of the arguments that must not be
// passed together with this argument.
func (a *Argument) ExcludedNames() []string { return append([]string(nil), a.excludes...) }

// RequiredNames returns the canonical names of the arguments that must be
// passed together with this argument.
func (a *Argument) RequiredNames() []string { return append([]string(nil), a.requires...) }

// Scope returns the scope of the registry this argument has been registered
// with.
func (a *Argument) Scope() Scope { return a.scope }

// Order returns the order slot of a registered argument, or the requested
// order of an unregistered argument.
func (a *Argument) Order() int {
	if a.scope == 0 {
		return a.order
	}
	return a.slot
}

// Passed returns true if the argument has been passed in the current
// invocation.
func (a *Argument) Passed() bool { return a.passed }

// Index returns the token index where the argument has been matched, or -1.
func (a *Argument) Index() int { return a.index }

// Variant returns the argument's variant.
func (a *Argument) Variant() Variant { return a.variant }

// Value returns the value of a value-bearing argument; it is empty for other
// variants and unpassed arguments.
func (a *Argument) Value() string {
	if v, ok := a.variant.(*ValueVariant); ok {
		return v.value
	}
	return ""
}

// IsRequired returns true for value-bearing arguments that must be passed.
func (a *Argument) IsRequired() bool {
	v, ok := a.variant.(*ValueVariant)
	return ok && v.required
}

// IsLazy returns true for lazy global options.
func (a *Argument) IsLazy() bool {
	v, ok := a.variant.(*OptionVariant)
	return ok && v.lazy
}

// IsImmediate returns true for immediate global options.
func (a *Argument) IsImmediate() bool {
	v, ok := a.variant.(*OptionVariant)
	return ok && v.immediate
}

// Excludes declares arguments that must not be passed together with this
// argument.
func (a *Argument) Excludes(names ...string) *Argument {
	for _, name := range names {
		a.excludes = append(a.excludes, NormalizeName(name))
	}
	return a
}

// Requires declares arguments that must be passed together with this
// argument.
func (a *Argument) Requires(names ...string) *Argument {
	for _, name := range names {
		a.requires = append(a.requires, NormalizeName(name))
	}
	return a
}

// WithOrder requests the order slot of this argument in its registry; zero
// appends. Negative slots are reserved for built-in global options.
func (a *Argument) WithOrder(order int) *Argument {
	a.order = order
	return a
}

// Lazy marks a global option to be dispatched after all non-lazy global
// options, when the command arguments have been registered already.
func (a *Argument) Lazy() *Argument {
	v, ok := a.variant.(*OptionVariant)
	if !ok {
		a.setErr(configErrorf("Argument %s is not a global option and thus cannot be lazy.", a.name))
		return a
	}
	if v.immediate {
		a.setErr(configErrorf("Global option %s cannot be both lazy and immediate.", a.name))
		return a
	}
	v.lazy = true
	return a
}

// Immediate marks a global option to be dispatched right after the global
// options have been matched, before the command gets resolved. Immediate
// options thus also affect errors reported later on, but they are not held
// back by failing validation.
func (a *Argument) Immediate() *Argument {
	v, ok := a.variant.(*OptionVariant)
	if !ok {
		a.setErr(configErrorf("Argument %s is not a global option and thus cannot be immediate.", a.name))
		return a
	}
	if v.lazy {
		a.setErr(configErrorf("Global option %s cannot be both lazy and immediate.", a.name))
		return a
	}
	v.immediate = true
	return a
}

// Required marks a value-bearing argument as required; when not passed, the
// user is asked for the value interactively.
func (a *Argument) Required() *Argument {
	v, ok := a.variant.(*ValueVariant)
	if !ok {
		a.setErr(configErrorf("Argument %s does not take a value and thus cannot be required.", a.name))
		return a
	}
	v.required = true
	return a
}

// Secret marks a value-bearing argument to be prompted for without echoing
// the input.
func (a *Argument) Secret() *Argument {
	v, ok := a.variant.(*ValueVariant)
	if !ok {
		a.setErr(configErrorf("Argument %s does not take a value and thus cannot be secret.", a.name))
		return a
	}
	v.secret = true
	return a
}

// Bind sets a typed receiver for the value of a value-bearing argument; the
// raw value is then converted by the receiver. See [IntValue] et cetera.
func (a *Argument) Bind(receiver pflag.Value) *Argument {
	v, ok := a.variant.(*ValueVariant)
	if !ok {
		a.setErr(configErrorf("Argument %s does not take a value and thus cannot be bound.", a.name))
		return a
	}
	v.bound = receiver
	return a
}

// OnPassed registers a handler to be called when the argument has been
// passed. Without a priority or with a zero priority the handler gets
// appended; otherwise it takes the priority slot, unless already taken, in
// which case it gets appended too. Handlers run in ascending slot order.
func (a *Argument) OnPassed(h Handler, priority ...int) *Argument {
	prio := 0
	if len(priority) > 0 {
		prio = priority[0]
	}
	if _, ok := a.handlers.add(h, prio); !ok {
		log.Warnf("Cannot initialize handler of argument %s properly at index %d. The given priority has already been set.",
			a.name, prio)
	}
	return a
}

func (a *Argument) setErr(err error) {
	if a.err == nil {
		a.err = err
	}
}

// matches returns true if tok is the argument's name or one of its aliases.
func (a *Argument) matches(tok string) bool {
	if tok == a.name {
		return true
	}
	for _, alias := range a.aliases {
		if tok == alias {
			return true
		}
	}
	return false
}

// trigger calls all handlers in slot order, stopping at the first error.
func (a *Argument) trigger(inv *Invocation) error {
	for _, h := range a.handlers.values() {
		if err := h(inv); err != nil {
			return err
		}
	}
	return nil
}
