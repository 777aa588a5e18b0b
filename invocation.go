// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"fmt"
	"time"

	"github.com/siemens/consolekit/output"
)

// State of an invocation; states only ever advance.
type State int

// Invocation states in their order.
const (
	Raw State = iota
	AliasesSplit
	Matched
	Validated
	Dispatched
	CommandRun
	Ended
	Aborted
)

var stateNames = [...]string{
	Raw:          "RAW",
	AliasesSplit: "ALIASES_SPLIT",
	Matched:      "MATCHED",
	Validated:    "VALIDATED",
	Dispatched:   "DISPATCHED",
	CommandRun:   "COMMAND_RUN",
	Ended:        "ENDED",
	Aborted:      "ABORTED",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal returns true for the final states Ended and Aborted.
func (s State) Terminal() bool {
	return s == Ended || s == Aborted
}

// Invocation is the context of a single application run, passed through all
// stages of the pipeline. It owns the token buffer and the process-wide
// settings: verbosity, whether colors are disabled, and success.
type Invocation struct {
	Tokens   *Tokens
	Out      *output.Output
	Prompter Prompter

	// Globals are the global options, Args the arguments of the selected
	// command.
	Globals *Registry
	Args    *Registry

	Commands *CommandRegistry
	// CommandName is the name of the selected command; empty until the
	// command has been selected.
	CommandName string
	Command     Command
	// Operands are the leftover tokens passed to an OperandCommand.
	Operands []string

	verbosity     output.Verbosity
	colorDisabled bool
	success       bool
	code          int
	state         State
	started       time.Time
}

// NewInvocation returns a new invocation context for the specified process
// arguments (without the program name) and commands; its global and command
// registries are still empty.
func NewInvocation(args []string, commands *CommandRegistry) *Invocation {
	if commands == nil {
		commands = NewCommandRegistry()
	}
	return &Invocation{
		Tokens:    NewTokens(args),
		Globals:   NewRegistry(GlobalScope),
		Args:      NewRegistry(CommandScope),
		Commands:  commands,
		verbosity: output.Normal,
		started:   time.Now(),
	}
}

// Verbosity returns the current output verbosity.
func (inv *Invocation) Verbosity() output.Verbosity { return inv.verbosity }

// SetVerbosity sets the output verbosity.
func (inv *Invocation) SetVerbosity(v output.Verbosity) { inv.verbosity = v }

// ColorDisabled returns true if colored output has been disabled.
func (inv *Invocation) ColorDisabled() bool { return inv.colorDisabled }

// DisableColor disables colored output.
func (inv *Invocation) DisableColor() { inv.colorDisabled = true }

// Success returns true if the invocation has succeeded.
func (inv *Invocation) Success() bool { return inv.success }

// SetSuccess marks the invocation as succeeded or failed.
func (inv *Invocation) SetSuccess(success bool) { inv.success = success }

// ExitCode returns the exit code of a failed invocation, or zero.
func (inv *Invocation) ExitCode() int {
	if inv.success {
		return ExitSuccess
	}
	return inv.code
}

// State returns the current state.
func (inv *Invocation) State() State { return inv.state }

// Elapsed returns the time since the invocation started.
func (inv *Invocation) Elapsed() time.Duration { return time.Since(inv.started) }

// Duration returns the elapsed time in seconds, for humans.
func (inv *Invocation) Duration() string {
	return fmt.Sprintf("%.3f seconds", inv.Elapsed().Seconds())
}

// advance moves to the next state; anything else is a programming error.
func (inv *Invocation) advance(next State) {
	if inv.state.Terminal() || next != inv.state+1 {
		panic(fmt.Sprintf("invalid invocation state transition %s -> %s", inv.state, next))
	}
	inv.state = next
}

// end moves into the Ended state, unless already in a terminal state.
func (inv *Invocation) end() {
	if !inv.state.Terminal() {
		inv.state = Ended
	}
}

// abort moves into the Aborted state, unless already in a terminal state.
func (inv *Invocation) abort() {
	if !inv.state.Terminal() {
		inv.state = Aborted
	}
}
