// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"errors"
	"io"
	"os"

	"github.com/siemens/consolekit/output"
	log "github.com/sirupsen/logrus"
)

// Application wires commands and global options into the invocation pipeline.
// An Application can be run multiple times, as global options and commands
// are created afresh for each run.
type Application struct {
	// Commands available to run.
	Commands *CommandRegistry
	// GlobalOptions create the global options at the beginning of each run.
	GlobalOptions []ArgumentFactory
	// BeforeRun hooks are called after dispatching and before running the
	// selected command.
	BeforeRun []Handler

	// Stdout defaults to os.Stdout, Stdin to os.Stdin.
	Stdout io.Writer
	Stdin  io.Reader
	// NoColor starts each invocation with colors disabled.
	NoColor bool
	// Prompter defaults to a LabeledPrompt on Stdin.
	Prompter Prompter
	// HideDuration suppresses the final success or failure line.
	HideDuration bool
}

// Run runs the application with the specified process arguments, without the
// program name. It returns nil on success, otherwise an *ExitError with the
// exit code to use.
func (a *Application) Run(args []string) error {
	if inv := a.Invoke(args); !inv.Success() {
		return Exit(inv.ExitCode())
	}
	return nil
}

// Invoke runs the application like Run, but returns the finished invocation
// for inspection.
func (a *Application) Invoke(args []string) *Invocation {
	inv := a.newInvocation(args)
	if err := a.setup(inv); err != nil {
		a.fail(inv, err)
		a.footer(inv)
		return inv
	}
	err := a.pipeline(inv)
	var exit *ExitError
	switch {
	case err == nil:
		inv.SetSuccess(true)
		inv.end()
	case errors.As(err, &exit) && exit.Code == ExitSuccess:
		log.Debugf("invocation stopped early with success")
		inv.SetSuccess(true)
		inv.end()
	default:
		a.fail(inv, err)
	}
	a.footer(inv)
	return inv
}

func (a *Application) newInvocation(args []string) *Invocation {
	inv := NewInvocation(args, a.Commands)
	stdout := a.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	inv.Out = output.New(stdout, inv)
	if a.NoColor {
		inv.DisableColor()
	}
	inv.Prompter = a.Prompter
	if inv.Prompter == nil {
		stdin := a.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		inv.Prompter = NewLabeledPrompt(stdin, inv.Out)
	}
	return inv
}

// setup registers the global options.
func (a *Application) setup(inv *Invocation) error {
	for _, factory := range a.GlobalOptions {
		if err := inv.Globals.Register(factory()); err != nil {
			return err
		}
	}
	a.showConflicts(inv, inv.Globals)
	return nil
}

func (a *Application) pipeline(inv *Invocation) error {
	if inv.Tokens.Empty() {
		return a.noCommand(inv)
	}

	SplitAliases(inv.Tokens)
	inv.advance(AliasesSplit)

	if err := MatchAll(inv.Globals, inv); err != nil {
		return err
	}
	if err := DispatchImmediate(inv); err != nil {
		return err
	}
	name, ok := inv.Tokens.Shift()
	if !ok {
		return a.globalsOnly(inv)
	}
	info, factory, ok := inv.Commands.Lookup(name)
	if !ok {
		return usageErrorf("Command \"%s\" not found.", name)
	}
	log.Debugf("selected command %s", info.Name)
	inv.CommandName = info.Name
	inv.Command = factory()
	if err := inv.Command.Arguments(inv.Args); err != nil {
		return err
	}
	if err := inv.Args.CheckCollisions(inv.Globals); err != nil {
		return err
	}
	a.showConflicts(inv, inv.Args)
	if err := MatchAll(inv.Args, inv); err != nil {
		return err
	}
	if err := a.operands(inv); err != nil {
		return err
	}
	inv.advance(Matched)

	if err := Validate(inv.Globals, inv.Args); err != nil {
		return err
	}
	if err := Validate(inv.Args, inv.Globals); err != nil {
		return err
	}
	inv.advance(Validated)

	if err := Dispatch(inv); err != nil {
		return err
	}
	inv.advance(Dispatched)

	for _, hook := range a.BeforeRun {
		if err := hook(inv); err != nil {
			return err
		}
	}
	inv.advance(CommandRun)
	return inv.Command.Run(inv)
}

// globalsOnly validates and dispatches the global options passed without any
// command, and then lists the available commands.
func (a *Application) globalsOnly(inv *Invocation) error {
	inv.advance(Matched)
	if err := Validate(inv.Globals, inv.Args); err != nil {
		return err
	}
	inv.advance(Validated)
	if err := Dispatch(inv); err != nil {
		return err
	}
	inv.advance(Dispatched)
	return a.noCommand(inv)
}

// noCommand lists the available commands and global options, which counts as
// success.
func (a *Application) noCommand(inv *Invocation) error {
	inv.Out.Comment("No command desired to be run.")
	return inv.ListCommands()
}

// operands hands the leftover tokens to commands accepting operands, and
// rejects leftovers otherwise.
func (a *Application) operands(inv *Invocation) error {
	leftovers := inv.Tokens.Remaining()
	opcmd, ok := inv.Command.(OperandCommand)
	if !ok {
		if len(leftovers) == 0 {
			return nil
		}
		return &UsageError{
			Msg:     "The following argument(s) could not be resolved:",
			Details: leftovers,
		}
	}
	min, max := opcmd.Operands()
	if len(leftovers) < min || (max >= 0 && len(leftovers) > max) {
		return &UsageError{
			Msg:     "Invalid number of operands for command " + inv.CommandName + ".",
			Details: leftovers,
		}
	}
	for range leftovers {
		inv.Tokens.Shift()
	}
	inv.Operands = leftovers
	return nil
}

func (a *Application) showConflicts(inv *Invocation, reg *Registry) {
	for _, conflict := range reg.Conflicts() {
		inv.Out.Error(conflict.Error())
	}
}

// fail shows the error and aborts the invocation.
func (a *Application) fail(inv *Invocation, err error) {
	inv.SetSuccess(false)
	inv.abort()
	inv.code = ExitFailure
	var usage *UsageError
	var exit *ExitError
	switch {
	case errors.As(err, &usage):
		inv.Out.Error(usage.Msg)
		for _, detail := range usage.Details {
			inv.Out.Writeln(detail, output.Quiet)
		}
	case errors.As(err, &exit):
		inv.code = exit.Code
		if exit.Message != "" {
			inv.Out.Error(exit.Message)
		}
	default:
		inv.Out.Error(err.Error())
	}
}

func (a *Application) footer(inv *Invocation) {
	if a.HideDuration {
		return
	}
	inv.Out.Nl()
	if inv.Success() {
		inv.Out.Writeln("<info>Success after "+inv.Duration()+"</info>", output.Quiet)
		return
	}
	inv.Out.Error("Failure after " + inv.Duration())
}
