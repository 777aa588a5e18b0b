// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/siemens/consolekit"
)

// Command describes a command to be registered: its name, description, and
// optional aliases, as well as the factory creating the command when it has
// been selected to run.
type Command struct {
	Name        string
	Description string
	Aliases     []string
	Factory     consolekit.CommandFactory
}

// NewCommand defines an exposed plugin symbol type for adding a command.
type NewCommand func() Command

// GlobalOption defines an exposed plugin symbol type for adding a global
// option. It is called once per invocation and must return a new argument
// each time.
type GlobalOption func() *consolekit.Argument

// CommandExamples defines an exposed symbol with CLI examples, indexed by
// command name.
type CommandExamples func() map[string]string

// BeforeRun defines an exposed plugin symbol type for running checks after
// the command line args have been processed and before running the (chosen)
// command.
type BeforeRun func(*consolekit.Invocation) error

// SemVer defines an exposed plugin symbol type for returning (overriding) the
// CLI binary's semantic version. The first plugin will win.
type SemVer func() string
