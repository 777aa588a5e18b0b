// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

const (
	// NamePrefix starts every canonical argument name.
	NamePrefix = "--"
	// AliasPrefix starts every argument alias.
	AliasPrefix = "-"
)

// Order slots reserved for built-in global options, so that they precede all
// user-defined arguments.
const (
	OrderColorDisable = -99
	OrderHelp         = -98
)

// Exit codes of an invocation.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
