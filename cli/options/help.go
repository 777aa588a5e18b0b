// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package options

import (
	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/thediveo/go-plugger/v3"
)

func init() {
	plugger.Group[cli.GlobalOption]().Register(Help, plugger.WithPlugin("help"))
}

// Help returns the lazy “--help” global option. As it is lazy, it runs after
// the command has registered its arguments, and then stops the invocation
// successfully without running the command.
func Help() *consolekit.Argument {
	return consolekit.NewGlobalOption("help",
		"Show help about the command and its arguments.",
		showHelp, "h").
		Lazy().
		WithOrder(consolekit.OrderHelp)
}

// showHelp describes the selected command. Without any command, it leaves
// it to the subsequent command listing.
func showHelp(inv *consolekit.Invocation) error {
	if inv.Command == nil {
		return nil
	}
	if info, _, ok := inv.Commands.Lookup(inv.CommandName); ok && info.Description != "" {
		inv.Out.Comment(info.Description)
	}
	if err := inv.DescribeArguments(); err != nil {
		return err
	}
	if err := inv.DescribeGlobalOptions(); err != nil {
		return err
	}
	cli.ShowExamples(inv)
	return consolekit.Exit(consolekit.ExitSuccess)
}
