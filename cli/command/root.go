// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the "root" command hosting consolekit applications. The root
// command doesn't parse any flags itself, but instead hands all process args
// to the application built from the registered plugins.

package command

import (
	"github.com/fatih/color"
	"github.com/siemens/consolekit/cli"
	"github.com/spf13/cobra"
)

// Name of the application binary.
const Name = "consolekit"

// NewRootCommand returns the cobra "root" command running the application.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   Name + " [global options] command [arguments]",
		Short: "Run commands with arguments and global options",
		Long: Name + ` runs the command given as the first argument, passing it the
remaining arguments. Run it without any arguments for a list of the available
commands and global options.`,
		// All args belong to the application, including "--help".
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		// See: https://github.com/spf13/cobra/issues/340; the application
		// already has reported any problem.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	app, err := cli.NewApplication()
	if err != nil {
		return err
	}
	app.Stdout = cmd.OutOrStdout()
	app.Stdin = cmd.InOrStdin()
	// Honors NO_COLOR as well as output not going to a terminal.
	app.NoColor = color.NoColor
	return app.Run(args)
}
