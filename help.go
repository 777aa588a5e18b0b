// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"strings"

	"github.com/siemens/consolekit/output"
)

// argumentRow is a single row in an argument grid.
type argumentRow struct {
	Name        string
	Aliases     string
	Description string
}

// commandRow is a single row in a command grid.
type commandRow struct {
	Name        string
	Description string
}

// ArgumentGrid returns a grid describing the arguments of the registry.
func ArgumentGrid(out *output.Output, reg *Registry) *output.Grid {
	grid := output.NewGrid(out,
		output.Column{Header: "ARGUMENT", Field: "{.Name}"},
		output.Column{Header: "ALIASES", Field: "{.Aliases}"},
		output.Column{Header: "DESCRIPTION", Field: "{.Description}"})
	for _, arg := range reg.Arguments() {
		name := arg.name
		if v, ok := arg.variant.(*ValueVariant); ok {
			name += " <value>"
			if v.required {
				name += " (required)"
			}
		}
		grid.AddRow(argumentRow{
			Name:        name,
			Aliases:     strings.Join(arg.aliases, " "),
			Description: arg.description,
		})
	}
	return grid
}

// CommandGrid returns a grid listing the registered commands.
func CommandGrid(out *output.Output, commands *CommandRegistry) *output.Grid {
	grid := output.NewGrid(out,
		output.Column{Header: "COMMAND", Field: "{.Name}"},
		output.Column{Header: "DESCRIPTION", Field: "{.Description}"})
	grid.HideHeaders = true
	grid.RowTag = "comment"
	for _, info := range commands.Infos() {
		grid.AddRow(commandRow{Name: info.Name, Description: info.Description})
	}
	return grid
}

// DescribeGlobalOptions shows the global options.
func (inv *Invocation) DescribeGlobalOptions() error {
	inv.Out.Nl().Info("Console options:").Nl()
	return ArgumentGrid(inv.Out, inv.Globals).Display(output.Normal)
}

// DescribeArguments shows the arguments of the selected command.
func (inv *Invocation) DescribeArguments() error {
	inv.Out.Nl()
	if inv.Args.Len() == 0 {
		inv.Out.Info("Command " + inv.CommandName + " does not accept any arguments!")
		return nil
	}
	inv.Out.Info("Command arguments:").Nl()
	return ArgumentGrid(inv.Out, inv.Args).Display(output.Normal)
}

// ListCommands shows the available commands, followed by the global options.
func (inv *Invocation) ListCommands() error {
	inv.Out.Nl().Info("Available commands:").Nl()
	if err := CommandGrid(inv.Out, inv.Commands).Display(output.Normal); err != nil {
		return err
	}
	return inv.DescribeGlobalOptions()
}
