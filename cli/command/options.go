// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/thediveo/go-plugger/v3"
)

// Provides the "options" command which gives information about the available
// global options. This is modelled after what kubectl, etc. have on offer.
type optionsCmd struct{}

func init() {
	plugger.Group[cli.NewCommand]().Register(func() cli.Command {
		return cli.Command{
			Name:        "options",
			Description: "List of global options which apply to all commands.",
			Factory:     func() consolekit.Command { return optionsCmd{} },
		}
	}, plugger.WithPlugin("options"))
}

func (optionsCmd) Arguments(*consolekit.Registry) error { return nil }

func (optionsCmd) Run(inv *consolekit.Invocation) error {
	return inv.DescribeGlobalOptions()
}
