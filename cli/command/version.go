// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"strings"

	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/siemens/consolekit/output"
	"github.com/thediveo/go-plugger/v3"
)

// Provides the “version” command. The semantic version is the one defined for
// the consolekit module, unless overridden by a SemVer plugin. In addition,
// the version command lists the plugins contributing commands.
type versionCmd struct{}

func init() {
	plugger.Group[cli.NewCommand]().Register(func() cli.Command {
		return cli.Command{
			Name:        "version",
			Description: "Show version (with integrated command plugins).",
			Factory:     func() consolekit.Command { return versionCmd{} },
		}
	}, plugger.WithPlugin("version"))
}

func (versionCmd) Arguments(*consolekit.Registry) error { return nil }

func (versionCmd) Run(inv *consolekit.Invocation) error {
	inv.Out.Writeln(Name+" version "+cli.Version()+
		" (command plugins: "+strings.Join(plugger.Group[cli.NewCommand]().Plugins(), ", ")+")",
		output.Quiet)
	return nil
}
