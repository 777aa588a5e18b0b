// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package options

import (
	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/siemens/consolekit/output"
	log "github.com/sirupsen/logrus"
	"github.com/thediveo/go-plugger/v3"
)

func init() {
	plugger.Group[cli.GlobalOption]().Register(Debug, plugger.WithPlugin("debug"))
	plugger.Group[cli.GlobalOption]().Register(Quiet, plugger.WithPlugin("quiet"))
}

// Debug returns the “--debug” global option.
func Debug() *consolekit.Argument {
	return consolekit.NewGlobalOption("debug",
		"Show debug messages, and enable debug logging.",
		func(inv *consolekit.Invocation) error {
			inv.SetVerbosity(output.Debug)
			log.SetLevel(log.DebugLevel)
			log.Debugf("consolekit version %s", cli.Version())
			return nil
		}, "d").Excludes("quiet")
}

// Quiet returns the “--quiet” global option.
func Quiet() *consolekit.Argument {
	return consolekit.NewGlobalOption("quiet",
		"Only show errors.",
		func(inv *consolekit.Invocation) error {
			inv.SetVerbosity(output.Quiet)
			return nil
		}, "q").Excludes("debug")
}
