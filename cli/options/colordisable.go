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
	plugger.Group[cli.GlobalOption]().Register(
		ColorDisable, plugger.WithPlugin("color-disable"))
}

// ColorDisable returns the immediate “--color-disable” global option, so that
// even usage errors about unknown commands are shown without colors.
func ColorDisable() *consolekit.Argument {
	return consolekit.NewGlobalOption("color-disable",
		"Disable colored output.",
		func(inv *consolekit.Invocation) error {
			inv.DisableColor()
			return nil
		}).
		Immediate().
		WithOrder(consolekit.OrderColorDisable)
}
