// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/output"
	"github.com/thediveo/go-plugger/v3"
)

// Examples collects all examples for the specified command from the registered
// plugins, in plugin order. Trailing newlines are removed and empty examples
// are skipped.
func Examples(command string) []string {
	examples := []string{}
	for _, example := range plugger.Group[CommandExamples]().Symbols() {
		text := strings.TrimRight(example()[command], "\n")
		if text == "" {
			continue
		}
		examples = append(examples, text)
	}
	return examples
}

// ShowExamples writes the examples for the invocation's command, separated by
// empty lines. Nothing is written for commands without examples.
func ShowExamples(inv *consolekit.Invocation) {
	examples := Examples(inv.CommandName)
	if len(examples) == 0 {
		return
	}
	inv.Out.Nl().Info("Examples:")
	for idx, example := range examples {
		if idx > 0 {
			inv.Out.Nl()
		}
		for _, line := range strings.Split(example, "\n") {
			if strings.HasPrefix(line, "#") {
				line = "<comment>" + line + "</comment>"
			}
			inv.Out.Writeln("  "+line, output.Normal)
		}
	}
}
