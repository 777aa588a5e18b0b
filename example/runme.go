// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package example

import (
	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/siemens/consolekit/output"
	"github.com/thediveo/go-plugger/v3"
)

// RunMe is the example command.
type RunMe struct {
	test *consolekit.Argument
}

func init() {
	plugger.Group[cli.NewCommand]().Register(func() cli.Command {
		return cli.Command{
			Name:        "run-me",
			Description: "An example of how to add your own command.",
			Factory:     func() consolekit.Command { return &RunMe{} },
		}
	}, plugger.WithPlugin("run-me"))
	plugger.Group[cli.CommandExamples]().Register(func() map[string]string {
		return map[string]string{
			"run-me": `# Run the example with a test value.
consolekit run-me --test hello

# Show the debug messages too.
consolekit -d run-me -t hello`,
		}
	}, plugger.WithPlugin("run-me"))
}

// Arguments registers the “--test” argument.
func (c *RunMe) Arguments(args *consolekit.Registry) error {
	c.test = consolekit.NewValue("test",
		"Just a sample argument taking a value.", "t")
	return args.Register(c.test)
}

// Test returns the value passed as “--test”, if any.
func (c *RunMe) Test() string {
	return c.test.Value()
}

// Run shows off asking the user and the different message kinds.
func (c *RunMe) Run(inv *consolekit.Invocation) error {
	out := inv.Out
	out.Writeln("Running the example command. Pass --help or -h for more information.", output.Normal)
	if c.test.Passed() {
		out.Writeln(`The test value is "`+c.test.Value()+`".`, output.Normal)
	}
	out.Debug("Asking for some input now.")
	something, err := inv.Prompter.Prompt("Please type in something...", false)
	if err != nil {
		return err
	}
	out.Writeln(`Got it: "`+something+`".`, output.Normal)

	out.Comment("This is some commentary.")
	out.Info("This is some highlighted information.")
	out.Error("This is an error you should always read.")
	out.Debug("This is a debug message, shown with --debug only.")

	out.Nl().Writeln("Have a nice day!", output.Normal)
	return nil
}
