// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "list" command for listing the available commands in
// kubectl-like output formats.

package command

import (
	"strings"

	"github.com/siemens/consolekit"
	"github.com/siemens/consolekit/cli"
	"github.com/siemens/consolekit/output"
	log "github.com/sirupsen/logrus"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/klo"
)

// Builtin custom-columns templates
const (
	// CommandListTemplate defines the custom columns when listing commands.
	CommandListTemplate = "COMMAND:{.Name},DESCRIPTION:{.Description}"
	// CommandWideListTemplate is like CommandListTemplate, but additionally
	// tacks on a column listing the command aliases.
	CommandWideListTemplate = "COMMAND:{.Name},ALIASES:{.Aliases},DESCRIPTION:{.Description}"

	// NameListTemplate for handling "-o name" and only showing a custom "name"
	// column; this template should be used with no headers shown, as kubectl
	// and others do.
	NameListTemplate = "NAME:{.Name}"
)

// Listing is a single command as listed.
type Listing struct {
	Name        string
	Aliases     string
	Description string
}

// listCmd lists the commands, optionally only those whose names start with
// one of the operands.
type listCmd struct {
	output    *consolekit.Argument
	noHeaders *consolekit.Argument
	sortBy    *consolekit.Argument
}

func init() {
	plugger.Group[cli.NewCommand]().Register(func() cli.Command {
		return cli.Command{
			Name:        "list",
			Description: "List the available commands.",
			Aliases:     []string{"ps"},
			Factory:     func() consolekit.Command { return &listCmd{} },
		}
	}, plugger.WithPlugin("list"))
	plugger.Group[cli.CommandExamples]().Register(func() map[string]string {
		return map[string]string{
			"list": `# List all commands including their aliases.
consolekit list -o wide

# List only the names of commands starting with "ver".
consolekit list -o name ver`,
		}
	}, plugger.WithPlugin("list"))
}

func (c *listCmd) Arguments(args *consolekit.Registry) error {
	c.output = consolekit.NewValue("output",
		"Output format. One of: json|yaml|name|wide|custom-columns=...|jsonpath=...", "o")
	c.noHeaders = consolekit.NewFlag("no-headers",
		"When using the default or custom-column output format, don't print headers.")
	c.sortBy = consolekit.NewValue("sort-by",
		"Sort custom-columns using this JSONPath field specification (e.g. '{.Name}').")
	for _, arg := range []*consolekit.Argument{c.output, c.noHeaders, c.sortBy} {
		if err := args.Register(arg); err != nil {
			return err
		}
	}
	return nil
}

// Operands are optional command name prefixes to filter for.
func (c *listCmd) Operands() (int, int) { return 0, -1 }

func (c *listCmd) Run(inv *consolekit.Invocation) error {
	prn, err := c.printer()
	if err != nil {
		return err
	}
	if sortby := c.sortBy.Value(); sortby != "" {
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return err
		}
	}
	listings := []Listing{}
	for _, info := range inv.Commands.Infos() {
		if !selected(info.Name, inv.Operands) {
			log.Debugf("skipping command %s", info.Name)
			continue
		}
		listings = append(listings, Listing{
			Name:        info.Name,
			Aliases:     strings.Join(info.Aliases, ","),
			Description: info.Description,
		})
	}
	return prn.Fprint(inv.Out.Writer(), listings)
}

// selected returns true if there are no filters, or the name starts with one
// of the filters.
func selected(name string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if strings.HasPrefix(name, filter) {
			return true
		}
	}
	return false
}

// printer returns a value printer configured according to the output format
// chosen by the user, and some more optional output configuration flags.
func (c *listCmd) printer() (prn klo.ValuePrinter, err error) {
	outfmt := c.output.Value()
	if outfmt == "name" {
		prn, err = klo.PrinterFromFlag("custom-columns="+NameListTemplate, nil)
		if err != nil {
			return
		}
		prn.(*klo.CustomColumnsPrinter).HideHeaders = true
		return
	}
	prn, err = klo.PrinterFromFlag(outfmt, &klo.Specs{
		DefaultColumnSpec: CommandListTemplate,
		WideColumnSpec:    CommandWideListTemplate,
	})
	if err != nil {
		return
	}
	if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
		ccprn.Padding = output.GridPadding
		ccprn.HideHeaders = c.noHeaders.Passed()
	}
	return
}
