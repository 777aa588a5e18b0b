// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/siemens/consolekit"
	log "github.com/sirupsen/logrus"
	"github.com/thediveo/go-plugger/v3"
)

// NewApplication returns an application with the commands, global options,
// and before-run hooks registered by plugins.
func NewApplication() (*consolekit.Application, error) {
	commands, err := Commands()
	if err != nil {
		return nil, err
	}
	app := &consolekit.Application{
		Commands: commands,
	}
	for _, globalOption := range plugger.Group[GlobalOption]().Symbols() {
		app.GlobalOptions = append(app.GlobalOptions, consolekit.ArgumentFactory(globalOption))
	}
	for _, beforeRun := range plugger.Group[BeforeRun]().Symbols() {
		app.BeforeRun = append(app.BeforeRun, consolekit.Handler(beforeRun))
	}
	return app, nil
}

// Commands returns a command registry with the commands registered by
// plugins, in plugin order.
func Commands() (*consolekit.CommandRegistry, error) {
	commands := consolekit.NewCommandRegistry()
	for _, newCommand := range plugger.Group[NewCommand]().Symbols() {
		cmd := newCommand()
		log.Debugf("registering command %s", cmd.Name)
		if err := commands.Register(cmd.Name, cmd.Description, cmd.Factory, cmd.Aliases...); err != nil {
			return nil, err
		}
	}
	return commands, nil
}

// Version returns the semantic version, as overridden by the first SemVer
// plugin, if any.
func Version() string {
	for _, semver := range plugger.Group[SemVer]().Symbols() {
		return semver()
	}
	return consolekit.SemVersion
}
