// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// This is the main entry of the consolekit example application. There isn't
// actually much here to do except for running the "root" command which hands
// the CLI args to the application and its commands.

package main

import (
	"errors"
	"os"

	"github.com/siemens/consolekit"
	// Pull in all packages which define commands and global options: they will
	// register themselves as needed, but we need the packages to get included,
	// as otherwise there are no references in the code which could pull them
	// in anyway.
	"github.com/siemens/consolekit/cli/command"
	_ "github.com/siemens/consolekit/cli/options"
	_ "github.com/siemens/consolekit/example"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func main() {
	// Establish logger output format in case we're hitting errors, et cetera.
	f := new(prefixed.TextFormatter)
	f.DisableColors = true
	f.ForceFormatting = true
	f.FullTimestamp = true
	f.TimestampFormat = "15:04:05"
	log.SetFormatter(f)

	if err := command.NewRootCommand().Execute(); err != nil {
		var exit *consolekit.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		log.Error(err.Error())
		os.Exit(consolekit.ExitFailure)
	}
}
