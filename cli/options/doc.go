/*
Package options provides the built-in global options of consolekit
applications, registered as [cli.GlobalOption] plugins:

  - “--color-disable”: disables colored output; it is always processed first.
  - “--help”, “-h”: shows the arguments of the command, the global options,
    and command examples, and then stops without running the command.
  - “--debug”, “-d”: shows debug messages and enables debug logging.
  - “--quiet”, “-q”: shows only errors and explicitly quiet messages.

“--debug” and “--quiet” exclude each other.
*/
package options
