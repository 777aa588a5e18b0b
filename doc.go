/*
Package consolekit is a command-line application framework: it parses the
process arguments into typed argument objects, dispatches to a registered
command, and renders console output using the [output] package.

# Arguments and Scopes

An [Argument] is one of three variants: a flag, which is either present or
not; a value-bearing argument, which consumes the token following it; and a
global option, whose call runs when the option has been passed. Canonical
argument names always start with two dashes, such as “--test”, while aliases
are a single dash followed by exactly one character, such as “-t”. A token
with a single dash and more than one character, such as “-dh”, bundles
multiple aliases and is split into “-d -h” before matching.

Arguments live in a [Registry] of either the global scope (shared by all
commands) or the command scope (belonging to the command being run). Each
registry keeps its arguments in processing order; arguments can claim
explicit order slots, with negative slots being reserved for the built-in
options that must precede user arguments.

# Invocation Pipeline

[Application.Run] processes a single invocation, tracked by an [Invocation]
context, through the states Raw, AliasesSplit, Matched, Validated,
Dispatched, CommandRun, and finally Ended; fatal errors end up in Aborted
instead:

  - split combined aliases,
  - match the global options and then select the command from the first
    remaining token,
  - let the command register its arguments and match them,
  - validate the excludes and requires relations between passed arguments,
  - dispatch the handlers of passed arguments: non-lazy global options
    first, then lazy global options, and finally command arguments,
  - run the command.

Handlers never terminate the process themselves; instead, they return an
[ExitError] that stops the dispatch and ends the invocation with the exit
code given.
*/
package consolekit
