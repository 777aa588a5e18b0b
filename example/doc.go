/*
Package example provides the “run-me” example command, showing how to add a
command with an argument, ask the user for input, and use the output markup.

Simply importing this package registers the command:

	import _ "github.com/siemens/consolekit/example"
*/
package example
