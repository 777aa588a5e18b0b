/*
Package cli defines plugin extension points for consolekit applications. This
allows to build applications that pick up commands and global options from
any package that gets linked in, without a central list of commands.

# Extension Points

The following plugin “group” extension points are available (and also invoked in
this general order):

  - [GlobalOption]: for adding global options that apply to all commands, such
    as “--debug”.
  - [NewCommand]: for adding commands, together with their descriptions and
    aliases.
  - [CommandExamples]: for adding (more) examples to particular commands. The
    examples are shown as part of a command's help.
  - [BeforeRun]: for checking and doing things after all arguments have been
    dispatched and just before the command runs.
  - [SemVer]: for overriding the semantic version shown by the “version”
    command.

Simply put, the plugin mechanism used in consolekit is compile-time only and
allows so-called plugins to register functions in what is termed “groups”. The
registered functions then can be iterated over. Additionally, the plugin
mechanism allows control over the ordering of plugins: for instance, this
allows to register command examples to be picked up after the built-in
examples. For more details about the plugin mechanism, please refer to
[go-plugger].

[go-plugger]: https://github.com/thediveo/go-plugger
*/
package cli
