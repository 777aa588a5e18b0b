/*
Package output renders console messages for consolekit applications. Messages
use a small tag markup to mark up their parts, such as “<error>...</error>”,
“<info>...</info>”, “<comment>...</comment>”, and “<debug>...</debug>”. Tags
can be nested: a closing tag restores the color of the enclosing tag.

Each message carries a verbosity level; messages above the current level of
the running invocation are suppressed. The current level as well as whether
colors are disabled are not owned by this package, but instead queried from
a [Settings] implementation, usually the running invocation.

Tabular output is rendered by [Grid] using the custom-columns printer of
[klo].

[klo]: https://github.com/thediveo/klo
*/
package output
