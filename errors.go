// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"errors"
	"fmt"
)

// ErrArgumentNotFound indicates that no argument with a given name has been
// registered.
var ErrArgumentNotFound = errors.New("argument not found")

// ConfigError is a programming mistake made when defining arguments or
// commands, such as malformed aliases, duplicate names, or excludes and
// requires referencing undefined arguments.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// UsageError is a mistake made by the user when invoking the application,
// such as an unknown command or an argument passed twice. Details optionally
// list additional lines to show below the message.
type UsageError struct {
	Msg     string
	Details []string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// OrderConflictError reports an argument that requested an order slot
// already taken by another argument; the argument has been appended instead.
type OrderConflictError struct {
	Name  string
	Order int
}

func (e *OrderConflictError) Error() string {
	return fmt.Sprintf("Cannot initialize argument %s properly ordered as %d. The given order has already been set.",
		e.Name, e.Order)
}

// ExitError stops an invocation and requests the specified exit code. A
// handler returning an ExitError with code zero ends the invocation
// successfully without running the command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// Exit returns an ExitError with the specified code.
func Exit(code int) *ExitError {
	return &ExitError{Code: code}
}
