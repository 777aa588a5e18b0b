// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	log "github.com/sirupsen/logrus"
)

// Dispatch calls the handlers of all passed arguments: first the non-lazy
// global options, then the lazy global options, and finally the command
// arguments, each in processing order. Immediate global options are skipped,
// see [DispatchImmediate]. The first handler returning an error stops the
// dispatch.
func Dispatch(inv *Invocation) error {
	for _, lazy := range []bool{false, true} {
		for _, arg := range inv.Globals.Passed() {
			if arg.IsImmediate() || arg.IsLazy() != lazy {
				continue
			}
			if err := dispatch(arg, inv); err != nil {
				return err
			}
		}
	}
	for _, arg := range inv.Args.Passed() {
		if err := dispatch(arg, inv); err != nil {
			return err
		}
	}
	return nil
}

// DispatchImmediate calls the handlers of the passed immediate global
// options in processing order. It runs right after the global options have
// been matched, so before the command gets resolved and before validation.
func DispatchImmediate(inv *Invocation) error {
	for _, arg := range inv.Globals.Passed() {
		if !arg.IsImmediate() {
			continue
		}
		if err := dispatch(arg, inv); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(arg *Argument, inv *Invocation) error {
	log.Debugf("triggering %s argument %s", arg.scope, arg.name)
	return arg.trigger(inv)
}
