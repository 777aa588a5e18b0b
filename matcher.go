// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	log "github.com/sirupsen/logrus"
)

// Match scans the tokens for the argument's name and then for each of its
// aliases. The first occurrence marks the argument as passed, recording the
// token index; the matched token gets consumed. Any further occurrence of
// the name or any alias is an error.
func Match(arg *Argument, tokens *Tokens) error {
	candidates := append([]string{arg.name}, arg.aliases...)
	for _, candidate := range candidates {
		for idx := tokens.Find(candidate); idx >= 0; idx = tokens.Find(candidate) {
			if arg.passed {
				return usageErrorf("Argument %s is passed more than once. Please make sure your command does not contain any typos.",
					arg.name)
			}
			arg.passed = true
			arg.index = idx
			tokens.Consume(idx)
			log.Debugf("matched argument %s as %q at token index %d", arg.name, candidate, idx)
		}
	}
	return nil
}

// Launch activates the argument after matching, depending on its variant:
// value-bearing arguments consume their value token (or, when required but
// not passed, ask the user for the value), and global options register
// their call as handler.
func Launch(arg *Argument, inv *Invocation) error {
	switch v := arg.variant.(type) {
	case *FlagVariant:
		return nil
	case *ValueVariant:
		return launchValue(arg, v, inv)
	case *OptionVariant:
		arg.OnPassed(v.call)
		return nil
	}
	return configErrorf("Argument %s has an unknown variant %T.", arg.name, arg.variant)
}

func launchValue(arg *Argument, v *ValueVariant, inv *Invocation) error {
	if v.required && !arg.passed {
		inv.Out.Errorf("Argument %s is required but not specified!", arg.name)
		if arg.description != "" {
			inv.Out.Comment(arg.description)
		}
		if inv.Prompter == nil {
			return usageErrorf("No value specified for argument %s", arg.name)
		}
		value, err := inv.Prompter.Prompt("<comment>Please specify the value...</comment>", v.secret)
		if err != nil {
			log.Debugf("prompting for %s failed: %s", arg.name, err)
			return usageErrorf("No value specified for argument %s", arg.name)
		}
		if err := v.set(arg, value); err != nil {
			return err
		}
		arg.passed = true
		return nil
	}
	if !arg.passed {
		return nil
	}
	value, ok := inv.Tokens.Consume(arg.index + 1)
	if !ok {
		return usageErrorf("No value specified for argument %s", arg.name)
	}
	return v.set(arg, value)
}

// set stores the raw value, converting it when a typed receiver is bound.
func (v *ValueVariant) set(arg *Argument, value string) error {
	v.value = value
	if v.bound == nil {
		return nil
	}
	if err := v.bound.Set(value); err != nil {
		return usageErrorf("Invalid value %q for argument %s: %s", value, arg.name, err)
	}
	return nil
}

// MatchAll matches all arguments of the registry against the invocation's
// tokens, and only then launches them in processing order.
func MatchAll(reg *Registry, inv *Invocation) error {
	args := reg.Arguments()
	for _, arg := range args {
		if err := Match(arg, inv.Tokens); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := Launch(arg, inv); err != nil {
			return err
		}
	}
	return nil
}
