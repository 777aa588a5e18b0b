// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

// Validate checks the excludes and requires relations of the passed
// arguments in reg: excludes first, then requires, in processing order.
// Names are resolved in reg first and then in other, which is the registry of
// the other scope and may be nil. Names that cannot be resolved are
// configuration errors.
func Validate(reg *Registry, other *Registry) error {
	resolve := func(name string) *Argument {
		if arg := reg.Lookup(name); arg != nil {
			return arg
		}
		if other != nil {
			return other.Lookup(name)
		}
		return nil
	}
	for _, arg := range reg.Passed() {
		for _, name := range arg.excludes {
			excluded := resolve(name)
			if excluded == nil {
				return configErrorf("Exclude %s for %s is not a valid argument.", name, arg.name)
			}
			if excluded.passed {
				return usageErrorf("Cannot set both %s and %s, they exclude each other.", arg.name, excluded.name)
			}
		}
		for _, name := range arg.requires {
			required := resolve(name)
			if required == nil {
				return configErrorf("Require %s for %s is not a valid argument.", name, arg.name)
			}
			if !required.passed {
				return usageErrorf("Argument %s requires argument %s to be passed.", arg.name, required.name)
			}
		}
	}
	return nil
}
