// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Typed receivers for value-bearing arguments. Instead of reimplementing the
// conversions, we borrow the flag values of a throw-away pflag flag set.

package consolekit

import (
	"time"

	"github.com/spf13/pflag"
)

const receiverFlag = "value"

func receiver(define func(fs *pflag.FlagSet)) pflag.Value {
	fs := pflag.NewFlagSet("consolekit", pflag.ContinueOnError)
	define(fs)
	return fs.Lookup(receiverFlag).Value
}

// StringValue returns a receiver storing the value in p.
func StringValue(p *string) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.StringVar(p, receiverFlag, *p, "") })
}

// IntValue returns a receiver converting the value into an int stored in p.
func IntValue(p *int) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.IntVar(p, receiverFlag, *p, "") })
}

// Float64Value returns a receiver converting the value into a float64 stored
// in p.
func Float64Value(p *float64) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.Float64Var(p, receiverFlag, *p, "") })
}

// BoolValue returns a receiver converting the value into a bool stored in p.
func BoolValue(p *bool) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.BoolVar(p, receiverFlag, *p, "") })
}

// DurationValue returns a receiver converting the value, such as “1m30s”,
// into a duration stored in p.
func DurationValue(p *time.Duration) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.DurationVar(p, receiverFlag, *p, "") })
}

// StringSliceValue returns a receiver splitting the comma-separated value
// into the string slice p.
func StringSliceValue(p *[]string) pflag.Value {
	return receiver(func(fs *pflag.FlagSet) { fs.StringSliceVar(p, receiverFlag, *p, "") })
}
