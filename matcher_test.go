// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("matching arguments", func() {

	It("matches names and aliases", func() {
		inv, _, _ := newTestInvocation("run-me", "--debug", "-q")
		debug := NewFlag("debug", "", "d")
		quiet := NewFlag("quiet", "", "q")
		Expect(Match(debug, inv.Tokens)).To(Succeed())
		Expect(Match(quiet, inv.Tokens)).To(Succeed())
		Expect(debug.Passed()).To(BeTrue())
		Expect(debug.Index()).To(Equal(1))
		Expect(quiet.Passed()).To(BeTrue())
		Expect(quiet.Index()).To(Equal(2))
		Expect(inv.Tokens.Remaining()).To(Equal([]string{"run-me"}))
	})

	It("round-trips a single alias", func() {
		inv, _, _ := newTestInvocation("-v")
		verbose := NewFlag("verbose", "", "v")
		Expect(MatchAll(registryOf(CommandScope, verbose), inv)).To(Succeed())
		Expect(verbose.Passed()).To(BeTrue())
		Expect(verbose.Value()).To(BeEmpty())
		Expect(inv.Tokens.Remaining()).To(BeEmpty())
	})

	It("leaves unpassed arguments alone", func() {
		inv, _, _ := newTestInvocation("run-me")
		debug := NewFlag("debug", "", "d")
		Expect(Match(debug, inv.Tokens)).To(Succeed())
		Expect(debug.Passed()).To(BeFalse())
		Expect(debug.Index()).To(Equal(-1))
	})

	DescribeTable("rejects arguments passed more than once",
		func(args ...string) {
			inv, _, _ := newTestInvocation(args...)
			err := Match(NewFlag("debug", "", "d"), inv.Tokens)
			var usage *UsageError
			Expect(errors.As(err, &usage)).To(BeTrue())
			Expect(err.Error()).To(Equal("Argument --debug is passed more than once. Please make sure your command does not contain any typos."))
		},
		Entry("name twice", "--debug", "--debug"),
		Entry("alias twice", "-d", "-d"),
		Entry("name and alias", "-d", "--debug"),
	)

	Context("launching value arguments", func() {

		It("consumes the following token", func() {
			inv, _, _ := newTestInvocation("run-me", "--test", "hello", "rest")
			test := NewValue("test", "", "t")
			Expect(MatchAll(registryOf(CommandScope, test), inv)).To(Succeed())
			Expect(test.Value()).To(Equal("hello"))
			Expect(inv.Tokens.Remaining()).To(Equal([]string{"run-me", "rest"}))
		})

		It("fails without a value", func() {
			inv, _, _ := newTestInvocation("--test")
			err := MatchAll(registryOf(CommandScope, NewValue("test", "")), inv)
			Expect(err).To(MatchError("No value specified for argument --test"))
		})

		It("does not take another argument as its value", func() {
			inv, _, _ := newTestInvocation("--test", "--other")
			err := MatchAll(registryOf(CommandScope, NewValue("test", ""), NewFlag("other", "")), inv)
			Expect(err).To(MatchError("No value specified for argument --test"))
		})

		It("converts bound values", func() {
			var count int
			inv, _, _ := newTestInvocation("-c", "42")
			Expect(MatchAll(registryOf(CommandScope,
				NewValue("count", "", "c").Bind(IntValue(&count))), inv)).To(Succeed())
			Expect(count).To(Equal(42))
		})

		It("rejects values failing conversion", func() {
			var count int
			inv, _, _ := newTestInvocation("-c", "many")
			err := MatchAll(registryOf(CommandScope,
				NewValue("count", "", "c").Bind(IntValue(&count))), inv)
			var usage *UsageError
			Expect(errors.As(err, &usage)).To(BeTrue())
			Expect(err.Error()).To(HavePrefix(`Invalid value "many" for argument --count`))
		})

		It("asks for required values not passed", func() {
			inv, buf, prompter := newTestInvocation()
			prompter.answer = "typed"
			test := NewValue("test", "Some test value.").Required().Secret()
			Expect(MatchAll(registryOf(CommandScope, test), inv)).To(Succeed())
			Expect(test.Passed()).To(BeTrue())
			Expect(test.Value()).To(Equal("typed"))
			Expect(buf.String()).To(ContainSubstring("Argument --test is required but not specified!"))
			Expect(buf.String()).To(ContainSubstring("Some test value."))
			Expect(prompter.labels).To(HaveLen(1))
			Expect(prompter.secrets).To(Equal([]bool{true}))
		})

		It("fails when asking for a required value fails", func() {
			inv, _, _ := newTestInvocation()
			err := MatchAll(registryOf(CommandScope, NewValue("test", "").Required()), inv)
			Expect(err).To(MatchError("No value specified for argument --test"))
		})

		It("doesn't ask for required values passed", func() {
			inv, _, prompter := newTestInvocation("--test", "x")
			Expect(MatchAll(registryOf(CommandScope, NewValue("test", "").Required()), inv)).To(Succeed())
			Expect(prompter.labels).To(BeEmpty())
		})

	})

	It("turns the call of global options into their handler", func() {
		inv, _, _ := newTestInvocation("--debug")
		called := false
		debug := NewGlobalOption("debug", "", func(*Invocation) error { called = true; return nil })
		Expect(MatchAll(registryOf(GlobalScope, debug), inv)).To(Succeed())
		Expect(called).To(BeFalse())
		Expect(debug.trigger(inv)).To(Succeed())
		Expect(called).To(BeTrue())
	})

})

// registryOf returns a registry of the specified scope with the arguments
// registered, failing the test on any registration error.
func registryOf(scope Scope, args ...*Argument) *Registry {
	reg := NewRegistry(scope)
	for _, arg := range args {
		ExpectWithOffset(1, reg.Register(arg)).To(Succeed())
	}
	return reg
}
