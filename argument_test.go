// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("arguments", func() {

	It("normalizes names and aliases", func() {
		a := NewFlag("debug", "", "d")
		Expect(a.Err()).NotTo(HaveOccurred())
		Expect(a.Name()).To(Equal("--debug"))
		Expect(a.Aliases()).To(ConsistOf("-d"))

		a = NewFlag("--debug", "", "-d")
		Expect(a.Name()).To(Equal("--debug"))
		Expect(a.Aliases()).To(ConsistOf("-d"))
		Expect(a.Scope()).To(Equal(Scope(0)))
		Expect(a.Index()).To(Equal(-1))
	})

	DescribeTable("rejects malformed definitions",
		func(a *Argument, msg string) {
			var cfgerr *ConfigError
			Expect(errors.As(a.Err(), &cfgerr)).To(BeTrue())
			Expect(a.Err().Error()).To(ContainSubstring(msg))
		},
		Entry("multi-character alias", NewFlag("foo", "", "ab"), "must match size of one character"),
		Entry("dash alias", NewFlag("foo", "", "-"), "must match size of one character"),
		Entry("double-dash alias", NewFlag("foo", "", "--"), "must match size of one character"),
		Entry("empty name", NewFlag("", ""), "Names must not be empty"),
		Entry("triple-dash name", NewFlag("---foo", ""), "Names must not be empty"),
		Entry("option without call", NewGlobalOption("foo", "", nil), "Missing call"),
		Entry("lazy flag", NewFlag("foo", "").Lazy(), "cannot be lazy"),
		Entry("immediate flag", NewFlag("foo", "").Immediate(), "cannot be immediate"),
		Entry("lazy immediate option", NewGlobalOption("foo", "", func(*Invocation) error { return nil }).Lazy().Immediate(), "both lazy and immediate"),
		Entry("required flag", NewFlag("foo", "").Required(), "cannot be required"),
		Entry("secret flag", NewFlag("foo", "").Secret(), "cannot be secret"),
		Entry("bound flag", NewFlag("foo", "").Bind(nil), "cannot be bound"),
	)

	It("keeps the first definition error", func() {
		a := NewFlag("foo", "", "xy").Lazy()
		Expect(a.Err()).To(MatchError(ContainSubstring("must match size")))
	})

	It("normalizes relation names", func() {
		a := NewFlag("debug", "").Excludes("quiet", "--silent").Requires("verbose")
		Expect(a.ExcludedNames()).To(Equal([]string{"--quiet", "--silent"}))
		Expect(a.RequiredNames()).To(Equal([]string{"--verbose"}))
	})

	It("reports variant properties", func() {
		call := func(*Invocation) error { return nil }
		Expect(NewGlobalOption("help", "", call).Lazy().IsLazy()).To(BeTrue())
		Expect(NewGlobalOption("debug", "", call).IsLazy()).To(BeFalse())
		Expect(NewGlobalOption("color-disable", "", call).Immediate().IsImmediate()).To(BeTrue())
		Expect(NewGlobalOption("debug", "", call).IsImmediate()).To(BeFalse())
		Expect(NewValue("test", "").Required().IsRequired()).To(BeTrue())
		Expect(NewFlag("test", "").IsRequired()).To(BeFalse())
		Expect(NewFlag("x", "").Variant()).To(BeAssignableToTypeOf(&FlagVariant{}))
		Expect(NewValue("x", "").Variant()).To(BeAssignableToTypeOf(&ValueVariant{}))
		Expect(NewGlobalOption("x", "", call).Variant()).To(BeAssignableToTypeOf(&OptionVariant{}))
		Expect(NewFlag("x", "").Value()).To(BeEmpty())
	})

	It("reports the requested order until registered", func() {
		a := NewFlag("x", "").WithOrder(7)
		Expect(a.Order()).To(Equal(7))
		reg := NewRegistry(CommandScope)
		Expect(reg.Register(NewFlag("y", "").WithOrder(7))).To(Succeed())
		Expect(reg.Register(a)).To(Succeed())
		Expect(a.Order()).To(Equal(8))
	})

	It("runs handlers in priority order", func() {
		var calls []string
		record := func(s string) Handler {
			return func(*Invocation) error {
				calls = append(calls, s)
				return nil
			}
		}
		a := NewFlag("x", "").
			OnPassed(record("first")).
			OnPassed(record("last"), 5).
			OnPassed(record("middle"), 2).
			OnPassed(record("conflicting"), 5)
		Expect(a.trigger(nil)).To(Succeed())
		Expect(calls).To(Equal([]string{"first", "middle", "last", "conflicting"}))
	})

	It("stops triggering at the first failing handler", func() {
		calls := 0
		boom := errors.New("boom")
		a := NewFlag("x", "").
			OnPassed(func(*Invocation) error { calls++; return boom }).
			OnPassed(func(*Invocation) error { calls++; return nil })
		Expect(a.trigger(nil)).To(MatchError(boom))
		Expect(calls).To(Equal(1))
	})

})
