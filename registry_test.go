// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func names(args []*Argument) []string {
	n := make([]string, 0, len(args))
	for _, arg := range args {
		n = append(n, arg.Name())
	}
	return n
}

var _ = Describe("argument registry", func() {

	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry(GlobalScope)
	})

	It("appends in registration order", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("b", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("c", ""))).To(Succeed())
		Expect(names(reg.Arguments())).To(Equal([]string{"--a", "--b", "--c"}))
		Expect(reg.Len()).To(Equal(3))
		Expect(reg.Scope()).To(Equal(GlobalScope))
		Expect(reg.Lookup("a").Scope()).To(Equal(GlobalScope))
	})

	It("places arguments at their explicit slots", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("b", "").WithOrder(10))).To(Succeed())
		Expect(reg.Register(NewFlag("c", ""), 5)).To(Succeed())
		Expect(reg.Register(NewFlag("d", ""))).To(Succeed())
		Expect(names(reg.Arguments())).To(Equal([]string{"--a", "--c", "--b", "--d"}))
		Expect(reg.Lookup("d").Order()).To(Equal(11))
	})

	It("keeps the argument's own order when registered at order zero", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("b", "").WithOrder(7), 0)).To(Succeed())
		Expect(reg.Lookup("b").Order()).To(Equal(7))
		Expect(reg.Conflicts()).To(BeEmpty())
	})

	It("never appends into negative slots", func() {
		Expect(reg.Register(NewFlag("color-disable", ""), OrderColorDisable)).To(Succeed())
		Expect(reg.Register(NewFlag("help", ""), OrderHelp)).To(Succeed())
		Expect(reg.Register(NewFlag("debug", ""))).To(Succeed())
		Expect(reg.Lookup("debug").Order()).To(Equal(0))
		Expect(names(reg.Arguments())).To(Equal([]string{"--color-disable", "--help", "--debug"}))
	})

	It("appends on order conflicts and records them", func() {
		Expect(reg.Register(NewFlag("a", ""), 3)).To(Succeed())
		Expect(reg.Register(NewFlag("b", ""), 3)).To(Succeed())
		Expect(reg.Lookup("b").Order()).To(Equal(4))
		Expect(reg.Conflicts()).To(HaveLen(1))
		var conflict *OrderConflictError
		Expect(errors.As(reg.Conflicts()[0], &conflict)).To(BeTrue())
		Expect(conflict.Name).To(Equal("--b"))
		Expect(conflict.Order).To(Equal(3))
		Expect(conflict.Error()).To(ContainSubstring("The given order has already been set."))
	})

	It("rejects duplicate names", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		err := reg.Register(NewFlag("--a", ""))
		Expect(err).To(MatchError("Argument --a has already been defined."))
		Expect(reg.Len()).To(Equal(1))
	})

	It("rejects colliding aliases", func() {
		Expect(reg.Register(NewFlag("debug", "", "d"))).To(Succeed())
		err := reg.Register(NewFlag("dry-run", "", "d"))
		var cfgerr *ConfigError
		Expect(errors.As(err, &cfgerr)).To(BeTrue())
		Expect(reg.IndexOf("dry-run")).To(Equal(-1))
	})

	It("detects names and aliases claimed by another registry", func() {
		Expect(reg.Register(NewFlag("debug", "", "d"))).To(Succeed())
		cmdreg := NewRegistry(CommandScope)
		Expect(cmdreg.Register(NewFlag("dry-run", "", "n"))).To(Succeed())
		Expect(cmdreg.CheckCollisions(reg)).To(Succeed())

		Expect(cmdreg.Register(NewFlag("dump", "", "d"))).To(Succeed())
		err := cmdreg.CheckCollisions(reg)
		var cfgerr *ConfigError
		Expect(errors.As(err, &cfgerr)).To(BeTrue())
		Expect(err).To(MatchError("-d of command argument --dump collides with global argument --debug."))

		other := NewRegistry(CommandScope)
		Expect(other.Register(NewValue("debug", ""))).To(Succeed())
		Expect(other.CheckCollisions(reg)).To(MatchError(ContainSubstring("--debug of command argument --debug collides")))
	})

	It("rejects malformed and already registered arguments", func() {
		Expect(reg.Register(nil)).To(HaveOccurred())
		Expect(reg.Register(NewFlag("x", "", "xy"))).To(MatchError(ContainSubstring("must match size")))
		a := NewFlag("a", "")
		Expect(reg.Register(a)).To(Succeed())
		Expect(NewRegistry(CommandScope).Register(a)).To(MatchError(ContainSubstring("already been registered")))
	})

	It("refuses global options in command scope", func() {
		cmdreg := NewRegistry(CommandScope)
		opt := NewGlobalOption("debug", "", func(*Invocation) error { return nil })
		Expect(cmdreg.Register(opt)).To(MatchError(ContainSubstring("cannot be registered as a command argument")))
	})

	It("finds arguments by name", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("b", "", "x"))).To(Succeed())
		Expect(reg.IndexOf("b")).To(Equal(1))
		Expect(reg.IndexOf("--b")).To(Equal(1))
		Expect(reg.IndexOf("-x")).To(Equal(-1))
		Expect(reg.IndexOf("c")).To(Equal(-1))
		Expect(reg.Lookup("c")).To(BeNil())
	})

	It("removes arguments", func() {
		a := NewFlag("a", "")
		Expect(reg.Register(a)).To(Succeed())
		Expect(reg.Register(NewFlag("b", ""))).To(Succeed())
		Expect(reg.Remove("a")).To(Succeed())
		Expect(names(reg.Arguments())).To(Equal([]string{"--b"}))
		Expect(a.Scope()).To(Equal(Scope(0)))
		Expect(reg.Remove("--a")).To(MatchError(ErrArgumentNotFound))
		Expect(reg.Register(a)).To(Succeed())
		Expect(names(reg.Arguments())).To(Equal([]string{"--b", "--a"}))
	})

	It("lists passed arguments only", func() {
		Expect(reg.Register(NewFlag("a", ""))).To(Succeed())
		Expect(reg.Register(NewFlag("b", ""))).To(Succeed())
		Expect(reg.Passed()).To(BeEmpty())
		reg.Lookup("b").passed = true
		Expect(names(reg.Passed())).To(Equal([]string{"--b"}))
	})

})
