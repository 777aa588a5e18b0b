// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"bytes"
	"errors"

	"github.com/siemens/consolekit/output"
)

// cannedPrompter answers every prompt with the same answer, or fails when
// there is none.
type cannedPrompter struct {
	answer  string
	labels  []string
	secrets []bool
}

func (p *cannedPrompter) Prompt(label string, secret bool) (string, error) {
	p.labels = append(p.labels, label)
	p.secrets = append(p.secrets, secret)
	if p.answer == "" {
		return "", errors.New("no answer")
	}
	return p.answer, nil
}

// newTestInvocation returns an invocation for the specified tokens, writing
// uncolored output into the returned buffer.
func newTestInvocation(args ...string) (*Invocation, *bytes.Buffer, *cannedPrompter) {
	buf := &bytes.Buffer{}
	inv := NewInvocation(args, nil)
	inv.DisableColor()
	inv.Out = output.New(buf, inv)
	prompter := &cannedPrompter{}
	inv.Prompter = prompter
	return inv, buf, prompter
}
