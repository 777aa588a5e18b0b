// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/siemens/consolekit/output"
	"golang.org/x/term"
)

// Prompter asks the user for a single line of input.
type Prompter interface {
	Prompt(label string, secret bool) (string, error)
}

// LabeledPrompt shows its label on the output and then reads a line from its
// input. Secret input is read without echo when the input is a terminal.
type LabeledPrompt struct {
	in  io.Reader
	out *output.Output
	rd  *bufio.Reader
}

// NewLabeledPrompt returns a prompt reading from in and writing labels to
// out.
func NewLabeledPrompt(in io.Reader, out *output.Output) *LabeledPrompt {
	return &LabeledPrompt{
		in:  in,
		out: out,
		rd:  bufio.NewReader(in),
	}
}

// Prompt shows the label, which is always shown regardless of the verbosity,
// and returns the line read without its line ending.
func (p *LabeledPrompt) Prompt(label string, secret bool) (string, error) {
	p.out.Writeln(label, output.Quiet)
	if f, ok := p.in.(*os.File); ok && secret && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out.Writer())
		return string(b), err
	}
	line, err := p.rd.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
