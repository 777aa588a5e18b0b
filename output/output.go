// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

// Verbosity of a message or of the running invocation.
type Verbosity int

// Verbosity levels; a message is shown when the current verbosity is at least
// the message's level.
const (
	// Quiet messages are always shown, even when “--quiet” is active.
	Quiet Verbosity = iota + 1
	// Normal is the default level.
	Normal
	// Debug messages are only shown when “--debug” is active.
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("Verbosity(%d)", int(v))
}

// Settings supplies the current verbosity and color state to an Output.
type Settings interface {
	Verbosity() Verbosity
	ColorDisabled() bool
}

// Fixed are static Settings.
type Fixed struct {
	Level   Verbosity
	NoColor bool
}

// Verbosity returns the fixed verbosity level.
func (f Fixed) Verbosity() Verbosity { return f.Level }

// ColorDisabled returns true if colors are disabled.
func (f Fixed) ColorDisabled() bool { return f.NoColor }

// Output writes verbosity-gated messages with tag markup to a writer.
type Output struct {
	w        io.Writer
	settings Settings
	colors   map[string]*color.Color
}

// tagRegex matches opening and closing markup tags; only tags with a
// registered color are acted upon, all others are passed through literally.
var tagRegex = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9_-]*)>`)

// New returns an Output writing to w and consulting s for the current
// verbosity and color state. A nil s means normal verbosity with colors.
func New(w io.Writer, s Settings) *Output {
	if s == nil {
		s = Fixed{Level: Normal}
	}
	o := &Output{
		w:        w,
		settings: s,
		colors:   map[string]*color.Color{},
	}
	o.RegisterColor("error", color.FgRed)
	o.RegisterColor("info", color.FgGreen)
	o.RegisterColor("comment", color.FgWhite)
	o.RegisterColor("debug", color.FgCyan)
	return o
}

// RegisterColor registers (or overrides) the markup tag with the specified
// color attributes.
func (o *Output) RegisterColor(tag string, attrs ...color.Attribute) *Output {
	c := color.New(attrs...)
	// Whether to colorize is decided per message from the settings, so
	// ignore color's own terminal detection here.
	c.EnableColor()
	o.colors[tag] = c
	return o
}

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer {
	return o.w
}

// Allows returns true if a message at the specified verbosity level is to be
// shown.
func (o *Output) Allows(v Verbosity) bool {
	return o.settings.Verbosity() >= v
}

// Write writes the message without a trailing newline, if the verbosity
// allows.
func (o *Output) Write(message string, v Verbosity) *Output {
	if !o.Allows(v) {
		return o
	}
	fmt.Fprint(o.w, o.Render(message))
	return o
}

// Writeln writes the message with a trailing newline, if the verbosity
// allows.
func (o *Output) Writeln(message string, v Verbosity) *Output {
	if !o.Allows(v) {
		return o
	}
	fmt.Fprintln(o.w, o.Render(message))
	return o
}

// Error writes the message as an error; errors are always shown.
func (o *Output) Error(message string) *Output {
	return o.Writeln("<error>"+message+"</error>", Quiet)
}

// Errorf is Error with formatting.
func (o *Output) Errorf(format string, args ...interface{}) *Output {
	return o.Error(fmt.Sprintf(format, args...))
}

// Info writes the message as highlighted information.
func (o *Output) Info(message string) *Output {
	return o.Writeln("<info>"+message+"</info>", Normal)
}

// Comment writes the message as commentary.
func (o *Output) Comment(message string) *Output {
	return o.Writeln("<comment>"+message+"</comment>", Normal)
}

// Debug writes the message only at debug verbosity.
func (o *Output) Debug(message string) *Output {
	return o.Writeln("<debug>"+message+"</debug>", Debug)
}

// Nl writes a single empty line at normal verbosity.
func (o *Output) Nl() *Output {
	return o.Writeln("", Normal)
}

// Render replaces the registered markup tags in message either with their
// color escape sequences or, if colors are disabled, strips them.
func (o *Output) Render(message string) string {
	nocolor := o.settings.ColorDisabled()
	var b strings.Builder
	var stack []string
	last := 0
	for _, m := range tagRegex.FindAllStringSubmatchIndex(message, -1) {
		tag := message[m[2]:m[3]]
		if _, ok := o.colors[tag]; !ok {
			continue
		}
		o.emit(&b, message[last:m[0]], stack, nocolor)
		last = m[1]
		if message[m[0]+1] != '/' {
			stack = append(stack, tag)
			continue
		}
		if len(stack) == 0 {
			log.Warnf("closing tag </%s> without opening tag", tag)
			continue
		}
		if top := stack[len(stack)-1]; top != tag {
			log.Warnf("incorrect closing tag </%s> for previously opened <%s>", tag, top)
		}
		stack = stack[:len(stack)-1]
	}
	o.emit(&b, message[last:], stack, nocolor)
	return b.String()
}

// emit writes text in the color of the innermost open tag.
func (o *Output) emit(b *strings.Builder, text string, stack []string, nocolor bool) {
	if text == "" {
		return
	}
	if nocolor || len(stack) == 0 {
		b.WriteString(text)
		return
	}
	b.WriteString(o.colors[stack[len(stack)-1]].Sprint(text))
}
