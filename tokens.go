// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Tokens is the raw token buffer of an invocation. Consuming a token leaves
// a hole instead of shifting the following tokens, so token indices stay
// stable: the token following a matched argument remains at the matched
// index plus one.
//
// Tokens is owned by a single invocation and mutated by one pipeline stage
// after the other; it must never be used concurrently.
type Tokens struct {
	slots []token
}

type token struct {
	text     string
	consumed bool
}

// NewTokens returns a token buffer for the specified process arguments,
// without the program name.
func NewTokens(args []string) *Tokens {
	t := &Tokens{slots: make([]token, 0, len(args))}
	t.Append(args...)
	return t
}

// Append appends tokens at the end of the buffer.
func (t *Tokens) Append(texts ...string) {
	for _, text := range texts {
		t.slots = append(t.slots, token{text: text})
	}
}

// Len returns the number of token slots, including consumed ones.
func (t *Tokens) Len() int {
	return len(t.slots)
}

// At returns the token at index idx and true, or false if there is no such
// index or the token has already been consumed.
func (t *Tokens) At(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.slots) || t.slots[idx].consumed {
		return "", false
	}
	return t.slots[idx].text, true
}

// Find returns the index of the first unconsumed token equal to text, or -1.
func (t *Tokens) Find(text string) int {
	for idx, tok := range t.slots {
		if !tok.consumed && tok.text == text {
			return idx
		}
	}
	return -1
}

// Consume removes the token at index idx from the pool, returning it. It
// returns false if there is no such token or it already has been consumed.
func (t *Tokens) Consume(idx int) (string, bool) {
	text, ok := t.At(idx)
	if !ok {
		return "", false
	}
	t.slots[idx].consumed = true
	return text, true
}

// Shift consumes and returns the first unconsumed token.
func (t *Tokens) Shift() (string, bool) {
	for idx := range t.slots {
		if !t.slots[idx].consumed {
			return t.Consume(idx)
		}
	}
	return "", false
}

// Remaining returns the unconsumed tokens in buffer order.
func (t *Tokens) Remaining() []string {
	remaining := []string{}
	for _, tok := range t.slots {
		if !tok.consumed {
			remaining = append(remaining, tok.text)
		}
	}
	return remaining
}

// Empty returns true if all tokens have been consumed.
func (t *Tokens) Empty() bool {
	for _, tok := range t.slots {
		if !tok.consumed {
			return false
		}
	}
	return true
}

// IsName returns true if tok has the shape of a canonical argument name:
// two dashes followed by at least one more character.
func IsName(tok string) bool {
	return strings.HasPrefix(tok, NamePrefix) && len(tok) > len(NamePrefix)
}

// IsAlias returns true if tok is a single alias: one dash followed by
// exactly one character other than a dash.
func IsAlias(tok string) bool {
	runes := []rune(tok)
	return len(runes) == 2 && runes[0] == '-' && runes[1] != '-'
}

// IsCombinedAlias returns true if tok bundles multiple aliases: one dash
// followed by two or more characters, the first of which isn't a dash.
func IsCombinedAlias(tok string) bool {
	runes := []rune(tok)
	return len(runes) > 2 && runes[0] == '-' && runes[1] != '-'
}

// SplitAliases rewrites each combined alias token, such as “-dh”, into
// separate alias tokens “-d” and “-h”. The original token is consumed and the
// split tokens are appended at the end of the buffer, so the position of
// split aliases doesn't reflect their original position. SplitAliases
// returns the number of combined aliases split.
func SplitAliases(t *Tokens) int {
	// Collect first, then edit, so the scan never sees its own edits.
	var combined []int
	for idx := range t.slots {
		if tok, ok := t.At(idx); ok && IsCombinedAlias(tok) {
			combined = append(combined, idx)
		}
	}
	for _, idx := range combined {
		tok, _ := t.Consume(idx)
		for _, r := range []rune(tok)[1:] {
			t.Append(AliasPrefix + string(r))
		}
		log.Debugf("split combined alias %q", tok)
	}
	return len(combined)
}
