// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

import (
	"golang.org/x/exp/slices"
)

// slots keeps values ordered by their integer slot keys. Values without an
// explicit slot get the slot after the highest slot in use, but never a
// negative one: negative slots are only ever claimed explicitly.
type slots[T any] struct {
	entries []slot[T]
}

type slot[T any] struct {
	key int
	val T
}

// next returns the slot for appending a value.
func (s *slots[T]) next() int {
	if len(s.entries) == 0 {
		return 0
	}
	if key := s.entries[len(s.entries)-1].key + 1; key > 0 {
		return key
	}
	return 0
}

// taken returns true if the slot key is in use.
func (s *slots[T]) taken(key int) bool {
	return slices.IndexFunc(s.entries, func(e slot[T]) bool { return e.key == key }) >= 0
}

// add puts the value into the requested slot, where a zero key asks for
// appending. If the requested slot is already taken, the value gets appended
// instead and add returns false. The slot used is returned in any case.
func (s *slots[T]) add(val T, key int) (int, bool) {
	ok := true
	if key != 0 && s.taken(key) {
		ok = false
		key = 0
	}
	if key == 0 {
		key = s.next()
	}
	pos := slices.IndexFunc(s.entries, func(e slot[T]) bool { return e.key > key })
	if pos < 0 {
		pos = len(s.entries)
	}
	s.entries = slices.Insert(s.entries, pos, slot[T]{key: key, val: val})
	return key, ok
}

// index returns the position of the first value satisfying f, or -1.
func (s *slots[T]) index(f func(T) bool) int {
	return slices.IndexFunc(s.entries, func(e slot[T]) bool { return f(e.val) })
}

// remove deletes the value at position pos.
func (s *slots[T]) remove(pos int) {
	s.entries = slices.Delete(s.entries, pos, pos+1)
}

// values returns the values in ascending slot order.
func (s *slots[T]) values() []T {
	vals := make([]T, 0, len(s.entries))
	for _, e := range s.entries {
		vals = append(vals, e.val)
	}
	return vals
}

func (s *slots[T]) len() int {
	return len(s.entries)
}
