// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package scan

import "unicode/utf8"

// cursor - walks argv one element at a time and tracks the position inside
// the current element so bundled short options can be read one by one.
type cursor struct {
	data []string
	idx  int // index of the current element
	pos  int // byte offset inside the current element, 0 when not inside one
}

// newCursor - builds a cursor positioned after the program name.
func newCursor(data []string) *cursor {
	return &cursor{data: data, idx: 1}
}

// Index - return current index.
func (a *cursor) Index() int {
	if a.idx > len(a.data) {
		return len(a.data)
	}
	return a.idx
}

// Done - tells if every element has been read.
func (a *cursor) Done() bool {
	return a.idx >= len(a.data)
}

// Value - returns value at current index or an empty string if you are trying to read the value after having fully read the list.
func (a *cursor) Value() string {
	if a.Done() {
		return ""
	}
	return a.data[a.idx]
}

// Inside - tells if the cursor is positioned inside an element.
func (a *cursor) Inside() bool {
	return a.pos > 0
}

// Enter - positions the cursor inside the current element at the given offset.
func (a *cursor) Enter(pos int) {
	a.pos = pos
}

// Char - returns the byte under the cursor and moves past it.
// When the element is exhausted the cursor moves to the next element.
func (a *cursor) Char() byte {
	v := a.data[a.idx]
	c := v[a.pos]
	a.pos++
	if a.pos >= len(v) {
		a.Next()
	}
	return c
}

// Peek - returns the byte under the cursor without moving.
func (a *cursor) Peek() byte {
	return a.data[a.idx][a.pos]
}

// Rune - returns the UTF-8 character under the cursor and moves past all of its bytes.
func (a *cursor) Rune() rune {
	v := a.data[a.idx]
	r, size := utf8.DecodeRuneInString(v[a.pos:])
	a.pos += size
	if a.pos >= len(v) {
		a.Next()
	}
	return r
}

// Rest - returns the unread part of the current element and moves to the next element.
func (a *cursor) Rest() string {
	v := a.data[a.idx][a.pos:]
	a.Next()
	return v
}

// Next - moves to the start of the next element.
func (a *cursor) Next() {
	if a.idx < len(a.data) {
		a.idx++
	}
	a.pos = 0
}
