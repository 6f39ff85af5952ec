// Package bytecursor provides positional, bounds-checked, zero-copy reads
// over in-memory byte buffers.
package bytecursor

import (
	"bytes"
	"io"
)

// Cursor reads a byte slice from front to back, tracking the current
// position. It does not take ownership of the slice: the data is never
// copied or mutated, and views returned by ReadBytes and Peek share memory
// with it.
//
// A Cursor is not safe for concurrent use. Multiple readers of the same
// data should each wrap it in their own Cursor.
type Cursor struct {
	data   []byte
	offset int
}

var (
	_ io.Reader     = (*Cursor)(nil)
	_ io.ByteReader = (*Cursor)(nil)
	_ BytesReader   = (*Cursor)(nil)
)

// New returns a Cursor positioned at the start of data. Any slice is a
// valid input, including nil.
func New(data []byte) *Cursor {
	return &Cursor{
		data: data,
	}
}

// Len returns the total size of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Position returns the number of bytes consumed so far.
func (c *Cursor) Position() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// Reset points the cursor at a new buffer and rewinds the position to 0,
// allowing a Cursor to be reused without allocating.
func (c *Cursor) Reset(data []byte) {
	c.data = data
	c.offset = 0
}

// ReadByte returns the byte at the current position and advances past it.
// When no bytes remain it returns an OutOfBoundsError and the position is
// unchanged.
func (c *Cursor) ReadByte() (byte, error) {
	if c.offset >= len(c.data) {
		return 0, OutOfBoundsError{Requested: 1, Remaining: 0}
	}

	b := c.data[c.offset]
	c.offset++

	return b, nil
}

// ReadBytes returns the next n bytes as a view into the underlying buffer
// and advances past them. Nothing is copied: the view aliases the buffer
// and stays valid as long as the buffer does. Reading zero bytes succeeds
// with an empty view and no advance. When fewer than n bytes remain the
// cursor stays where it is and an OutOfBoundsError is returned.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	offset := c.offset

	if err := c.SkipBytes(n); err != nil {
		return nil, err
	}

	return c.data[offset : offset+n], nil
}

// Peek returns the next n bytes without advancing. Bounds are checked the
// same way as ReadBytes.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if remaining := c.Remaining(); n < 0 || n > remaining {
		return nil, OutOfBoundsError{Requested: n, Remaining: remaining}
	}

	return c.data[c.offset : c.offset+n], nil
}

// SkipBytes advances past the next n bytes without returning them.
func (c *Cursor) SkipBytes(n int) error {
	if remaining := c.Remaining(); n < 0 || n > remaining {
		return OutOfBoundsError{Requested: n, Remaining: remaining}
	}

	c.offset += n

	return nil
}

// Read copies up to len(p) unread bytes into p, implementing io.Reader.
// Unlike the other read methods it reports exhaustion as io.EOF, which the
// io.Reader contract requires.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.offset >= len(c.data) && len(p) > 0 {
		return 0, io.EOF
	}

	n := copy(p, c.data[c.offset:])
	c.offset += n

	return n, nil
}

// Count consumes every remaining byte and returns how many of them equal
// target. The comparison is exact byte equality; no case folding, no
// encoding awareness. The cursor is exhausted afterwards. Count cannot
// fail: it only ever touches bytes known to remain.
func (c *Cursor) Count(target byte) int {
	n := bytes.Count(c.data[c.offset:], []byte{target})
	c.offset = len(c.data)

	return n
}
