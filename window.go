package bytecursor

import (
	"bytes"
	"io"
	"io/ioutil"
)

const (
	maxWindowSize = 4096
	minReadSize   = 512
)

// Window adapts an io.Reader to the BytesReader interface by buffering a
// sliding window of the stream. Views returned by ReadBytes alias the
// window and are only valid until the next call. Errors from the stream
// pass through unchanged: a read past the end fails with io.EOF when
// nothing was buffered or io.ErrUnexpectedEOF when the stream ends partway
// through a read.
type Window struct {
	r      io.Reader
	offset int
	length int
	buf    []byte
}

var (
	_ io.ByteReader = (*Window)(nil)
	_ BytesReader   = (*Window)(nil)
)

// NewWindow returns a Window reading from r. The window buffer is
// allocated lazily on the first read.
func NewWindow(r io.Reader) *Window {
	return &Window{
		r: r,
	}
}

func (w *Window) ReadByte() (byte, error) {
	buf, err := w.ReadBytes(1)

	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

// ReadBytes returns the next n bytes of the stream. Reads up to
// maxWindowSize are served from the window; larger reads bypass it and
// return a dedicated buffer.
func (w *Window) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, OutOfBoundsError{Requested: n, Remaining: w.remaining()}
	}

	if n > maxWindowSize {
		return w.readIntoNewBuffer(n)
	}

	if w.remaining() < n {
		if err := w.fill(n); err != nil {
			return nil, err
		}
	}

	offset := w.offset
	w.offset += n

	return w.buf[offset : offset+n], nil
}

// SkipBytes discards the next n bytes. Bytes beyond the window are drained
// from the stream without being buffered.
func (w *Window) SkipBytes(n int) error {
	remaining := w.remaining()

	if n < 0 {
		return OutOfBoundsError{Requested: n, Remaining: remaining}
	}

	if n <= remaining {
		w.offset += n
		return nil
	}

	w.offset = 0
	w.length = 0

	written, err := io.CopyN(ioutil.Discard, w.r, int64(n-remaining))

	if err == io.EOF && (remaining > 0 || written > 0) {
		err = io.ErrUnexpectedEOF
	}

	return err
}

// Count consumes the stream to its end and returns how many bytes equal
// target. Unlike Cursor.Count it can fail, since the stream can.
func (w *Window) Count(target byte) (int64, error) {
	var total int64

	for {
		if w.remaining() == 0 {
			err := w.fill(1)

			if err == io.EOF {
				return total, nil
			}

			if err != nil {
				return total, err
			}
		}

		total += int64(bytes.Count(w.buf[w.offset:w.length], []byte{target}))
		w.offset = w.length
	}
}

func (w *Window) remaining() int {
	return w.length - w.offset
}

func (w *Window) readIntoNewBuffer(n int) ([]byte, error) {
	// Allocate a new buffer for the result
	buf := make([]byte, n)

	// Copy the remaining data to the result
	copied := copy(buf, w.buf[w.offset:w.length])

	// Reset the length and the offset
	w.offset = 0
	w.length = 0

	// Read the data into the result
	if _, err := io.ReadFull(w.r, buf[copied:]); err != nil {
		return nil, err
	}

	return buf, nil
}

func (w *Window) fill(n int) error {
	remaining := w.remaining()
	minRead := n - remaining
	readSize := max(minRead, minReadSize)
	minCap := remaining + readSize

	// If the buffer capacity is not enough for reading
	if w.length+readSize > cap(w.buf) {
		if minCap <= cap(w.buf) {
			// Move the remaining data to the front if the buffer is enough
			copy(w.buf, w.buf[w.offset:w.length])
		} else {
			// Otherwise, allocate a bigger buffer
			bufSize := max(cap(w.buf), minReadSize)

			for bufSize < minCap && bufSize < maxWindowSize {
				bufSize *= 2
			}

			buf := make([]byte, bufSize)
			copy(buf, w.buf[w.offset:w.length])
			w.buf = buf
		}

		w.length -= w.offset
		w.offset = 0
	}

	// Read the buffer to its capacity
	read, err := io.ReadAtLeast(w.r, w.buf[w.length:], minRead)

	if err != nil {
		return err
	}

	w.length += read
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
