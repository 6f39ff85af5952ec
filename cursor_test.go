package bytecursor

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cursor", func() {
	It("reads a single byte and advances", func() {
		cursor := New([]byte{0x6c})

		b, err := cursor.ReadByte()
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(byte(0x6c)))
		Expect(cursor.Remaining()).To(BeZero())

		_, err = cursor.ReadByte()
		Expect(err).To(Equal(OutOfBoundsError{Requested: 1, Remaining: 0}))
	})

	It("reconstructs the buffer byte by byte", func() {
		buf := makeRandBuffer(100)
		cursor := New(buf)
		out := make([]byte, 0, len(buf))

		for {
			b, err := cursor.ReadByte()

			if err != nil {
				Expect(err).To(Equal(OutOfBoundsError{Requested: 1, Remaining: 0}))
				break
			}

			out = append(out, b)
		}

		Expect(out).To(Equal(buf))
		Expect(cursor.Remaining()).To(BeZero())
	})

	When("the buffer is empty", func() {
		It("has nothing to read", func() {
			cursor := New(nil)

			Expect(cursor.Len()).To(BeZero())
			Expect(cursor.Remaining()).To(BeZero())

			_, err := cursor.ReadByte()
			Expect(err).To(Equal(OutOfBoundsError{Requested: 1, Remaining: 0}))
		})

		It("counts zero matches for any target", func() {
			Expect(New(nil).Count('x')).To(BeZero())
			Expect(New([]byte{}).Count(0)).To(BeZero())
		})
	})

	Describe("ReadBytes", func() {
		It("returns a prefix view of the unread data", func() {
			buf := makeRandBuffer(64)

			for _, k := range []int{0, 1, 7, 63, 64} {
				cursor := New(buf)

				Expect(mustReadBytes(cursor.ReadBytes(k))).To(Equal(buf[:k]))
				Expect(cursor.Position()).To(Equal(k))
				Expect(cursor.Remaining()).To(Equal(len(buf) - k))
			}
		})

		It("returns views that alias the buffer", func() {
			buf := []byte("hello world")
			cursor := New(buf)

			view := mustReadBytes(cursor.ReadBytes(5))
			Expect(view).To(Equal([]byte("hello")))

			buf[0] = 'y'
			Expect(view[0]).To(Equal(byte('y')))
		})

		When("fewer bytes remain than requested", func() {
			It("fails without moving the position", func() {
				cursor := New([]byte{1, 2})

				actual, err := cursor.ReadBytes(3)
				Expect(actual).To(BeNil())
				Expect(err).To(Equal(OutOfBoundsError{Requested: 3, Remaining: 2}))
				Expect(cursor.Position()).To(BeZero())

				Expect(mustReadBytes(cursor.ReadBytes(2))).To(Equal([]byte{1, 2}))
			})
		})

		When("n is negative", func() {
			It("fails without moving the position", func() {
				cursor := New([]byte("abc"))

				_, err := cursor.ReadBytes(-1)
				Expect(err).To(Equal(OutOfBoundsError{Requested: -1, Remaining: 3}))
				Expect(cursor.Position()).To(BeZero())
			})
		})
	})

	Describe("Peek", func() {
		It("returns the next bytes without advancing", func() {
			cursor := New([]byte("hello"))

			Expect(mustReadBytes(cursor.Peek(2))).To(Equal([]byte("he")))
			Expect(cursor.Position()).To(BeZero())
			Expect(mustReadBytes(cursor.ReadBytes(2))).To(Equal([]byte("he")))
		})

		When("fewer bytes remain than requested", func() {
			It("fails", func() {
				cursor := New([]byte("hello"))

				_, err := cursor.Peek(6)
				Expect(err).To(Equal(OutOfBoundsError{Requested: 6, Remaining: 5}))
			})
		})
	})

	Describe("SkipBytes", func() {
		It("advances without returning data", func() {
			cursor := New([]byte("hello world"))

			Expect(cursor.SkipBytes(6)).To(Succeed())
			Expect(mustReadBytes(cursor.ReadBytes(5))).To(Equal([]byte("world")))
		})

		When("fewer bytes remain than requested", func() {
			It("fails without moving the position", func() {
				cursor := New([]byte("abc"))

				Expect(cursor.SkipBytes(4)).To(Equal(OutOfBoundsError{Requested: 4, Remaining: 3}))
				Expect(cursor.Position()).To(BeZero())
			})
		})
	})

	Describe("Read", func() {
		It("copies the unread data", func() {
			buf := makeRandBuffer(100)
			cursor := New(buf)

			var out bytes.Buffer
			n, err := io.Copy(&out, cursor)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(len(buf))))
			Expect(out.Bytes()).To(Equal(buf))
		})

		When("the cursor is exhausted", func() {
			It("returns io.EOF", func() {
				cursor := New([]byte("a"))
				Expect(cursor.SkipBytes(1)).To(Succeed())

				_, err := cursor.Read(make([]byte, 1))
				Expect(err).To(Equal(io.EOF))
			})
		})
	})

	Describe("Reset", func() {
		It("rewinds to a new buffer", func() {
			cursor := New([]byte("abc"))
			Expect(cursor.SkipBytes(2)).To(Succeed())

			cursor.Reset([]byte("xy"))
			Expect(cursor.Len()).To(Equal(2))
			Expect(cursor.Position()).To(BeZero())
			Expect(cursor.Count('x')).To(Equal(1))
		})
	})

	Describe("Count", func() {
		It("counts matching bytes in the rest of the buffer", func() {
			cursor := New([]byte("hello world"))

			Expect(cursor.Count('l')).To(Equal(3))
			Expect(cursor.Remaining()).To(BeZero())
		})

		It("counts only past the current position", func() {
			cursor := New([]byte("hello world"))

			Expect(cursor.SkipBytes(4)).To(Succeed())
			Expect(cursor.Count('l')).To(Equal(1))
		})

		It("counts zero once the cursor is exhausted", func() {
			cursor := New([]byte("hello world"))

			Expect(cursor.Count('l')).To(Equal(3))
			Expect(cursor.Count('l')).To(BeZero())
		})

		It("matches a reference count for every target", func() {
			buf := makeRandBuffer(1000)
			total := 0

			for t := 0; t < 256; t++ {
				expected := 0

				for _, b := range buf {
					if b == byte(t) {
						expected++
					}
				}

				Expect(New(buf).Count(byte(t))).To(Equal(expected))
				total += expected
			}

			Expect(total).To(Equal(len(buf)))
		})
	})
})

var _ = Describe("OutOfBoundsError", func() {
	It("describes the failed request", func() {
		err := OutOfBoundsError{Requested: 4, Remaining: 1}
		Expect(err).To(MatchError("out of bounds: requested 4 bytes with 1 remaining"))
	})
})
