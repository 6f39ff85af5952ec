package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

type TextPrinter struct {
	writer     io.Writer
	totalCount int64
	totalSize  uint64
	files      int
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{
		writer: w,
	}
}

func (t *TextPrinter) Start() error {
	return nil
}

func (t *TextPrinter) Result(result *Result) error {
	t.totalCount += result.Count
	t.totalSize += uint64(result.Size)
	t.files++

	_, err := fmt.Fprintf(t.writer, "%s: %d\n", result.File, result.Count)
	return err
}

// End prints a summary line when more than one input was scanned.
func (t *TextPrinter) End() error {
	if t.files < 2 {
		return nil
	}

	_, err := fmt.Fprintf(t.writer, "total: %d matches in %s\n", t.totalCount, humanize.Bytes(t.totalSize))
	return err
}
