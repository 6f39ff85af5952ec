package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tommy351/bytecursor-go/internal/convert"
)

type JSONPrinter struct {
	writer io.Writer
	index  int
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{
		writer: w,
	}
}

func (j *JSONPrinter) print(args ...interface{}) error {
	_, err := fmt.Fprint(j.writer, args...)
	return err
}

func (j *JSONPrinter) printValue(value interface{}) error {
	buf, err := json.Marshal(value)

	if err != nil {
		return err
	}

	return j.print(convert.BytesToString(buf))
}

func (j *JSONPrinter) Start() error {
	return j.print("[")
}

func (j *JSONPrinter) Result(result *Result) error {
	if j.index > 0 {
		if err := j.print(","); err != nil {
			return err
		}
	}

	j.index++

	return j.printValue(result)
}

func (j *JSONPrinter) End() error {
	return j.print("]")
}
