package convert

import (
	"fmt"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

type Error struct {
	Value interface{}
	Type  string
}

func (c Error) Error() string {
	return fmt.Sprintf("unable to convert value %v to %s", c.Value, c.Type)
}

// Byte parses a command line spelling of a single byte. It accepts a
// literal character ("l"), a Go escape sequence ("\n", "\x6c"), a hex
// number ("0x6c") or a decimal number ("108"). A single character wins
// over the numeric forms, so "8" is the character '8', not the value 8.
func Byte(s string) (byte, error) {
	if s == "" {
		return 0, Error{Value: s, Type: "byte"}
	}

	if s[0] == '\\' {
		r, _, tail, err := strconv.UnquoteChar(s, 0)

		if err != nil || tail != "" || r > 0xff {
			return 0, Error{Value: s, Type: "byte"}
		}

		return byte(r), nil
	}

	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 8)

		if err != nil {
			return 0, Error{Value: s, Type: "byte"}
		}

		return byte(v), nil
	}

	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError && r <= 0xff {
		return byte(r), nil
	}

	v, err := strconv.ParseUint(s, 10, 8)

	if err != nil {
		return 0, Error{Value: s, Type: "byte"}
	}

	return byte(v), nil
}

func BytesToString(buf []byte) string {
	// From strings.Builder.String()
	return *(*string)(unsafe.Pointer(&buf))
}
