//nolint:gosec
package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
)

const fixtureDir = "fixtures"

const lipsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.\n"

func main() {
	if err := os.MkdirAll(fixtureDir, os.ModePerm); err != nil {
		panic(err)
	}

	writeFixture("hello_world.txt", []byte("hello world"))
	writeFixture("empty.bin", nil)
	writeFixture("lipsum.txt", []byte(lipsum))
	writeFixture("pattern.bin", pattern(4096))
}

// pattern fills n bytes with a cycle of period 251, a prime, so every
// buffer position maps to a predictable value and most byte values occur.
func pattern(n int) []byte {
	buf := make([]byte, n)

	for i := range buf {
		buf[i] = byte(i % 251)
	}

	return buf
}

func writeFixture(name string, data []byte) {
	dst := filepath.Join(fixtureDir, name)

	log.Printf("Writing fixture to %s\n", dst)

	if err := ioutil.WriteFile(dst, data, 0644); err != nil {
		panic(err)
	}
}
