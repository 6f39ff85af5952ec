package main

import (
	"bytes"

	"github.com/davecgh/go-spew/spew"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tommy351/goldga"
)

var _ = Describe("TextPrinter", func() {
	matchGoldenFile := func() *goldga.Matcher {
		conf := spew.NewDefaultConfig()
		conf.DisablePointerAddresses = true
		conf.SortKeys = true
		conf.DisableCapacities = true

		matcher := goldga.Match()
		matcher.Serializer = &goldga.DumpSerializer{
			Config: conf,
		}

		return matcher
	}

	scanFixtures := func(target byte, paths ...string) *bytes.Buffer {
		var buf bytes.Buffer
		printer := NewTextPrinter(&buf)

		results, err := scanAll(paths, target)
		Expect(err).NotTo(HaveOccurred())
		Expect(printResults(printer, results)).To(Succeed())

		return &buf
	}

	It("should match the golden file", func() {
		buf := scanFixtures('l',
			"../../fixtures/hello_world.txt",
			"../../fixtures/pattern.bin",
		)

		Expect(buf.String()).To(matchGoldenFile())
	})

	When("a single file is scanned", func() {
		It("omits the summary line", func() {
			buf := scanFixtures('l', "../../fixtures/hello_world.txt")

			Expect(buf.String()).To(Equal("../../fixtures/hello_world.txt: 3\n"))
		})
	})
})
