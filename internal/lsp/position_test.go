package lsp

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/ruff"
)

var _ = Describe("position mapping", func() {
	DescribeTable("converts one-indexed locations to zero-indexed positions",
		func(row, col int, line, char uint32) {
			pos := position(ruff.Location{Row: row, Column: col})

			Expect(pos.Line).To(Equal(protocol.UInteger(line)))
			Expect(pos.Character).To(Equal(protocol.UInteger(char)))
		},
		Entry("origin", 1, 1, uint32(0), uint32(0)),
		Entry("mid-document", 42, 7, uint32(41), uint32(6)),
		Entry("row underflow clamps", 0, 5, uint32(0), uint32(4)),
		Entry("column underflow clamps", 5, 0, uint32(4), uint32(0)),
		Entry("both underflow clamp", 0, 0, uint32(0), uint32(0)),
	)

	Describe("rangeOf", func() {
		It("should convert endpoints independently without ordering checks", func() {
			// End before start passes through unchanged.
			r := rangeOf(ruff.Location{Row: 9, Column: 3}, ruff.Location{Row: 2, Column: 1})

			Expect(r.Start).To(Equal(protocol.Position{Line: 8, Character: 2}))
			Expect(r.End).To(Equal(protocol.Position{Line: 1, Character: 0}))
		})
	})

	Describe("fullDocumentRange", func() {
		It("should cover a trailing-newline buffer", func() {
			r := fullDocumentRange("a\nb\n")

			Expect(r.Start).To(Equal(protocol.Position{Line: 0, Character: 0}))
			Expect(r.End).To(Equal(protocol.Position{Line: 3, Character: 0}))
		})

		It("should cover a buffer without a trailing newline", func() {
			r := fullDocumentRange("a\nb")

			Expect(r.End).To(Equal(protocol.Position{Line: 2, Character: 0}))
		})

		It("should cover an empty buffer", func() {
			r := fullDocumentRange("")

			Expect(r.End.Line).To(BeNumerically(">", r.Start.Line))
		})
	})
})
