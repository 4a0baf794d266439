package ruff_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lintkit/rufflink/internal/ruff"
)

var _ = Describe("ParseDiagnostics", func() {
	Context("with an empty output", func() {
		It("should return no diagnostics", func() {
			diags, err := ruff.ParseDiagnostics("")

			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
		})
	})

	Context("with an empty JSON array", func() {
		It("should return no diagnostics", func() {
			diags, err := ruff.ParseDiagnostics("[]")

			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
		})
	})

	Context("with a finding carrying a fix", func() {
		It("should decode the full wire schema", func() {
			output := `[{
				"code": "F401",
				"location": {"row": 1, "column": 8},
				"end_location": {"row": 1, "column": 10},
				"filename": "main.py",
				"fix": {
					"applicability": "automatic",
					"edits": [
						{"content": "", "location": {"row": 1, "column": 1}, "end_location": {"row": 2, "column": 1}}
					],
					"message": "Remove unused import: os"
				},
				"message": "os imported but unused",
				"noqa_row": 1,
				"url": "https://docs.astral.sh/ruff/rules/unused-import"
			}]`

			diags, err := ruff.ParseDiagnostics(output)

			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(HaveLen(1))

			d := diags[0]
			Expect(d.Code).To(Equal("F401"))
			Expect(d.Location).To(Equal(ruff.Location{Row: 1, Column: 8}))
			Expect(d.EndLocation).To(Equal(ruff.Location{Row: 1, Column: 10}))
			Expect(d.NoqaRow).To(Equal(1))
			Expect(d.URL).NotTo(BeEmpty())
			Expect(d.Fix).NotTo(BeNil())
			Expect(d.Fix.Applicability).To(Equal(ruff.ApplicabilityAutomatic))
			Expect(d.Fix.Edits).To(HaveLen(1))
			Expect(d.Fix.Message).To(Equal("Remove unused import: os"))
		})
	})

	Context("with a finding without a fix", func() {
		It("should leave Fix nil", func() {
			output := `[{
				"code": "E501",
				"location": {"row": 3, "column": 89},
				"end_location": {"row": 3, "column": 120},
				"filename": "main.py",
				"fix": null,
				"message": "Line too long",
				"noqa_row": 3,
				"url": ""
			}]`

			diags, err := ruff.ParseDiagnostics(output)

			Expect(err).NotTo(HaveOccurred())
			Expect(diags[0].Fix).To(BeNil())
		})
	})

	Context("with malformed output", func() {
		It("should fail with ErrMalformedOutput", func() {
			_, err := ruff.ParseDiagnostics("ruff crashed here")

			Expect(err).To(MatchError(ruff.ErrMalformedOutput))
		})
	})
})
