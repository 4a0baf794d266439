package lsp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/lsp"
	"github.com/lintkit/rufflink/internal/ruff"
)

const testURI = protocol.DocumentUri("file:///work/main.py")

var _ = Describe("Aggregator", func() {
	var (
		aggregator lsp.Aggregator
		builder    *lsp.Builder
	)

	BeforeEach(func() {
		aggregator = lsp.Aggregator{}
		builder = newTestBuilder()
	})

	Context("with no diagnostics", func() {
		It("should return an empty list", func() {
			Expect(aggregator.Aggregate(testURI, nil)).To(BeEmpty())
		})
	})

	Context("with diagnostics lacking actions", func() {
		It("should skip them without error", func() {
			diags := []lsp.Diagnostic{
				builder.Build(ruff.RawDiagnostic{Code: "E501", Message: "Line too long"}),
				builder.Build(ruff.RawDiagnostic{Code: "E999", Message: "SyntaxError"}),
			}

			Expect(aggregator.Aggregate(testURI, diags)).To(BeEmpty())
		})
	})

	Context("with a two-edit fix", func() {
		It("should emit one quick fix containing both edits in order", func() {
			diag := builder.Build(ruff.RawDiagnostic{
				Code: "F401",
				Fix: &ruff.Fix{
					Edits: []ruff.Edit{
						{Content: "", Location: ruff.Location{Row: 1, Column: 1}, EndLocation: ruff.Location{Row: 2, Column: 1}},
						{Content: "pass", Location: ruff.Location{Row: 5, Column: 3}, EndLocation: ruff.Location{Row: 5, Column: 9}},
					},
					Message: "Remove unused import: os",
				},
			})

			actions := aggregator.Aggregate(testURI, []lsp.Diagnostic{diag})

			Expect(actions).To(HaveLen(1))

			action := actions[0]
			Expect(action.Title).To(Equal("Remove unused import: os"))
			Expect(*action.Kind).To(Equal(protocol.CodeActionKindQuickFix))
			Expect(action.Edit.Changes).To(HaveLen(1))

			edits := action.Edit.Changes[testURI]
			Expect(edits).To(HaveLen(2))
			Expect(edits[0].NewText).To(BeEmpty())
			Expect(edits[0].Range.Start).To(Equal(protocol.Position{Line: 0, Character: 0}))
			Expect(edits[0].Range.End).To(Equal(protocol.Position{Line: 1, Character: 0}))
			Expect(edits[1].NewText).To(Equal("pass"))
			Expect(edits[1].Range.Start).To(Equal(protocol.Position{Line: 4, Character: 2}))
		})
	})

	Context("with an import-sort code", func() {
		It("should emit an organize-imports action", func() {
			diag := builder.Build(ruff.RawDiagnostic{
				Code: "I001",
				Fix:  &ruff.Fix{Message: "Organize imports"},
			})

			actions := aggregator.Aggregate(testURI, []lsp.Diagnostic{diag})

			Expect(actions).To(HaveLen(1))
			Expect(*actions[0].Kind).To(Equal(protocol.CodeActionKindSourceOrganizeImports))
		})

		It("should not match near-miss codes", func() {
			for _, code := range []string{"I01", "I0011", "IN001", "i001", "F401"} {
				diag := builder.Build(ruff.RawDiagnostic{
					Code: code,
					Fix:  &ruff.Fix{Message: "fix"},
				})

				actions := aggregator.Aggregate(testURI, []lsp.Diagnostic{diag})

				Expect(actions).To(HaveLen(1))
				Expect(*actions[0].Kind).To(Equal(protocol.CodeActionKindQuickFix), "code %s", code)
			}
		})
	})

	Context("with several fixable diagnostics", func() {
		It("should preserve input order without deduplication", func() {
			first := builder.Build(ruff.RawDiagnostic{Code: "F401", Fix: &ruff.Fix{Message: "a"}})
			second := builder.Build(ruff.RawDiagnostic{Code: "F401", Fix: &ruff.Fix{Message: "b"}})
			third := builder.Build(ruff.RawDiagnostic{Code: "I001", Fix: &ruff.Fix{Message: "c"}})

			actions := aggregator.Aggregate(testURI, []lsp.Diagnostic{first, second, third})

			Expect(actions).To(HaveLen(3))
			Expect(actions[0].Title).To(Equal("a"))
			Expect(actions[1].Title).To(Equal("b"))
			Expect(actions[2].Title).To(Equal("c"))
		})
	})
})
