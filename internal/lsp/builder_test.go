package lsp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/lsp"
	"github.com/lintkit/rufflink/internal/ruff"
)

func newTestBuilder() *lsp.Builder {
	classifier, err := lsp.NewClassifier([]string{"E999"}, []string{"F401"})
	Expect(err).NotTo(HaveOccurred())

	return lsp.NewBuilder(classifier)
}

var _ = Describe("Builder", func() {
	var builder *lsp.Builder

	BeforeEach(func() {
		builder = newTestBuilder()
	})

	Describe("Build", func() {
		It("should remap positions and tag the rule code", func() {
			d := builder.Build(ruff.RawDiagnostic{
				Code:        "E501",
				Location:    ruff.Location{Row: 3, Column: 89},
				EndLocation: ruff.Location{Row: 3, Column: 120},
				Message:     "Line too long",
			})

			Expect(d.Code).To(Equal("E501"))
			Expect(d.Category).To(Equal(lsp.CategoryWarning))
			Expect(d.Message).To(Equal("Line too long"))
			Expect(d.Range.Start).To(Equal(protocol.Position{Line: 2, Character: 88}))
			Expect(d.Range.End).To(Equal(protocol.Position{Line: 2, Character: 119}))
			Expect(d.Action).To(BeNil())
		})

		It("should attach exactly one action when a fix is present", func() {
			fix := &ruff.Fix{
				Applicability: ruff.ApplicabilitySuggested,
				Edits: []ruff.Edit{
					{Content: "", Location: ruff.Location{Row: 1, Column: 1}, EndLocation: ruff.Location{Row: 2, Column: 1}},
					{Content: "\n", Location: ruff.Location{Row: 4, Column: 1}, EndLocation: ruff.Location{Row: 4, Column: 1}},
				},
				Message: "Remove unused import: os",
			}

			d := builder.Build(ruff.RawDiagnostic{
				Code:        "F401",
				Location:    ruff.Location{Row: 1, Column: 8},
				EndLocation: ruff.Location{Row: 1, Column: 10},
				Fix:         fix,
				Message:     "os imported but unused",
			})

			Expect(d.Category).To(Equal(lsp.CategoryUnusedCode))
			Expect(d.Action).NotTo(BeNil())
			Expect(d.Action.Source).To(Equal(lsp.Source))
			Expect(d.Action.Code).To(Equal("F401"))
			Expect(d.Action.Title).To(Equal("Remove unused import: os"))
			Expect(d.Action.Fix.Edits).To(HaveLen(2))
		})
	})
})

var _ = Describe("Diagnostic.Protocol", func() {
	builderFor := func(raw ruff.RawDiagnostic) protocol.Diagnostic {
		return newTestBuilder().Build(raw).Protocol()
	}

	It("should render errors at error severity", func() {
		pd := builderFor(ruff.RawDiagnostic{Code: "E999", Message: "SyntaxError"})

		Expect(*pd.Severity).To(Equal(protocol.DiagnosticSeverityError))
		Expect(pd.Tags).To(BeEmpty())
	})

	It("should render unused code as warning with the unnecessary tag", func() {
		pd := builderFor(ruff.RawDiagnostic{Code: "F401"})

		Expect(*pd.Severity).To(Equal(protocol.DiagnosticSeverityWarning))
		Expect(pd.Tags).To(ConsistOf(protocol.DiagnosticTagUnnecessary))
	})

	It("should carry the code, source and documentation link", func() {
		pd := builderFor(ruff.RawDiagnostic{
			Code: "E501",
			URL:  "https://docs.astral.sh/ruff/rules/line-too-long",
		})

		Expect(*pd.Source).To(Equal(lsp.Source))
		Expect(pd.Code.Value).To(Equal("E501"))
		Expect(pd.CodeDescription).NotTo(BeNil())
	})

	It("should omit code and link when absent", func() {
		pd := builderFor(ruff.RawDiagnostic{Message: "bare"})

		Expect(pd.Code).To(BeNil())
		Expect(pd.CodeDescription).To(BeNil())
	})
})
