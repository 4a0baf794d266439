package lsp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lintkit/rufflink/internal/lsp"
)

var _ = Describe("Classifier", func() {
	Describe("NewClassifier", func() {
		It("should reject overlapping sets", func() {
			_, err := lsp.NewClassifier([]string{"E999", "F401"}, []string{"F401"})

			Expect(err).To(MatchError(lsp.ErrOverlappingSets))
			Expect(err.Error()).To(ContainSubstring("F401"))
		})

		It("should accept empty sets", func() {
			c, err := lsp.NewClassifier(nil, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(c.Classify("E999")).To(Equal(lsp.CategoryWarning))
		})
	})

	Describe("Classify", func() {
		var classifier *lsp.Classifier

		BeforeEach(func() {
			var err error
			classifier, err = lsp.NewClassifier(
				[]string{"E999"},
				[]string{"F401", "F841"},
			)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should classify error-set members as errors", func() {
			Expect(classifier.Classify("E999")).To(Equal(lsp.CategoryError))
		})

		It("should classify unused-set members as unused code", func() {
			Expect(classifier.Classify("F401")).To(Equal(lsp.CategoryUnusedCode))
			Expect(classifier.Classify("F841")).To(Equal(lsp.CategoryUnusedCode))
		})

		It("should default everything else to warning", func() {
			Expect(classifier.Classify("E501")).To(Equal(lsp.CategoryWarning))
			Expect(classifier.Classify("I001")).To(Equal(lsp.CategoryWarning))
			Expect(classifier.Classify("")).To(Equal(lsp.CategoryWarning))
		})
	})
})

var _ = Describe("Category", func() {
	It("should round-trip through its string form", func() {
		for _, c := range lsp.CategoryValues() {
			parsed, err := lsp.CategoryString(c.String())

			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(c))
		}
	})
})
