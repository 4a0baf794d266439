package lsp_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/mock/gomock"

	"github.com/lintkit/rufflink/internal/lsp"
	"github.com/lintkit/rufflink/internal/ruff"
	"github.com/lintkit/rufflink/pkg/logger"
)

var _ = Describe("Synthesizer", func() {
	var (
		ctrl        *gomock.Controller
		mockInvoker *ruff.MockInvoker
		synthesizer *lsp.Synthesizer
		ctx         context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockInvoker = ruff.NewMockInvoker(ctrl)
		synthesizer = lsp.NewSynthesizer(mockInvoker, logger.NewNoOpLogger())
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("when the fixed output equals the buffer", func() {
		It("should return no action", func() {
			buffer := "print('hi')\n"
			mockInvoker.EXPECT().FixOnly(ctx, "main.py", buffer).Return(buffer, nil)

			action, err := synthesizer.Synthesize(ctx, testURI, "main.py", buffer)

			Expect(err).NotTo(HaveOccurred())
			Expect(action).To(BeNil())
		})
	})

	Context("when the fixed output differs", func() {
		It("should return one whole-document fix-all action", func() {
			buffer := "import os\nprint('hi')\n"
			fixed := "print('hi')\n"
			mockInvoker.EXPECT().FixOnly(ctx, "main.py", buffer).Return(fixed, nil)

			action, err := synthesizer.Synthesize(ctx, testURI, "main.py", buffer)

			Expect(err).NotTo(HaveOccurred())
			Expect(action).NotTo(BeNil())
			Expect(action.Title).To(Equal(lsp.FixAllTitle))
			Expect(*action.Kind).To(Equal(lsp.CodeActionKindSourceFixAll))

			edits := action.Edit.Changes[testURI]
			Expect(edits).To(HaveLen(1))
			Expect(edits[0].NewText).To(Equal(fixed))
			Expect(edits[0].Range.Start).To(Equal(protocol.Position{Line: 0, Character: 0}))
			// Two content lines plus the trailing newline: end past line 2.
			Expect(edits[0].Range.End).To(Equal(protocol.Position{Line: 3, Character: 0}))
		})
	})

	Context("when the invocation fails", func() {
		It("should return the error and no action", func() {
			mockInvoker.EXPECT().
				FixOnly(ctx, "main.py", "x=1\n").
				Return("", ruff.ErrLinterStderr)

			action, err := synthesizer.Synthesize(ctx, testURI, "main.py", "x=1\n")

			Expect(err).To(MatchError(ruff.ErrLinterStderr))
			Expect(action).To(BeNil())
		})
	})
})
