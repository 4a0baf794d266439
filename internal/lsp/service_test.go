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

var _ = Describe("Service", func() {
	var (
		ctrl        *gomock.Controller
		mockInvoker *ruff.MockInvoker
		service     *lsp.Service
		ctx         context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockInvoker = ruff.NewMockInvoker(ctrl)

		classifier, err := lsp.NewClassifier([]string{"E999"}, []string{"F401"})
		Expect(err).NotTo(HaveOccurred())

		service = lsp.NewService(mockInvoker, classifier, logger.NewNoOpLogger())
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Diagnostics", func() {
		It("should build diagnostics from check output", func() {
			output := `[{"code":"F401","message":"os imported but unused",` +
				`"location":{"row":1,"column":8},"end_location":{"row":1,"column":10},` +
				`"filename":"main.py","fix":null,"noqa_row":1,"url":""}]`
			mockInvoker.EXPECT().Check(ctx, "main.py", "import os\n").Return(output, nil)

			diags := service.Diagnostics(ctx, "main.py", "import os\n")

			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Code).To(Equal("F401"))
			Expect(diags[0].Category).To(Equal(lsp.CategoryUnusedCode))
		})

		It("should degrade invocation failure to an empty list", func() {
			mockInvoker.EXPECT().
				Check(ctx, "main.py", "x=1\n").
				Return("", ruff.ErrLinterStderr)

			diags := service.Diagnostics(ctx, "main.py", "x=1\n")

			Expect(diags).NotTo(BeNil())
			Expect(diags).To(BeEmpty())
		})

		It("should degrade malformed output to an empty list", func() {
			mockInvoker.EXPECT().
				Check(ctx, "main.py", "x=1\n").
				Return("panic: oh no", nil)

			diags := service.Diagnostics(ctx, "main.py", "x=1\n")

			Expect(diags).To(BeEmpty())
		})
	})

	Describe("CodeActions", func() {
		buffer := "import os\nprint('hi')\n"

		fixableDiags := func() []lsp.Diagnostic {
			classifier, err := lsp.NewClassifier(nil, []string{"F401"})
			Expect(err).NotTo(HaveOccurred())

			builder := lsp.NewBuilder(classifier)

			return []lsp.Diagnostic{
				builder.Build(ruff.RawDiagnostic{
					Code: "F401",
					Fix:  &ruff.Fix{Message: "Remove unused import: os"},
				}),
			}
		}

		It("should append the fix-all action after aggregated actions", func() {
			mockInvoker.EXPECT().FixOnly(ctx, "main.py", buffer).Return("print('hi')\n", nil)

			actions := service.CodeActions(ctx, testURI, "main.py", &buffer, fixableDiags())

			Expect(actions).To(HaveLen(2))
			Expect(*actions[0].Kind).To(Equal(protocol.CodeActionKindQuickFix))
			Expect(actions[1].Title).To(Equal(lsp.FixAllTitle))
			Expect(*actions[1].Kind).To(Equal(lsp.CodeActionKindSourceFixAll))

			edits := actions[1].Edit.Changes[testURI]
			Expect(edits).To(HaveLen(1))
			Expect(edits[0].NewText).To(Equal("print('hi')\n"))
		})

		It("should skip fix-all for closed documents", func() {
			actions := service.CodeActions(ctx, testURI, "main.py", nil, fixableDiags())

			Expect(actions).To(HaveLen(1))
			Expect(actions[0].Title).To(Equal("Remove unused import: os"))
		})

		It("should swallow fix-all failures", func() {
			mockInvoker.EXPECT().
				FixOnly(ctx, "main.py", buffer).
				Return("", ruff.ErrLinterStderr)

			actions := service.CodeActions(ctx, testURI, "main.py", &buffer, fixableDiags())

			Expect(actions).To(HaveLen(1))
		})

		It("should return an empty list for no diagnostics and no changes", func() {
			mockInvoker.EXPECT().FixOnly(ctx, "main.py", buffer).Return(buffer, nil)

			actions := service.CodeActions(ctx, testURI, "main.py", &buffer, nil)

			Expect(actions).To(BeEmpty())
		})
	})
})
