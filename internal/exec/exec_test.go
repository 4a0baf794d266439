package exec_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	execpkg "github.com/lintkit/rufflink/internal/exec"
)

func TestExec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Exec Suite")
}

var _ = Describe("CommandRunner", func() {
	var (
		runner execpkg.CommandRunner
		ctx    context.Context
	)

	BeforeEach(func() {
		runner = execpkg.NewCommandRunner()
		ctx = context.Background()
	})

	Describe("Run", func() {
		It("should capture stdout", func() {
			result, err := runner.Run(ctx, "sh", "-c", "printf hello")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("hello"))
			Expect(result.Stderr).To(BeEmpty())
			Expect(result.ExitCode).To(Equal(0))
		})

		It("should capture stderr and exit code without failing", func() {
			result, err := runner.Run(ctx, "sh", "-c", "printf oops >&2; exit 3")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stderr).To(Equal("oops"))
			Expect(result.ExitCode).To(Equal(3))
		})

		It("should report launch failure for a missing binary", func() {
			_, err := runner.Run(ctx, "definitely-not-a-binary-rufflink")

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RunWithStdin", func() {
		It("should deliver stdin to the process", func() {
			result, err := runner.RunWithStdin(ctx, "import os\n", "cat")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("import os\n"))
		})
	})
})

var _ = Describe("ToolChecker", func() {
	checker := execpkg.NewToolChecker()

	Describe("Resolve", func() {
		It("should return an absolute path for sh", func() {
			path, err := checker.Resolve("sh")

			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(ContainSubstring("sh"))
		})

		It("should return ToolNotFoundError for a missing tool", func() {
			_, err := checker.Resolve("definitely-not-a-binary-rufflink")

			var notFound *execpkg.ToolNotFoundError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Tool).To(Equal("definitely-not-a-binary-rufflink"))
		})
	})
})
