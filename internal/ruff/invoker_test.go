package ruff_test

import (
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/internal/ruff"
	"github.com/lintkit/rufflink/pkg/logger"
)

var errSpawn = errors.New("executing ruff: no such file or directory")

var _ = Describe("ProcessInvoker", func() {
	var (
		ctrl       *gomock.Controller
		mockRunner *execpkg.MockCommandRunner
		invoker    *ruff.ProcessInvoker
		ctx        context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRunner = execpkg.NewMockCommandRunner(ctrl)
		invoker = ruff.NewProcessInvoker(mockRunner, "", logger.NewNoOpLogger())
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Check", func() {
		It("should pass the check argument contract with the buffer on stdin", func() {
			mockRunner.EXPECT().
				RunWithStdin(
					ctx, "import os\n", "ruff",
					"check",
					"--stdin-filename", "app/main.py",
					"--quiet",
					"--output-format=json",
					"--force-exclude",
					"-",
				).
				Return(&execpkg.CommandResult{Stdout: "[]"}, nil)

			out, err := invoker.Check(ctx, "app/main.py", "import os\n")

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("[]"))
		})

		It("should treat any stderr output as total failure", func() {
			mockRunner.EXPECT().
				RunWithStdin(ctx, "x=1", "ruff", gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&execpkg.CommandResult{Stdout: "[]", Stderr: "warning: bad config"}, nil)

			_, err := invoker.Check(ctx, "main.py", "x=1")

			Expect(err).To(MatchError(ruff.ErrLinterStderr))
		})

		It("should mark launch failures", func() {
			mockRunner.EXPECT().
				RunWithStdin(ctx, "x=1", "ruff", gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&execpkg.CommandResult{}, errSpawn)

			_, err := invoker.Check(ctx, "main.py", "x=1")

			Expect(errors.Is(err, ruff.ErrLinterLaunch)).To(BeTrue())
		})
	})

	Describe("FixOnly", func() {
		It("should add --fix-only and return the rewritten source", func() {
			mockRunner.EXPECT().
				RunWithStdin(
					ctx, "import os\nprint('hi')\n", "ruff",
					"check",
					"--stdin-filename", "main.py",
					"--quiet",
					"--output-format=json",
					"--force-exclude",
					"--fix-only",
					"-",
				).
				Return(&execpkg.CommandResult{Stdout: "print('hi')\n"}, nil)

			out, err := invoker.FixOnly(ctx, "main.py", "import os\nprint('hi')\n")

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("print('hi')\n"))
		})
	})

	Describe("NewProcessInvoker", func() {
		It("should honor a configured executable name", func() {
			custom := ruff.NewProcessInvoker(mockRunner, "/opt/ruff", logger.NewNoOpLogger())

			mockRunner.EXPECT().
				RunWithStdin(ctx, "", "/opt/ruff", gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&execpkg.CommandResult{Stdout: "[]"}, nil)

			_, err := custom.Check(ctx, "main.py", "")

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
