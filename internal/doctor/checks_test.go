package doctor_test

import (
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/lintkit/rufflink/internal/doctor"
	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/pkg/config"
)

var _ = Describe("BinaryCheck", func() {
	var (
		ctrl    *gomock.Controller
		checker *execpkg.MockToolChecker
		ctx     context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		checker = execpkg.NewMockToolChecker(ctrl)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should pass with the resolved path when the binary is in PATH", func() {
		checker.EXPECT().Resolve("ruff").Return("/usr/bin/ruff", nil)

		result := doctor.NewBinaryCheck(checker, "ruff").Check(ctx)

		Expect(result.Status).To(Equal(doctor.StatusPass))
		Expect(result.Message).To(Equal("/usr/bin/ruff"))
	})

	It("should fail when the binary is missing", func() {
		checker.EXPECT().
			Resolve("ruff").
			Return("", &execpkg.ToolNotFoundError{Tool: "ruff"})

		result := doctor.NewBinaryCheck(checker, "ruff").Check(ctx)

		Expect(result.IsFailed()).To(BeTrue())
		Expect(result.Message).To(ContainSubstring("not found in PATH"))
		Expect(result.Details).NotTo(BeEmpty())
	})
})

var _ = Describe("VersionCheck", func() {
	var (
		ctrl   *gomock.Controller
		runner *execpkg.MockCommandRunner
		ctx    context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = execpkg.NewMockCommandRunner(ctrl)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should pass when the version meets the minimum", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(&execpkg.CommandResult{Stdout: "ruff 0.6.8\n"}, nil)

		result := doctor.NewVersionCheck(runner, "ruff", "0.4.0").Check(ctx)

		Expect(result.Status).To(Equal(doctor.StatusPass))
		Expect(result.Message).To(Equal("0.6.8 (>= 0.4.0)"))
	})

	It("should fail when the version is older than the minimum", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(&execpkg.CommandResult{Stdout: "ruff 0.3.1\n"}, nil)

		result := doctor.NewVersionCheck(runner, "ruff", "0.4.0").Check(ctx)

		Expect(result.IsFailed()).To(BeTrue())
		Expect(result.Message).To(ContainSubstring("older than required"))
	})

	It("should pass without a minimum configured", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(&execpkg.CommandResult{Stdout: "ruff 0.6.8\n"}, nil)

		result := doctor.NewVersionCheck(runner, "ruff", "").Check(ctx)

		Expect(result.Status).To(Equal(doctor.StatusPass))
		Expect(result.Message).To(Equal("0.6.8"))
	})

	It("should fail when the tool cannot be launched", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(nil, errors.New("exec: not found"))

		result := doctor.NewVersionCheck(runner, "ruff", "0.4.0").Check(ctx)

		Expect(result.IsFailed()).To(BeTrue())
	})

	It("should fail on a non-zero exit", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(&execpkg.CommandResult{ExitCode: 2, Stderr: "boom"}, nil)

		result := doctor.NewVersionCheck(runner, "ruff", "0.4.0").Check(ctx)

		Expect(result.IsFailed()).To(BeTrue())
		Expect(result.Details).To(ContainElement("boom"))
	})

	It("should fail on unparseable version output", func() {
		runner.EXPECT().
			Run(ctx, "ruff", "--version").
			Return(&execpkg.CommandResult{Stdout: "not a version"}, nil)

		result := doctor.NewVersionCheck(runner, "ruff", "0.4.0").Check(ctx)

		Expect(result.IsFailed()).To(BeTrue())
		Expect(result.Message).To(ContainSubstring("could not parse"))
	})
})

var _ = Describe("ConfigCheck", func() {
	It("should pass and report the effective rule sets", func() {
		check := doctor.NewConfigCheck(func() (*config.Config, error) {
			return &config.Config{
				Rules: &config.RulesConfig{
					ErrorCodes:  []string{"E999"},
					UnusedCodes: []string{"F401"},
				},
			}, nil
		})

		result := check.Check(context.Background())

		Expect(result.Status).To(Equal(doctor.StatusPass))
		Expect(result.Details).To(ContainElement("error codes: E999"))
	})

	It("should fail when loading errors", func() {
		check := doctor.NewConfigCheck(func() (*config.Config, error) {
			return nil, errors.New("bad toml")
		})

		result := check.Check(context.Background())

		Expect(result.IsFailed()).To(BeTrue())
		Expect(result.Details).To(ContainElement("bad toml"))
	})
})
