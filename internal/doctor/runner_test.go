package doctor_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/lintkit/rufflink/internal/color"
	"github.com/lintkit/rufflink/internal/doctor"
	"github.com/lintkit/rufflink/pkg/logger"
)

var _ = Describe("Runner", func() {
	var (
		ctrl *gomock.Controller
		out  *bytes.Buffer
		ctx  context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		out = &bytes.Buffer{}
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newRunner := func(checkers ...doctor.HealthChecker) *doctor.Runner {
		reporter := doctor.NewTableReporter(out, color.NewTheme(false))
		return doctor.NewRunner(checkers, reporter, logger.NewNoOpLogger())
	}

	It("should return nil when all checks pass", func() {
		check := doctor.NewMockHealthChecker(ctrl)
		check.EXPECT().Check(ctx).Return(doctor.Pass("binary", "/usr/bin/ruff"))

		err := newRunner(check).Run(ctx, false)

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("binary"))
		Expect(out.String()).To(ContainSubstring("pass"))
	})

	It("should return ErrChecksFailed when any check fails", func() {
		passing := doctor.NewMockHealthChecker(ctrl)
		passing.EXPECT().Check(ctx).Return(doctor.Pass("binary", "ok"))

		failing := doctor.NewMockHealthChecker(ctrl)
		failing.EXPECT().Check(ctx).Return(doctor.Fail("version", "too old"))

		err := newRunner(passing, failing).Run(ctx, false)

		Expect(err).To(MatchError(doctor.ErrChecksFailed))
	})

	It("should always print details of failed checks", func() {
		failing := doctor.NewMockHealthChecker(ctrl)
		failing.EXPECT().
			Check(ctx).
			Return(doctor.Fail("version", "too old").WithDetails("upgrade ruff"))

		_ = newRunner(failing).Run(ctx, false)

		Expect(out.String()).To(ContainSubstring("upgrade ruff"))
	})

	It("should print passing details only in verbose mode", func() {
		check := doctor.NewMockHealthChecker(ctrl)
		check.EXPECT().
			Check(ctx).
			Return(doctor.Pass("configuration", "loaded").WithDetails("error codes: E999")).
			Times(2)

		_ = newRunner(check).Run(ctx, false)
		Expect(out.String()).NotTo(ContainSubstring("error codes"))

		out.Reset()

		_ = newRunner(check).Run(ctx, true)
		Expect(out.String()).To(ContainSubstring("error codes: E999"))
	})
})
