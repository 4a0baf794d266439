package config_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lintkit/rufflink/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Duration", func() {
	Describe("UnmarshalText", func() {
		It("should parse valid durations", func() {
			var d config.Duration

			Expect(d.UnmarshalText([]byte("15s"))).To(Succeed())
			Expect(d.ToDuration()).To(Equal(15 * time.Second))
		})

		It("should reject negative durations", func() {
			var d config.Duration

			err := d.UnmarshalText([]byte("-1s"))

			Expect(err).To(MatchError(config.ErrNegativeDuration))
		})

		It("should reject garbage", func() {
			var d config.Duration

			Expect(d.UnmarshalText([]byte("soon"))).NotTo(Succeed())
		})
	})

	Describe("MarshalText", func() {
		It("should round-trip", func() {
			d := config.Duration(90 * time.Second)

			text, err := d.MarshalText()

			Expect(err).NotTo(HaveOccurred())
			Expect(string(text)).To(Equal("1m30s"))
		})
	})
})

var _ = Describe("Config", func() {
	Describe("nil-safe getters", func() {
		It("should create sections on demand", func() {
			cfg := &config.Config{}

			Expect(cfg.GetRuff()).NotTo(BeNil())
			Expect(cfg.GetRules()).NotTo(BeNil())
			Expect(cfg.GetCheck()).NotTo(BeNil())
		})
	})

	Describe("RuffConfig.GetExecutable", func() {
		It("should default to ruff", func() {
			var r *config.RuffConfig

			Expect(r.GetExecutable()).To(Equal("ruff"))
		})

		It("should honor an override", func() {
			r := &config.RuffConfig{Executable: "/opt/ruff/bin/ruff"}

			Expect(r.GetExecutable()).To(Equal("/opt/ruff/bin/ruff"))
		})
	})

	Describe("CheckConfig.GetMaxWorkers", func() {
		It("should reject non-positive overrides", func() {
			zero := 0
			c := &config.CheckConfig{MaxWorkers: &zero}

			Expect(c.GetMaxWorkers()).To(BeNumerically(">=", 1))
		})

		It("should honor a positive override", func() {
			two := 2
			c := &config.CheckConfig{MaxWorkers: &two}

			Expect(c.GetMaxWorkers()).To(Equal(2))
		})
	})
})
