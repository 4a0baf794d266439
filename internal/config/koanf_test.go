package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/lintkit/rufflink/internal/config"
	"github.com/lintkit/rufflink/pkg/config"
)

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		workDir string
		loader  *internalconfig.KoanfLoader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = internalconfig.NewKoanfLoaderWithDirs(homeDir, workDir)
	})

	writeGlobal := func(content string) {
		dir := filepath.Join(homeDir, internalconfig.GlobalConfigDir)
		Expect(os.MkdirAll(dir, 0o700)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(dir, internalconfig.GlobalConfigFile),
			[]byte(content), 0o600,
		)).To(Succeed())
	}

	writeProject := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(workDir, name), []byte(content), 0o600)).To(Succeed())
	}

	Context("with no config files", func() {
		It("should return defaults", func() {
			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().GetExecutable()).To(Equal("ruff"))
			Expect(cfg.GetRuff().Timeout.ToDuration()).To(Equal(10 * time.Second))
			Expect(cfg.GetRules().ErrorCodes).To(ContainElement("E999"))
			Expect(cfg.GetRules().UnusedCodes).To(ContainElement("F401"))
		})
	})

	Context("with a global config", func() {
		It("should override defaults", func() {
			writeGlobal("[ruff]\nexecutable = \"ruff-global\"\n")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().Executable).To(Equal("ruff-global"))
		})
	})

	Context("with global and project configs", func() {
		It("should let the project win", func() {
			writeGlobal("[ruff]\nexecutable = \"ruff-global\"\ntimeout = \"30s\"\n")
			writeProject(internalconfig.ProjectConfigFile, "[ruff]\nexecutable = \"ruff-project\"\n")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().Executable).To(Equal("ruff-project"))
			// Untouched keys keep their lower-precedence values.
			Expect(cfg.GetRuff().Timeout.ToDuration()).To(Equal(30 * time.Second))
		})
	})

	Context("with the alternative project file name", func() {
		It("should load .rufflink.toml when rufflink.toml is absent", func() {
			writeProject(internalconfig.ProjectConfigFileAlt, "[ruff]\nexecutable = \"ruff-alt\"\n")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().Executable).To(Equal("ruff-alt"))
		})
	})

	Context("with environment overrides", func() {
		It("should outrank config files", func() {
			writeProject(internalconfig.ProjectConfigFile, "[ruff]\nexecutable = \"ruff-project\"\n")
			GinkgoT().Setenv("RUFFLINK_RUFF_EXECUTABLE", "ruff-env")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().Executable).To(Equal("ruff-env"))
		})

		It("should address underscored keys", func() {
			GinkgoT().Setenv("RUFFLINK_RUFF_MIN_VERSION", "0.5.0")

			cfg, err := loader.Load(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().MinVersion).To(Equal("0.5.0"))
		})
	})

	Context("with CLI flags", func() {
		It("should outrank everything", func() {
			GinkgoT().Setenv("RUFFLINK_RUFF_EXECUTABLE", "ruff-env")

			cfg, err := loader.Load(map[string]any{"ruff.executable": "ruff-flag"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetRuff().Executable).To(Equal("ruff-flag"))
		})
	})

	Context("with invalid TOML", func() {
		It("should fail with ErrInvalidTOML", func() {
			writeProject(internalconfig.ProjectConfigFile, "ruff = {{{\n")

			_, err := loader.Load(nil)

			Expect(err).To(MatchError(internalconfig.ErrInvalidTOML))
		})
	})

	Context("with a world-writable config", func() {
		It("should refuse to load it", func() {
			path := filepath.Join(workDir, internalconfig.ProjectConfigFile)
			Expect(os.WriteFile(path, []byte("[ruff]\n"), 0o666)).To(Succeed())
			// WriteFile modes pass through the umask; force the bits.
			Expect(os.Chmod(path, 0o666)).To(Succeed())

			_, err := loader.Load(nil)

			Expect(err).To(MatchError(internalconfig.ErrInvalidPermissions))
		})
	})

	Context("with overlapping rule sets", func() {
		It("should fail validation", func() {
			writeProject(
				internalconfig.ProjectConfigFile,
				"[rules]\nerror_codes = [\"F401\"]\nunused_codes = [\"F401\"]\n",
			)

			_, err := loader.Load(nil)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("F401"))
		})
	})
})

var _ = Describe("Validator", func() {
	It("should reject a nil config", func() {
		Expect(internalconfig.NewValidator().Validate(nil)).To(
			MatchError(internalconfig.ErrInvalidConfig))
	})

	It("should reject unknown schema versions", func() {
		err := internalconfig.NewValidator().Validate(&config.Config{Version: 99})

		Expect(err).To(MatchError(internalconfig.ErrUnsupportedVersion))
	})

	It("should accept the defaults", func() {
		Expect(internalconfig.NewValidator().Validate(internalconfig.DefaultConfig())).To(Succeed())
	})
})

var _ = Describe("Writer", func() {
	var (
		homeDir string
		workDir string
		writer  *internalconfig.Writer
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		writer = internalconfig.NewWriterWithDirs(homeDir, workDir)
	})

	It("should write a loadable project config", func() {
		path, err := writer.WriteDefault(false)

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(workDir, internalconfig.ProjectConfigFile)))

		loader := internalconfig.NewKoanfLoaderWithDirs(homeDir, workDir)
		cfg, err := loader.Load(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetRules().UnusedCodes).To(ContainElement("F841"))
	})

	It("should write the global config under the home directory", func() {
		path, err := writer.WriteDefault(true)

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(
			homeDir, internalconfig.GlobalConfigDir, internalconfig.GlobalConfigFile)))
	})

	It("should never overwrite an existing file", func() {
		_, err := writer.WriteDefault(false)
		Expect(err).NotTo(HaveOccurred())

		_, err = writer.WriteDefault(false)

		Expect(err).To(MatchError(internalconfig.ErrConfigExists))
	})
})
