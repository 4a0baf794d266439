package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = `# rufflink configuration.
# Precedence: flags > RUFFLINK_* env > this file > ~/.rufflink/config.toml > defaults.

`

// Writer writes configuration to TOML files.
type Writer struct {
	homeDir string
	workDir string
}

// NewWriter creates a new Writer with default directories.
func NewWriter() (*Writer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewWriterWithDirs(homeDir, workDir), nil
}

// NewWriterWithDirs creates a new Writer with custom directories (for testing).
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{
		homeDir: homeDir,
		workDir: workDir,
	}
}

// WriteDefault writes the default configuration. With global true it goes to
// ~/.rufflink/config.toml, otherwise to rufflink.toml in the working
// directory. Existing files are never overwritten.
func (w *Writer) WriteDefault(global bool) (string, error) {
	path := filepath.Join(w.workDir, ProjectConfigFile)
	if global {
		dir := filepath.Join(w.homeDir, GlobalConfigDir)
		if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
			return "", errors.Wrap(err, "creating config directory")
		}

		path = filepath.Join(dir, GlobalConfigFile)
	}

	if _, err := os.Stat(path); err == nil {
		return path, errors.Wrapf(ErrConfigExists, "%s", path)
	}

	var buf bytes.Buffer

	buf.WriteString(configHeader)

	if err := toml.NewEncoder(&buf).Encode(DefaultConfig()); err != nil {
		return "", errors.Wrap(err, "encoding default config")
	}

	if err := os.WriteFile(path, buf.Bytes(), ConfigFileMode); err != nil {
		return "", errors.Wrap(err, "writing config file")
	}

	return path, nil
}
