package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "secheck"

	// DefaultBatchSize is the number of URLs analysed at once in batch mode.
	DefaultBatchSize = 10

	// DefaultPasswordLength is the length of generated passwords.
	DefaultPasswordLength = 16

	// MinPasswordLength and MaxPasswordLength bound the generator length
	// accepted by the CLI.
	MinPasswordLength = 4
	MaxPasswordLength = 32

	// DefaultPasswordCount is the number of passwords generated per call.
	DefaultPasswordCount = 1

	// MaxPasswordCount caps how many passwords one call may generate.
	MaxPasswordCount = 100
)

// Config holds all configuration options for secheck.
// It is populated from CLI flags and the optional configuration file and
// passed to the commands rather than kept in global state.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// File holds settings loaded from the configuration file, or nil.
	File *File

	// BatchSize is the number of URLs analysed concurrently.
	BatchSize int

	// PasswordLength is the length of generated passwords.
	PasswordLength int

	// PasswordCount is the number of passwords to generate.
	PasswordCount int

	// JSONReport enables JSON report output instead of the text format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the text format.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// NoColor disables coloured text output.
	NoColor bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		PasswordLength: DefaultPasswordLength,
		PasswordCount:  DefaultPasswordCount,
	}
}

// XDGConfigDir returns the XDG config directory for secheck.
// On Linux: ~/.config/secheck
// On macOS: ~/Library/Application Support/secheck
// On Windows: %APPDATA%\secheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.PasswordLength < MinPasswordLength || c.PasswordLength > MaxPasswordLength {
		return ErrInvalidLength
	}

	if c.PasswordCount <= 0 || c.PasswordCount > MaxPasswordCount {
		return ErrInvalidCount
	}

	return nil
}

// ApplyFile copies settings from the configuration file that the user did
// not override. changed reports whether a flag was set on the command line.
func (c *Config) ApplyFile(f *File, changed func(flag string) bool) {
	if f == nil {
		return
	}
	c.File = f

	if f.BatchSize > 0 && !changed("batch") {
		c.BatchSize = f.BatchSize
	}
	if f.Password.Length > 0 && !changed("length") {
		c.PasswordLength = f.Password.Length
	}
}
