package docx

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Archiver names accepted by Config.Archiver
const (
	ArchiverZip     = "zip"
	ArchiverCommand = "command"
)

// Config contains all configuration options for building and saving documents
type Config struct {
	// AmbientFontSize is the default font size in points. Runs of this size
	// carry no explicit size in the document part.
	AmbientFontSize int
	// StagingDir is where staging directories are created. Empty means os.TempDir().
	StagingDir string
	// Archiver selects how staged parts become a container (zip, command)
	Archiver string
	// ArchiveCommand is the external archiver used by the command archiver
	ArchiveCommand string
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// Language is a BCP 47 tag written to the document properties and styles
	Language string
	// Creator and Title go into docProps/core.xml
	Creator string
	Title   string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		AmbientFontSize: DefaultFontSize,
		StagingDir:      "",
		Archiver:        ArchiverZip,
		ArchiveCommand:  "zip",
		LogLevel:        "info",
		Language:        "en-US",
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCX_FONT_SIZE
	if val := os.Getenv("DOCX_FONT_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.AmbientFontSize = size
		}
	}

	// DOCX_STAGING_DIR
	if val := os.Getenv("DOCX_STAGING_DIR"); val != "" {
		config.StagingDir = val
	}

	// DOCX_ARCHIVER
	if val := os.Getenv("DOCX_ARCHIVER"); val != "" {
		config.Archiver = strings.ToLower(strings.TrimSpace(val))
	}

	// DOCX_ARCHIVE_COMMAND
	if val := os.Getenv("DOCX_ARCHIVE_COMMAND"); val != "" {
		config.ArchiveCommand = val
	}

	// DOCX_LOG_LEVEL
	if val := os.Getenv("DOCX_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCX_LANGUAGE
	if val := os.Getenv("DOCX_LANGUAGE"); val != "" {
		config.Language = val
	}

	// DOCX_CREATOR, DOCX_TITLE
	if val := os.Getenv("DOCX_CREATOR"); val != "" {
		config.Creator = val
	}
	if val := os.Getenv("DOCX_TITLE"); val != "" {
		config.Title = val
	}

	return config
}

// LoadEnvFile loads KEY=VALUE files into the process environment. Variables
// that are already set are not overridden. Missing files are skipped; with no
// arguments ".env" is tried.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load environment file: %w", err)
	}
	return nil
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.AmbientFontSize == 0 {
		config.AmbientFontSize = defaults.AmbientFontSize
	}
	if config.Archiver == "" {
		config.Archiver = defaults.Archiver
	}
	if config.ArchiveCommand == "" {
		config.ArchiveCommand = defaults.ArchiveCommand
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Language == "" {
		config.Language = defaults.Language
	}

	return &config
}

// Validate checks if the configuration is valid. Failures are
// InvalidArgumentErrors naming the offending field and value.
func (c *Config) Validate() error {
	if c.AmbientFontSize <= 0 || c.AmbientFontSize > MaxFontSize {
		return NewInvalidArgumentError("AmbientFontSize", c.AmbientFontSize,
			fmt.Sprintf("ambient font size must be between 1 and %d", MaxFontSize))
	}

	switch c.Archiver {
	case ArchiverZip:
	case ArchiverCommand:
		if strings.TrimSpace(c.ArchiveCommand) == "" {
			return NewInvalidArgumentError("ArchiveCommand", c.ArchiveCommand, "archive command cannot be empty")
		}
	default:
		return NewInvalidArgumentError("Archiver", c.Archiver, "invalid archiver, expected zip or command")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return NewInvalidArgumentError("LogLevel", c.LogLevel, "invalid log level")
	}

	if _, err := c.LanguageTag(); err != nil {
		return NewInvalidArgumentError("Language", c.Language, err.Error())
	}

	return nil
}

// LanguageTag parses Language. An empty language yields language.Und.
func (c *Config) LanguageTag() (language.Tag, error) {
	if c.Language == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	return tag, nil
}
