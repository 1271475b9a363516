// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// Text formats mirror internal/textconv. Defined locally so config does
	// not import the utility packages.
	TextFormatUpper       TextFormat = "upper"
	TextFormatLower       TextFormat = "lower"
	TextFormatTitle       TextFormat = "title"
	TextFormatSentence    TextFormat = "sentence"
	TextFormatAlternating TextFormat = "alternating"

	// SysinfoFormatText renders the host snapshot as a sectioned report.
	SysinfoFormatText SysinfoFormat = "text"
	// SysinfoFormatJSON renders the host snapshot as indented JSON.
	SysinfoFormatJSON SysinfoFormat = "json"
)

var (
	// ErrInvalidTextFormat is returned when a TextFormat value is not recognized.
	ErrInvalidTextFormat = errors.New("invalid text format")
	// ErrInvalidSysinfoFormat is returned when a SysinfoFormat value is not recognized.
	ErrInvalidSysinfoFormat = errors.New("invalid sysinfo format")
	// ErrInvalidDelimiter is returned when the CSV delimiter is not exactly one rune.
	ErrInvalidDelimiter = errors.New("invalid csv delimiter")
	// ErrInvalidSampleInterval is returned for a negative CPU sampling interval.
	ErrInvalidSampleInterval = errors.New("invalid cpu sample interval")
)

type (
	// TextFormat names a case conversion.
	TextFormat string

	// SysinfoFormat names a sysinfo rendering.
	SysinfoFormat string

	// Config holds the application configuration.
	Config struct {
		UI      UIConfig      `json:"ui" mapstructure:"ui"`
		CSV     CSVConfig     `json:"csv" mapstructure:"csv"`
		Text    TextConfig    `json:"text" mapstructure:"text"`
		Sysinfo SysinfoConfig `json:"sysinfo" mapstructure:"sysinfo"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// CSVConfig configures the CSV processor.
	CSVConfig struct {
		// Delimiter is the single-rune field separator.
		Delimiter string `json:"delimiter" mapstructure:"delimiter"`
		// NullValues are cell values treated as missing.
		NullValues []string `json:"null_values" mapstructure:"null_values"`
	}

	// TextConfig configures the text converter.
	TextConfig struct {
		// DefaultFormat is used when --format is not given.
		DefaultFormat TextFormat `json:"default_format" mapstructure:"default_format"`
	}

	// SysinfoConfig configures the sysinfo reporter.
	SysinfoConfig struct {
		// DefaultFormat is used when --format is not given.
		DefaultFormat SysinfoFormat `json:"default_format" mapstructure:"default_format"`
		// CPUSampleMs is the CPU utilisation sampling window in milliseconds.
		CPUSampleMs int `json:"cpu_sample_ms" mapstructure:"cpu_sample_ms"`
	}
)

// String returns the string representation of the TextFormat.
func (f TextFormat) String() string { return string(f) }

// Validate returns an error wrapping ErrInvalidTextFormat if f is unknown.
func (f TextFormat) Validate() error {
	switch f {
	case TextFormatUpper, TextFormatLower, TextFormatTitle, TextFormatSentence, TextFormatAlternating:
		return nil
	default:
		return fmt.Errorf("%w %q (valid: upper, lower, title, sentence, alternating)", ErrInvalidTextFormat, string(f))
	}
}

// String returns the string representation of the SysinfoFormat.
func (f SysinfoFormat) String() string { return string(f) }

// Validate returns an error wrapping ErrInvalidSysinfoFormat if f is unknown.
func (f SysinfoFormat) Validate() error {
	switch f {
	case SysinfoFormatText, SysinfoFormatJSON:
		return nil
	default:
		return fmt.Errorf("%w %q (valid: text, json)", ErrInvalidSysinfoFormat, string(f))
	}
}

// DelimiterRune returns the delimiter as a rune. Validate must have passed.
func (c CSVConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate checks values that may have bypassed the CUE schema through
// environment overrides. All field errors are joined.
func (c *Config) Validate() error {
	var errs []error
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("csv.delimiter: %w %q (must be a single character)", ErrInvalidDelimiter, c.CSV.Delimiter))
	}
	if err := c.Text.DefaultFormat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("text.default_format: %w", err))
	}
	if err := c.Sysinfo.DefaultFormat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sysinfo.default_format: %w", err))
	}
	if c.Sysinfo.CPUSampleMs < 0 {
		errs = append(errs, fmt.Errorf("sysinfo.cpu_sample_ms: %w %d", ErrInvalidSampleInterval, c.Sysinfo.CPUSampleMs))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose: false,
		},
		CSV: CSVConfig{
			Delimiter:  ",",
			NullValues: []string{"", "NA", "NaN", "null", "NULL", "N/A"},
		},
		Text: TextConfig{
			DefaultFormat: TextFormatLower,
		},
		Sysinfo: SysinfoConfig{
			DefaultFormat: SysinfoFormatText,
			CPUSampleMs:   200,
		},
	}
}
