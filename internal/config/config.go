// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/toolbelt/toolbelt/internal/issue"
	"github.com/toolbelt/toolbelt/pkg/cueutil"
	"github.com/toolbelt/toolbelt/pkg/platform"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "toolbelt"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. TOOLBELT_CSV_DELIMITER.
	EnvPrefix = "TOOLBELT"
	// DefaultEnvFile is the dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the toolbelt configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	base, err := platform.ConfigBase(runtime.GOOS, platform.Env{
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
	})
	if err != nil {
		return "", err
	}

	return filepath.Join(base, AppName), nil
}

// loadWithOptions performs option-driven config loading without package-level
// cache state. It returns the resolved config file path ("" for defaults only).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("csv.delimiter", defaults.CSV.Delimiter)
	v.SetDefault("csv.null_values", defaults.CSV.NullValues)
	v.SetDefault("text.default_format", string(defaults.Text.DefaultFormat))
	v.SetDefault("sysinfo.default_format", string(defaults.Sysinfo.DefaultFormat))
	v.SetDefault("sysinfo.cpu_sample_ms", defaults.Sysinfo.CPUSampleMs)

	resolvedPath, err := resolveSource(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.Wrap(err, "load configuration",
				issue.Resource(resolvedPath),
				issue.Suggest(
					"Check that the file contains valid CUE syntax",
					"Verify the configuration values match the expected schema",
				),
				issue.Catalog(issue.ConfigLoadFailedId))
		}
	}

	if err := loadEnvFile(opts.EnvFilePath); err != nil {
		return nil, "", issue.Wrap(err, "load environment file",
			issue.Resource(opts.EnvFilePath),
			issue.Suggest("Each line must be KEY=VALUE"),
			issue.Catalog(issue.ConfigLoadFailedId))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.Wrap(err, "validate configuration",
			issue.Suggest("Check TOOLBELT_* environment variables and the config file"),
			issue.Catalog(issue.ConfigLoadFailedId))
	}

	return &cfg, resolvedPath, nil
}

// resolveSource returns the config file to read: the explicit --config path,
// which must exist, or whatever findConfigFile discovers.
func resolveSource(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath == "" {
		return findConfigFile(opts.ConfigDirPath)
	}
	if !fileExists(opts.ConfigFilePath) {
		return "", issue.Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath), "load configuration",
			issue.Resource(opts.ConfigFilePath),
			issue.Suggest(
				"Verify the file path is correct",
				"Use 'toolbelt config dump' to print the default configuration",
			),
			issue.Catalog(issue.ConfigLoadFailedId))
	}
	return opts.ConfigFilePath, nil
}

// findConfigFile looks for config.cue in the config directory, then in the
// current directory. Returns "" when neither exists.
func findConfigFile(configDirPath string) (string, error) {
	cfgDir, err := resolveDir(configDirPath)
	if err != nil {
		return "", err
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		return cuePath, nil
	}

	localCuePath := ConfigFileName + "." + ConfigFileExt
	if fileExists(localCuePath) {
		return localCuePath, nil
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against the #Config schema and merges
// its contents into Viper, preserving defaults for absent keys.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, "#Config", data, path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing default file is not an error; a missing explicit
// file is.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func resolveDir(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// CreateDefaultConfig writes a default config file into opts.ConfigDirPath
// (or ConfigDir) unless one already exists, and returns its path.
func CreateDefaultConfig(opts LoadOptions) (string, error) {
	cfgDir, err := resolveDir(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, nil
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// toolbelt configuration file\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\ncsv: {\n")
	fmt.Fprintf(&sb, "\tdelimiter: %q\n", cfg.CSV.Delimiter)
	quoted := make([]string, len(cfg.CSV.NullValues))
	for i, nv := range cfg.CSV.NullValues {
		quoted[i] = fmt.Sprintf("%q", nv)
	}
	fmt.Fprintf(&sb, "\tnull_values: [%s]\n", strings.Join(quoted, ", "))
	sb.WriteString("}\n")

	sb.WriteString("\ntext: {\n")
	fmt.Fprintf(&sb, "\tdefault_format: %q\n", cfg.Text.DefaultFormat)
	sb.WriteString("}\n")

	sb.WriteString("\nsysinfo: {\n")
	fmt.Fprintf(&sb, "\tdefault_format: %q\n", cfg.Sysinfo.DefaultFormat)
	fmt.Fprintf(&sb, "\tcpu_sample_ms: %d\n", cfg.Sysinfo.CPUSampleMs)
	sb.WriteString("}\n")

	return sb.String()
}
