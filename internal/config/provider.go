// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration comes from. Zero values fall
	// back to the platform config directory and ./.env.
	LoadOptions struct {
		// ConfigFilePath is the --config flag; it must exist when set.
		ConfigFilePath string
		// ConfigDirPath replaces ConfigDir() in lookups and in CreateDefaultConfig.
		ConfigDirPath string
		// EnvFilePath is an explicit dotenv file; it must exist when set.
		EnvFilePath string
	}

	// Loaded is a validated configuration and the file it was read from.
	// Source is empty when no config file was found and only defaults,
	// dotenv, and environment values apply.
	Loaded struct {
		Config *Config
		Source string
	}

	// Provider is the seam commands load configuration through.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Loaded, error)
	}

	fileProvider struct{}
)

// NewProvider returns the Provider backed by CUE files, dotenv, and
// TOOLBELT_* environment variables.
func NewProvider() Provider { return fileProvider{} }

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	cfg, source, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Source: source}, nil
}
