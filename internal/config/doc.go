// SPDX-License-Identifier: MPL-2.0

// Package config handles toolbelt configuration using Viper.
//
// Values are resolved, lowest precedence first, from built-in defaults, an
// optional config.cue file (validated against an embedded CUE schema),
// a .env file, and TOOLBELT_* environment variables. Command-line flags are
// applied on top by the CLI layer.
package config
