// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user-written CUE files against an embedded schema
// and formats CUE errors with JSON-path prefixes.
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema string
//
//	values, err := cueutil.DecodeMap(schema, "#Config", data, "config.cue")
//	if err != nil {
//	    return err // error carries the file name and the offending field path
//	}
package cueutil
