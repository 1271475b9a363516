// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of CUE files read from disk.
const DefaultMaxFileSize int64 = 1 << 20

// DecodeMap compiles schema, unifies the definition at definitionPath with the
// user data and decodes the result into a map.
//
// Validation uses Concrete(false): every field in the user file is optional,
// defaults are supplied by the caller afterwards.
func DecodeMap(schema, definitionPath string, data []byte, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	definition := schemaValue.LookupPath(cue.ParsePath(definitionPath))
	if definition.Err() != nil {
		return nil, fmt.Errorf("internal error: schema has no %s: %w", definitionPath, definition.Err())
	}

	unified := definition.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, filename)
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return nil, FormatError(err, filename)
	}
	return values, nil
}
