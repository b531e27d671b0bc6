// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidConfig is returned when a configuration fails schema validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// schema rejects sentinel bytes in payloads, since neither a terminated string
// nor the fixture may carry one.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "static":    { "type": "string", "pattern": "^[^\\x00]*$" },
    "dynamic":   { "type": "string", "pattern": "^[^\\x00]*$" },
    "malformed": { "type": "string", "minLength": 1, "pattern": "^[^\\x00]*$" },
    "allocator": { "type": "string", "enum": ["mmap", "go", "failing"] },
    "log": {
      "type": "object",
      "properties": {
        "format": { "type": "string", "enum": ["text", "json"] },
        "silent": { "type": "boolean" }
      },
      "required": ["format"]
    }
  },
  "required": ["static", "dynamic", "malformed", "log"]
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Validate checks c against the configuration schema. All violations are
// reported in one error wrapping [ErrInvalidConfig].
func Validate(c *Config) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(c))
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
