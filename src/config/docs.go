// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads cstr-exchange settings from a JSON or YAML file.
//
// Defaults cover every field, so a missing file path yields a usable
// configuration. Loaded values are validated against an embedded JSON schema
// before use.
package config
