// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is used when argv[0] is unavailable.
const FallbackName = "cstr-exchange"

// GetExecutableName returns the name of the running executable without
// extension, for CLI usage strings.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return ExecutableNameFrom(os.Args[0])
}

// ExecutableNameFrom returns the base name of arg0 with a trailing ".exe"
// removed. Both '/' and '\' are treated as separators so a Windows path
// resolves correctly on a Unix host and vice versa.
func ExecutableNameFrom(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\' || r == filepath.Separator
	})
	if len(parts) == 0 {
		return FallbackName
	}
	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
