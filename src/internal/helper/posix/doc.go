// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - ExecutableNameFrom: The same, for an explicit argv[0]
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/cstr-exchange" → "cstr-exchange"
//   - Windows: "C:\bin\cstr-exchange.exe" → "cstr-exchange"
//   - Fallback: Empty args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
