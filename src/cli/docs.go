// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for cstr-exchange.
// It implements a Cobra-based CLI that builds a native module from the loaded
// configuration, drives it through every ownership path, and reports the
// outcome as log lines or markdown tables. The package handles context
// cancellation and integrates with the logger package for output.
package cli
