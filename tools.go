//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin the Go-based tools invoked
// via `go generate` (mockgen) so go.mod and go.sum stay in sync.
package attendance_lab

import (
	_ "go.uber.org/mock/mockgen"
)
