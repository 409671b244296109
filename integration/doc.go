// Package integration contains end-to-end tests for icongen. Tests build the
// real binary and run it in empty temporary working directories.
//
// Run with: go test ./integration/... -v -timeout 60s
package integration
