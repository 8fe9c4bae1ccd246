// Package filesystem provides implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed filesystem used in tests.
package filesystem
