// Package sysinfo reports the running kernel for the status output.
package sysinfo

// Info describes the running kernel.
type Info struct {
	Name    string // e.g. "Darwin"
	Release string // e.g. "23.5.0"
	Machine string // e.g. "arm64"
}
